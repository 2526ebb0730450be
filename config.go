package hammer

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// DefaultNet returns the classic Hammer net, zones B to D collapsed to
// three rings: 2-16.6 m by 4, 16.6-53.3 m by 6 and 53.3-170.1 m by 6.
func DefaultNet() []RingSpec {
	return []RingSpec{{2., 16.6, 4}, {16.6, 53.3, 6}, {53.3, 170.1, 6}}
}

// Config holds a terrain correction run read from a control file.
type Config struct {
	Prfx    string     // output path prefix
	StaFP   string     // station csv path
	DemDir  string     // directory of elevation rasters
	Rings   []RingSpec // ordered ring specifications
	UTMZone int        // optional, for geographic skip diagnostics
	South   bool
}

// LoadConfig reads a control file of the form:
//
//	prfx out/survey22
//	stations stations.csv
//	demdir dem/
//	rings 2 16.6 4 16.6 53.3 6 53.3 170.1 6
//	utmzone 17
//
// rings is optional (the classic net is assumed), as are utmzone and south.
func LoadConfig(fp string) (*Config, error) {
	if _, ok := mmio.FileExists(fp); !ok {
		return nil, fmt.Errorf(" LoadConfig: control file %s not found", fp)
	}
	ins := mmio.NewInstruct(fp)
	req := func(k string) (string, error) {
		if v, ok := ins.Param[k]; ok && len(v) > 0 {
			return v[0], nil
		}
		return "", fmt.Errorf(" LoadConfig %s: required key '%s' not found", fp, k)
	}
	var cfg Config
	var err error
	if cfg.Prfx, err = req("prfx"); err != nil {
		return nil, err
	}
	if cfg.StaFP, err = req("stations"); err != nil {
		return nil, err
	}
	if cfg.DemDir, err = req("demdir"); err != nil {
		return nil, err
	}
	if vs, ok := ins.Param["rings"]; ok {
		if cfg.Rings, err = ParseRings(vs); err != nil {
			return nil, fmt.Errorf(" LoadConfig %s: %v", fp, err)
		}
	} else {
		cfg.Rings = DefaultNet()
	}
	if vs, ok := ins.Param["utmzone"]; ok && len(vs) > 0 {
		z, err := strconv.Atoi(vs[0])
		if err != nil {
			return nil, fmt.Errorf(" LoadConfig %s: utmzone: %v", fp, err)
		}
		cfg.UTMZone = z
	}
	_, cfg.South = ins.Param["south"]
	for _, rs := range cfg.Rings {
		if err := rs.valid(); err != nil {
			return nil, fmt.Errorf(" LoadConfig %s:%v", fp, err)
		}
	}
	return &cfg, nil
}

// ParseRings interprets inner/outer/nsector triplets, e.g.
// ["2" "16.6" "4" "16.6" "53.3" "6"] yields two RingSpecs.
func ParseRings(vs []string) ([]RingSpec, error) {
	if len(vs) == 0 || len(vs)%3 != 0 {
		return nil, fmt.Errorf("rings: need inner outer nsectors triplets, got %d value(s)", len(vs))
	}
	out := make([]RingSpec, 0, len(vs)/3)
	for i := 0; i < len(vs); i += 3 {
		rin, err := strconv.ParseFloat(vs[i], 64)
		if err != nil {
			return nil, fmt.Errorf("rings: %v", err)
		}
		rout, err := strconv.ParseFloat(vs[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("rings: %v", err)
		}
		n, err := strconv.Atoi(vs[i+2])
		if err != nil {
			return nil, fmt.Errorf("rings: %v", err)
		}
		out = append(out, RingSpec{rin, rout, n})
	}
	return out, nil
}
