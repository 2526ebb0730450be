package dem

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/paulmach/orb"
)

// Grid is an ESRI ASCII raster (.asc) held in memory, row-major from the
// northern edge.
type Grid struct {
	z      []float64
	name   string
	b      orb.Bound
	dx, dy float64
	nodata float64
	nc, nr int
}

// ReadASC reads an ESRI ASCII grid. Corner- and centre-registered headers
// are both supported; nodata_value defaults to -9999.
func ReadASC(fp string) (*Grid, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" dem.ReadASC %s: %v", fp, err)
	}
	if len(lns) < 6 {
		return nil, fmt.Errorf(" dem.ReadASC %s: incomplete file", fp)
	}
	stErr := make([]string, 0)
	errfunc := func(v string, err error) {
		stErr = append(stErr, fmt.Sprintf("   failed to read '%s' in %s: %v", v, fp, err))
	}

	hdr, nhdr := make(map[string]float64), 0
	for _, ln := range lns {
		sp := strings.Fields(ln)
		if len(sp) != 2 {
			break
		}
		if _, err := strconv.ParseFloat(sp[0], 64); err == nil {
			break // first data line of a 2-column raster
		}
		v, err := strconv.ParseFloat(sp[1], 64)
		if err != nil {
			errfunc(sp[0], err)
		}
		hdr[strings.ToLower(sp[0])] = v
		nhdr++
	}

	g := Grid{
		name:   strings.TrimSuffix(filepath.Base(fp), filepath.Ext(fp)),
		nodata: -9999.,
	}
	nc, ok := hdr["ncols"]
	if !ok {
		stErr = append(stErr, "   ncols not found")
	}
	nr, ok := hdr["nrows"]
	if !ok {
		stErr = append(stErr, "   nrows not found")
	}
	cs, ok := hdr["cellsize"]
	if !ok {
		stErr = append(stErr, "   cellsize not found")
	}
	xll, ok := hdr["xllcorner"]
	if !ok {
		if xlc, ok := hdr["xllcenter"]; ok {
			xll = xlc - cs/2.
		} else {
			stErr = append(stErr, "   xllcorner/xllcenter not found")
		}
	}
	yll, ok := hdr["yllcorner"]
	if !ok {
		if ylc, ok := hdr["yllcenter"]; ok {
			yll = ylc - cs/2.
		} else {
			stErr = append(stErr, "   yllcorner/yllcenter not found")
		}
	}
	if nd, ok := hdr["nodata_value"]; ok {
		g.nodata = nd
	}
	if len(stErr) > 0 {
		return nil, fmt.Errorf(" dem.ReadASC %s:\n%s", fp, strings.Join(stErr, "\n"))
	}
	g.nc, g.nr, g.dx, g.dy = int(nc), int(nr), cs, cs
	if g.nc < 1 || g.nr < 1 || cs <= 0. {
		return nil, fmt.Errorf(" dem.ReadASC %s: invalid header dimensions", fp)
	}
	g.b = orb.Bound{
		Min: orb.Point{xll, yll},
		Max: orb.Point{xll + float64(g.nc)*cs, yll + float64(g.nr)*cs},
	}

	g.z = make([]float64, 0, g.nc*g.nr)
	for _, ln := range lns[nhdr:] {
		for _, s := range strings.Fields(ln) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				errfunc(s, err)
				v = g.nodata
			}
			g.z = append(g.z, v)
		}
	}
	if len(stErr) > 0 {
		return nil, fmt.Errorf(" dem.ReadASC %s:\n%s", fp, strings.Join(stErr, "\n"))
	}
	if len(g.z) != g.nc*g.nr {
		return nil, fmt.Errorf(" dem.ReadASC %s: read %s of %s values",
			fp, mmio.Thousands(int64(len(g.z))), mmio.Thousands(int64(g.nc*g.nr)))
	}
	return &g, nil
}

func (g *Grid) Name() string { return g.name }

func (g *Grid) Bound() orb.Bound { return g.b }

func (g *Grid) Resolution() (float64, float64) { return g.dx, g.dy }

// Value returns the elevation of the cell containing p.
func (g *Grid) Value(p orb.Point) (float64, bool) {
	j := int(math.Floor((p.X() - g.b.Min.X()) / g.dx))
	i := int(math.Floor((g.b.Max.Y() - p.Y()) / g.dy))
	if i < 0 || i >= g.nr || j < 0 || j >= g.nc {
		return 0., false
	}
	v := g.z[i*g.nc+j]
	if v == g.nodata || math.IsNaN(v) {
		return 0., false
	}
	return v, true
}
