package hammer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// Station is one gravimetric survey point, planar/projected coordinates.
type Station struct {
	Name    string
	X, Y, Z float64 // easting, northing, reference elevation (set while processing)
}

// ReadStations reads a comma-delimited (name,x,y) station file, header line
// expected.
func ReadStations(fp string) ([]*Station, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" ReadStations: %v", err)
	}
	defer f.Close()
	var stns []*Station
	ln := 1
	for rec := range mmio.LoadCSV(io.Reader(f)) {
		ln++
		if len(rec) < 3 {
			return nil, fmt.Errorf(" ReadStations %s line %d: need name,x,y", fp, ln)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf(" ReadStations %s line %d: %v", fp, ln, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf(" ReadStations %s line %d: %v", fp, ln, err)
		}
		stns = append(stns, &Station{Name: strings.TrimSpace(rec[0]), X: x, Y: y})
	}
	if len(stns) == 0 {
		return nil, fmt.Errorf(" ReadStations %s: no stations found", fp)
	}
	return stns, nil
}
