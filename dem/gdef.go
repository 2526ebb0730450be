package dem

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/maseology/goHydro/grid"
	"github.com/paulmach/orb"
)

// GDEF adapts a goHydro grid definition and its real-valued companion array
// to an elevation surface. Inactive and null cells hold no data.
type GDEF struct {
	z      map[int]float64
	name   string
	b      orb.Bound
	cw     float64
	nc, nr int
}

// ReadGDEF loads a grid definition (.gdef) and its elevations from the
// .real/.bil companion file.
func ReadGDEF(gdefFP, realFP string, prnt bool) (*GDEF, error) {
	gd, err := grid.ReadGDEF(gdefFP, prnt)
	if err != nil {
		return nil, fmt.Errorf(" dem.ReadGDEF: %v", err)
	}
	var r grid.Real
	r.NewGD32(realFP, gd)
	if len(r.A) == 0 {
		return nil, fmt.Errorf(" dem.ReadGDEF %s: no values read", realFP)
	}

	cw := gd.Cw
	first, xn, xx, yn, yx := true, 0., 0., 0., 0.
	for c := range r.A {
		xy := gd.Coord[c]
		if first {
			xn, xx, yn, yx, first = xy.X, xy.X, xy.Y, xy.Y, false
			continue
		}
		if xy.X < xn {
			xn = xy.X
		}
		if xy.X > xx {
			xx = xy.X
		}
		if xy.Y < yn {
			yn = xy.Y
		}
		if xy.Y > yx {
			yx = xy.Y
		}
	}

	g := GDEF{
		name: strings.TrimSuffix(filepath.Base(realFP), filepath.Ext(realFP)),
		cw:   cw,
		nc:   int(math.Round((xx-xn)/cw)) + 1,
		nr:   int(math.Round((yx-yn)/cw)) + 1,
		b: orb.Bound{
			Min: orb.Point{xn - cw/2., yn - cw/2.},
			Max: orb.Point{xx + cw/2., yx + cw/2.},
		},
	}
	g.z = make(map[int]float64, len(r.A))
	for c, v := range r.A {
		if v == -9999. {
			continue
		}
		xy := gd.Coord[c]
		j := int(math.Round((xy.X - xn) / cw))
		i := int(math.Round((yx - xy.Y) / cw))
		g.z[i*g.nc+j] = v
	}
	return &g, nil
}

func (g *GDEF) Name() string { return g.name }

func (g *GDEF) Bound() orb.Bound { return g.b }

func (g *GDEF) Resolution() (float64, float64) { return g.cw, g.cw }

// Value returns the elevation of the active cell containing p.
func (g *GDEF) Value(p orb.Point) (float64, bool) {
	j := int(math.Floor((p.X() - g.b.Min.X()) / g.cw))
	i := int(math.Floor((g.b.Max.Y() - p.Y()) / g.cw))
	if i < 0 || i >= g.nr || j < 0 || j >= g.nc {
		return 0., false
	}
	v, ok := g.z[i*g.nc+j]
	return v, ok
}
