// Package hnet renders Hammer net terrain correction diagrams to PDF.
package hnet

import (
	"fmt"
	"math"
)

// Ring is one annulus of a radial diagram.
type Ring struct {
	Labels    []string // sector labels, counter-clockwise from due east
	RIn, ROut float64  // normalized radii
	Offset    float64  // label angle offset from sector start [rad]
}

// Net is one station's diagram.
type Net struct {
	Title string
	Rings []Ring
}

// ClassicNet maps one attribute row (station name followed by 16 sector
// values in 2_17_4/17_53_6/53_170_6 column order) onto the standard
// three-ring diagram.
func ClassicNet(rec []string) (Net, error) {
	if len(rec) < 17 {
		return Net{}, fmt.Errorf(" hnet.ClassicNet: need 17 columns (name + 16 sector values), got %d", len(rec))
	}
	return Net{
		Title: rec[0],
		Rings: []Ring{
			{Labels: rec[1:5], RIn: 0., ROut: .8, Offset: math.Pi / 4.},
			{Labels: rec[5:11], RIn: .8, ROut: 1.6, Offset: math.Pi / 6.},
			{Labels: rec[11:17], RIn: 1.6, ROut: 2.4, Offset: math.Pi / 6.},
		},
	}, nil
}

const perPage = 6 // 2 columns by 3 rows

// Paginate splits n diagrams into page groups of six indices.
func Paginate(n int) [][]int {
	var pgs [][]int
	for i0 := 0; i0 < n; i0 += perPage {
		i1 := i0 + perPage
		if i1 > n {
			i1 = n
		}
		pg := make([]int, 0, perPage)
		for i := i0; i < i1; i++ {
			pg = append(pg, i)
		}
		pgs = append(pgs, pg)
	}
	return pgs
}

// sectorLine returns the unit-space endpoints of the dividing line opening
// sector i, drawn from the inner to the outer radius.
func (r Ring) sectorLine(i int) (x0, y0, x1, y1 float64) {
	a := float64(i) * 2. * math.Pi / float64(len(r.Labels))
	return r.RIn * math.Cos(a), r.RIn * math.Sin(a), r.ROut * math.Cos(a), r.ROut * math.Sin(a)
}

// labelAt returns the unit-space position of sector i's label, placed at
// three quarters of the outer radius.
func (r Ring) labelAt(i int) (x, y float64) {
	a := float64(i)*2.*math.Pi/float64(len(r.Labels)) + r.Offset
	return .75 * r.ROut * math.Cos(a), .75 * r.ROut * math.Sin(a)
}
