package hammer

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const arcStep = 1. // angular discretization of sector arcs [deg]

// RingSpec defines one annulus of a Hammer net and its angular partition.
type RingSpec struct {
	Inner, Outer float64 // radii [m]
	N            int     // number of equal-angle sectors
}

func (rs RingSpec) valid() error {
	if rs.Inner < 0. {
		return fmt.Errorf(" ring %s: inner radius less than zero", rs.Prefix())
	}
	if rs.Outer <= rs.Inner {
		return fmt.Errorf(" ring %s: outer radius must exceed inner radius", rs.Prefix())
	}
	if rs.N < 1 {
		return fmt.Errorf(" ring %s: needs at least 1 sector", rs.Prefix())
	}
	return nil
}

// Prefix returns the ring's naming prefix, e.g. RingSpec{16.6, 53.3, 6}
// yields "17_53_6".
func (rs RingSpec) Prefix() string {
	return fmt.Sprintf("%.0f_%.0f_%d", rs.Inner, rs.Outer, rs.N)
}

// Column returns the attribute column name of sector i (zero-based),
// e.g. "17_53_6.4".
func (rs RingSpec) Column(i int) string {
	return fmt.Sprintf("%s.%d", rs.Prefix(), i+1)
}

// Sectors builds the rs.N closed sector polygons centred on p. Sector i
// spans [i*360/N, (i+1)*360/N] degrees counter-clockwise from due east.
// When Inner is zero the inner arc collapses to the centre point.
func (rs RingSpec) Sectors(p orb.Point) []orb.Polygon {
	d := 360. / float64(rs.N)
	out := make([]orb.Polygon, rs.N)
	for i := 0; i < rs.N; i++ {
		a0, a1 := float64(i)*d, float64(i+1)*d
		aa := arcAngles(a0, a1)
		ring := make(orb.Ring, 0, 2*len(aa)+2)
		for _, a := range aa {
			ring = append(ring, arcPoint(p, rs.Outer, a))
		}
		if rs.Inner > 0. {
			for j := len(aa) - 1; j >= 0; j-- {
				ring = append(ring, arcPoint(p, rs.Inner, aa[j]))
			}
		} else {
			ring = append(ring, p)
		}
		ring = append(ring, ring[0]) // close
		out[i] = orb.Polygon{ring}
	}
	return out
}

// arcAngles discretizes [a0,a1] in 1 degree steps, both endpoints included.
func arcAngles(a0, a1 float64) []float64 {
	aa := make([]float64, 0, int(a1-a0)+2)
	for a := a0; a < a1; a += arcStep {
		aa = append(aa, a)
	}
	return append(aa, a1)
}

func arcPoint(p orb.Point, r, adeg float64) orb.Point {
	a := adeg * math.Pi / 180.
	return orb.Point{p.X() + r*math.Cos(a), p.Y() + r*math.Sin(a)}
}

// pointInRing reports whether p falls within ring r by even-odd ray casting.
// Points landing exactly on an edge follow the crossing parity.
func pointInRing(p orb.Point, r orb.Ring) bool {
	if len(r) < 3 {
		return false
	}
	in, j := false, len(r)-1
	for i := 0; i < len(r); i++ {
		if (r[i].Y() > p.Y()) != (r[j].Y() > p.Y()) {
			if p.X() < (r[j].X()-r[i].X())*(p.Y()-r[i].Y())/(r[j].Y()-r[i].Y())+r[i].X() {
				in = !in
			}
		}
		j = i
	}
	return in
}

func pointInPolygon(p orb.Point, poly orb.Polygon) bool {
	in := false
	for _, r := range poly {
		if pointInRing(p, r) {
			in = !in
		}
	}
	return in
}
