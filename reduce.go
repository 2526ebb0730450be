package hammer

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/stat"
)

// Reduce samples s at its native resolution over sec's bounding box, keeps
// the cells whose sample points fall within sec, and returns the mean
// absolute elevation difference from refz rounded to 0.1 m along with the
// surviving sample count. ok is false when no sample survives.
func Reduce(sec orb.Polygon, s Surface, refz float64) (dh float64, n int, ok bool) {
	dx, dy := s.Resolution()
	if dx <= 0. || dy <= 0. {
		return 0., 0, false
	}
	b := sec.Bound()
	dd := make([]float64, 0, 64)
	for x := b.Min.X(); x < b.Max.X(); x += dx {
		for y := b.Min.Y(); y < b.Max.Y(); y += dy {
			p := orb.Point{x, y}
			if !pointInPolygon(p, sec) {
				continue
			}
			if z, ok := s.Value(p); ok {
				dd = append(dd, math.Abs(z-refz))
			}
		}
	}
	if len(dd) == 0 {
		return 0., 0, false
	}
	return round1(stat.Mean(dd, nil)), len(dd), true
}

// round1 rounds to one decimal, ties away from zero.
func round1(v float64) float64 { return math.Round(v*10.) / 10. }
