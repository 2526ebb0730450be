package hammer

import "github.com/paulmach/orb"

// Surface is a gridded elevation model sampled at its native resolution.
type Surface interface {
	Name() string
	Bound() orb.Bound                  // planar extent
	Resolution() (dx, dy float64)      // native cell size
	Value(p orb.Point) (float64, bool) // false where the surface holds no data
}

// SelectSurface returns the first surface whose extent contains p, nil when
// none do. Order matters; earlier surfaces shadow later ones.
func SelectSurface(surfs []Surface, p orb.Point) Surface {
	for _, s := range surfs {
		if s.Bound().Contains(p) {
			return s
		}
	}
	return nil
}
