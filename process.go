package hammer

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/im7mortal/UTM"
	"github.com/paulmach/orb"
)

// State tracks a station through the processing pipeline.
type State int

const (
	Unprocessed State = iota
	SurfaceSelected
	ReferenceKnown
	SectorsBuilt
	Reduced
	Done
	Skipped // terminal, station left without results
)

func (s State) String() string {
	switch s {
	case Unprocessed:
		return "unprocessed"
	case SurfaceSelected:
		return "surface selected"
	case ReferenceKnown:
		return "reference elevation known"
	case SectorsBuilt:
		return "sectors built"
	case Reduced:
		return "reduced"
	case Done:
		return "done"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Sector is one computed compartment of a Hammer ring.
type Sector struct {
	Poly orb.Polygon // closed boundary
	DH   float64     // mean |z-ref| [m], 0.1 m precision
	Np   int         // surface samples caught
	Ok   bool        // false: no samples, DH undefined
}

// RingResult pairs a ring specification with its computed sectors.
type RingResult struct {
	Spec    RingSpec
	Sectors []Sector
}

// Result is the outcome of processing one station.
type Result struct {
	Station *Station
	Surface Surface // nil when skipped before selection
	Rings   []RingResult
	Why     string // populated when skipped
	State   State
}

// Summary tallies run outcomes.
type Summary struct{ NDone, NSkipped int }

// Processor applies a set of ring specifications to survey stations over a
// prioritized list of elevation surfaces.
type Processor struct {
	Surfaces []Surface  // tested in order, first extent match wins
	Rings    []RingSpec // applied in the order given
	UTMZone  int        // optional, locates skip messages geographically
	South    bool
}

// Check validates the processor configuration.
func (pr *Processor) Check() error {
	if len(pr.Surfaces) == 0 {
		return fmt.Errorf(" hammer: no elevation surfaces loaded")
	}
	if len(pr.Rings) == 0 {
		return fmt.Errorf(" hammer: no ring specifications given")
	}
	for _, rs := range pr.Rings {
		if err := rs.valid(); err != nil {
			return err
		}
	}
	return nil
}

// ProcessStation runs the pipeline for a single station, never returns nil.
// Unrecoverable station conditions yield a Skipped result, not an error.
func (pr *Processor) ProcessStation(s *Station, prnt bool) *Result {
	r := &Result{Station: s, State: Unprocessed}
	skip := func(why string) *Result {
		r.State, r.Why = Skipped, why
		if prnt {
			fmt.Println(pr.skipline(r))
		}
		return r
	}
	sf := SelectSurface(pr.Surfaces, orb.Point{s.X, s.Y})
	if sf == nil {
		return skip("no elevation surface covers station")
	}
	r.Surface, r.State = sf, SurfaceSelected
	z, ok := sf.Value(orb.Point{s.X, s.Y})
	if !ok {
		return skip(fmt.Sprintf("no reference elevation on %s", sf.Name()))
	}
	s.Z, r.State = z, ReferenceKnown
	for _, rs := range pr.Rings {
		secs := rs.Sectors(orb.Point{s.X, s.Y})
		r.State = SectorsBuilt
		rr := RingResult{Spec: rs, Sectors: make([]Sector, rs.N)}
		for i, sp := range secs {
			dh, n, ok := Reduce(sp, sf, z)
			rr.Sectors[i] = Sector{Poly: sp, DH: dh, Np: n, Ok: ok}
			if prnt {
				if ok {
					fmt.Printf("   %s %s: dH %.1f (%d px)\n", s.Name, rs.Column(i), dh, n)
				} else {
					fmt.Printf("   %s %s: no samples\n", s.Name, rs.Column(i))
				}
			}
		}
		r.Rings = append(r.Rings, rr)
		r.State = Reduced
	}
	r.State = Done
	return r
}

// Process runs every station in order, isolating per-station failures as
// skips. Only configuration problems return an error.
func (pr *Processor) Process(stns []*Station, prnt bool) ([]*Result, Summary, error) {
	if err := pr.Check(); err != nil {
		return nil, Summary{}, err
	}
	res := make([]*Result, len(stns))
	for k, s := range stns {
		if prnt {
			fmt.Printf(" station %s (%.1f, %.1f)\n", s.Name, s.X, s.Y)
		}
		res[k] = pr.ProcessStation(s, prnt)
	}
	return res, Summarize(res), nil
}

// ProcessSerial is Process behind a progress bar, reporting skips at the end.
func (pr *Processor) ProcessSerial(stns []*Station) ([]*Result, Summary, error) {
	if err := pr.Check(); err != nil {
		return nil, Summary{}, err
	}
	uiprogress.Start()
	bar := uiprogress.AddBar(len(stns)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("%d/%d stations", b.Current(), len(stns))
	})
	res := make([]*Result, len(stns))
	for k, s := range stns {
		res[k] = pr.ProcessStation(s, false)
		bar.Incr()
	}
	uiprogress.Stop()
	for _, r := range res {
		if r.State == Skipped {
			fmt.Println(pr.skipline(r))
		}
	}
	return res, Summarize(res), nil
}

// Summarize tallies completed and skipped stations.
func Summarize(res []*Result) Summary {
	var smry Summary
	for _, r := range res {
		if r.State == Done {
			smry.NDone++
		} else {
			smry.NSkipped++
		}
	}
	return smry
}

func (pr *Processor) skipline(r *Result) string {
	return fmt.Sprintf("  %s%s: %s; skipped", r.Station.Name, pr.locate(r.Station), r.Why)
}

// locate renders a station's geographic position when a UTM zone is known.
func (pr *Processor) locate(s *Station) string {
	if pr.UTMZone <= 0 {
		return ""
	}
	lat, lng, err := UTM.ToLatLon(s.X, s.Y, pr.UTMZone, "", !pr.South)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (%.5f, %.5f)", lat, lng)
}
