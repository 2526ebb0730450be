package hammer

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
	"github.com/paulmach/orb/geojson"
)

// Columns returns the attribute column names for a set of rings, in
// creation order.
func Columns(rings []RingSpec) []string {
	var cols []string
	for _, rs := range rings {
		for i := 0; i < rs.N; i++ {
			cols = append(cols, rs.Column(i))
		}
	}
	return cols
}

// WriteAttributeCSV writes one row per result in order: station name, then
// one column per ring sector following Columns(rings). Undefined sectors and
// skipped stations are left blank.
func WriteAttributeCSV(fp string, res []*Result, rings []RingSpec) error {
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf(" WriteAttributeCSV: %v", err)
	}
	defer tw.Close()
	cols := Columns(rings)
	tw.WriteLine("name," + strings.Join(cols, ","))
	for _, r := range res {
		row := make([]string, 1, len(cols)+1)
		row[0] = r.Station.Name
		for k, rs := range rings {
			if k < len(r.Rings) && len(r.Rings[k].Sectors) == rs.N {
				for _, sec := range r.Rings[k].Sectors {
					if sec.Ok {
						row = append(row, strconv.FormatFloat(sec.DH, 'f', 1, 64))
					} else {
						row = append(row, "")
					}
				}
			} else {
				for i := 0; i < rs.N; i++ {
					row = append(row, "")
				}
			}
		}
		tw.WriteLine(strings.Join(row, ","))
	}
	return nil
}

// WriteSectorsGeoJSON writes every computed sector polygon as a feature
// carrying name, ring, sector, d_height and n_pixels properties.
func WriteSectorsGeoJSON(fp string, res []*Result) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range res {
		for _, rr := range r.Rings {
			for i, sec := range rr.Sectors {
				f := geojson.NewFeature(sec.Poly)
				f.Properties["name"] = r.Station.Name
				f.Properties["ring"] = rr.Spec.Prefix()
				f.Properties["sector"] = i + 1
				f.Properties["n_pixels"] = sec.Np
				if sec.Ok {
					f.Properties["d_height"] = sec.DH
				} else {
					f.Properties["d_height"] = nil
				}
				fc.Append(f)
			}
		}
	}
	b, err := json.MarshalIndent(fc, "", " ")
	if err != nil {
		return fmt.Errorf(" WriteSectorsGeoJSON: %v", err)
	}
	if err := ioutil.WriteFile(fp, b, 0644); err != nil {
		return fmt.Errorf(" WriteSectorsGeoJSON: %v", err)
	}
	return nil
}
