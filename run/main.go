package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maseology/hammer"
	"github.com/maseology/hammer/dem"
	"github.com/maseology/mmio"
)

func main() {
	cfgFP := "hammer.hmr"
	if len(os.Args) > 1 {
		cfgFP = os.Args[1]
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nhammer complete")

	cfg, err := hammer.LoadConfig(cfgFP)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf(" loading elevation surfaces from %s\n", cfg.DemDir)
	surfs, err := dem.LoadAll(cfg.DemDir, true)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tt.Print(fmt.Sprintf("%d surface(s) loaded\n", len(surfs)))

	stns, err := hammer.ReadStations(cfg.StaFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" %s station(s) read from %s\n\n", mmio.Thousands(int64(len(stns))), cfg.StaFP)

	pr := hammer.Processor{Surfaces: surfs, Rings: cfg.Rings, UTMZone: cfg.UTMZone, South: cfg.South}
	res, smry, err := pr.ProcessSerial(stns)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("\n %d station(s) processed, %d skipped\n", smry.NDone, smry.NSkipped)

	// output stages are independent; one failing does not block the next
	if err := hammer.WriteAttributeCSV(cfg.Prfx+".csv", res, cfg.Rings); err != nil {
		log.Printf("%v", err)
	} else {
		fmt.Printf(" attributes written to %s.csv\n", cfg.Prfx)
	}
	if err := hammer.WriteSectorsGeoJSON(cfg.Prfx+"rings.geojson", res); err != nil {
		log.Printf("%v", err)
	} else {
		fmt.Printf(" sector polygons written to %srings.geojson\n", cfg.Prfx)
	}
}
