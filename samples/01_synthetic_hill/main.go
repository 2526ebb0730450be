package main

/*
	Hammer net terrain correction

	this example synthesizes a conical hill as an ESRI ASCII grid,
	computes the classic 2-17-53-170 m net for a small station set
	and renders the diagram booklet
*/

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/maseology/hammer"
	"github.com/maseology/hammer/dem"
	"github.com/maseology/hammer/hnet"
	"github.com/maseology/mmio"
)

const (
	outdir = "out/"
	x0, y0 = 500000., 4000000. // hill apex
	nc, nr = 500, 500
	cs     = 2. // cell width [m]
)

func main() {
	if err := os.MkdirAll(outdir+"dem/", 0755); err != nil {
		log.Fatalf("%v", err)
	}

	// conical hill, 50 m tall with a 400 m footprint, over a 100 m plain
	f, err := os.Create(outdir + "dem/hill.asc")
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Fprintf(f, "ncols %d\nnrows %d\nxllcorner %f\nyllcorner %f\ncellsize %f\n", nc, nr, x0-float64(nc)/2.*cs, y0-float64(nr)/2.*cs, cs)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			x := x0 + (float64(j)+.5-float64(nc)/2.)*cs
			y := y0 + (float64(nr)/2.-float64(i)-.5)*cs
			r := math.Sqrt((x-x0)*(x-x0) + (y-y0)*(y-y0))
			z := 100.
			if r < 400. {
				z += 50. * (1. - r/400.)
			}
			if j > 0 {
				fmt.Fprint(f, " ")
			}
			fmt.Fprintf(f, "%.2f", z)
		}
		fmt.Fprintln(f)
	}
	f.Close()

	stafp := outdir + "stations.csv"
	if err := os.WriteFile(stafp, []byte(
		"name,x,y\n"+
			"APEX,500000,4000000\n"+
			"FLANK,500150,4000000\n"+
			"PLAIN,500420,3999900\n"), 0644); err != nil {
		log.Fatalf("%v", err)
	}

	surfs, err := dem.LoadAll(outdir+"dem/", true)
	if err != nil {
		log.Fatalf("%v", err)
	}
	stns, err := hammer.ReadStations(stafp)
	if err != nil {
		log.Fatalf("%v", err)
	}

	pr := hammer.Processor{Surfaces: surfs, Rings: hammer.DefaultNet()}
	res, smry, err := pr.Process(stns, true)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf("\n %d station(s) processed, %d skipped\n", smry.NDone, smry.NSkipped)

	csvfp := outdir + "hill.csv"
	if err := hammer.WriteAttributeCSV(csvfp, res, pr.Rings); err != nil {
		log.Fatalf("%v", err)
	}
	if err := hammer.WriteSectorsGeoJSON(outdir+"hillrings.geojson", res); err != nil {
		log.Fatalf("%v", err)
	}

	// book of diagrams from the attribute table just written
	cf, err := os.Open(csvfp)
	if err != nil {
		log.Fatalf("%v", err)
	}
	var nets []hnet.Net
	for rec := range mmio.LoadCSV(io.Reader(cf)) {
		n, err := hnet.ClassicNet(rec)
		if err != nil {
			log.Fatalf("%v", err)
		}
		nets = append(nets, n)
	}
	cf.Close()
	pdf, err := os.Create(filepath.Join(outdir, "hill.pdf"))
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pdf.Close()
	if err := hnet.RenderPDF(pdf, nets); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" see %s\n", outdir)
}
