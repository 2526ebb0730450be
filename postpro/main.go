package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/maseology/hammer/hnet"
	"github.com/maseology/mmio"
)

// reads a hammer attribute table (name + the 16 classic net columns) and
// renders a paginated PDF of station diagrams next to it.
func main() {
	tt := mmio.NewTimer()
	if len(os.Args) != 2 {
		log.Fatalf(" usage: hammerplot <attributes.csv>")
	}
	fp := os.Args[1]

	f, err := os.Open(fp)
	if err != nil {
		log.Fatalf("%v", err)
	}
	var nets []hnet.Net
	ln := 1
	for rec := range mmio.LoadCSV(io.Reader(f)) {
		ln++
		n, err := hnet.ClassicNet(rec)
		if err != nil {
			log.Fatalf(" %s line %d:%v", fp, ln, err)
		}
		nets = append(nets, n)
	}
	f.Close()
	if len(nets) == 0 {
		log.Fatalf(" %s: no station records found", fp)
	}

	pdfFP := mmio.RemoveExtension(fp) + ".pdf"
	pdf, err := os.Create(pdfFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pdf.Close()
	if err := hnet.RenderPDF(pdf, nets); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" %d diagram(s) written to %s\n", len(nets), pdfFP)
	tt.Print("complete")
}
