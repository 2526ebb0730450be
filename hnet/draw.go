package hnet

import (
	"fmt"
	"image/color"
	"io"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

const (
	pageW   = 210. * vg.Millimeter // ISO A4 portrait
	pageH   = 297. * vg.Millimeter
	margin  = 10. * vg.Millimeter
	titleH  = 8. * vg.Millimeter
	maxUnit = 2.4 // outermost normalized radius drawn
)

// RenderPDF lays the diagrams out six per A4 page, two columns by three
// rows filled left-right top-down, and writes a multi-page PDF to w.
func RenderPDF(w io.Writer, nets []Net) error {
	if len(nets) == 0 {
		return fmt.Errorf(" hnet.RenderPDF: nothing to render")
	}
	cnv := vgpdf.New(pageW, pageH)
	dc := draw.New(cnv)
	hdl := text.Plain{Fonts: font.NewCache(liberation.Collection())}
	lsty := draw.LineStyle{Color: color.Black, Width: vg.Points(.75)}
	titleSty := text.Style{
		Color:   color.Black,
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: 11., Weight: xfont.WeightBold},
		XAlign:  text.XCenter,
		YAlign:  text.YTop,
		Handler: hdl,
	}
	lblSty := text.Style{
		Color:   color.Black,
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: 8.},
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: hdl,
	}
	for pi, pg := range Paginate(len(nets)) {
		if pi > 0 {
			cnv.NextPage()
		}
		for k, i := range pg {
			drawNet(dc, cell(k), nets[i], lsty, titleSty, lblSty)
		}
	}
	if _, err := cnv.WriteTo(w); err != nil {
		return fmt.Errorf(" hnet.RenderPDF: %v", err)
	}
	return nil
}

// cell returns the page rectangle of diagram slot k (0 top-left, 5
// bottom-right).
func cell(k int) vg.Rectangle {
	cw := (pageW - 2.*margin) / 2.
	ch := (pageH - 2.*margin) / 3.
	col, row := k%2, k/2
	x0 := margin + vg.Length(col)*cw
	y0 := pageH - margin - vg.Length(row+1)*ch
	return vg.Rectangle{
		Min: vg.Point{X: x0, Y: y0},
		Max: vg.Point{X: x0 + cw, Y: y0 + ch},
	}
}

func drawNet(dc draw.Canvas, r vg.Rectangle, n Net, lsty draw.LineStyle, titleSty, lblSty text.Style) {
	cx := (r.Min.X + r.Max.X) / 2.
	dc.FillText(titleSty, vg.Point{X: cx, Y: r.Max.Y}, n.Title)

	aw, ah := r.Max.X-r.Min.X, r.Max.Y-r.Min.Y-titleH
	side := aw
	if ah < side {
		side = ah
	}
	unit := side / (2. * maxUnit) * .96
	cy := r.Min.Y + ah/2.
	at := func(x, y float64) vg.Point {
		return vg.Point{X: cx + unit*vg.Length(x), Y: cy + unit*vg.Length(y)}
	}
	for _, rg := range n.Rings {
		for i := range rg.Labels {
			x0, y0, x1, y1 := rg.sectorLine(i)
			p0, p1 := at(x0, y0), at(x1, y1)
			dc.StrokeLine2(lsty, p0.X, p0.Y, p1.X, p1.Y)
		}
		for i, l := range rg.Labels {
			if l == "" {
				continue
			}
			lx, ly := rg.labelAt(i)
			dc.FillText(lblSty, at(lx, ly), l)
		}
		var p vg.Path
		rad := unit * vg.Length(rg.ROut)
		p.Move(vg.Point{X: cx + rad, Y: cy})
		p.Arc(vg.Point{X: cx, Y: cy}, rad, 0, 2.*math.Pi)
		p.Close()
		dc.SetLineStyle(lsty)
		dc.Stroke(p)
	}
}
