package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlanFooting is one footing in the plan view, centered on its column
// or wall position.
type PlanFooting struct {
	X, Y   float64 // support center (feet)
	WidthX float64 // plan extent along X (feet)
	WidthY float64 // plan extent along Y (feet)
	Deep   bool    // deep-foundation fallback
	Label  string
}

// ExportPlan exports a foundation plan to an image file: building
// outline, footing rectangles, and support markers. Deep-foundation
// elements are drawn hatched red so they stand out for review.
func ExportPlan(footings []PlanFooting, lengthFt, widthFt float64, filename string) error {
	p := plot.New()
	p.Title.Text = "Foundation Plan"
	p.X.Label.Text = "Length (ft)"
	p.Y.Label.Text = "Width (ft)"

	// Building outline
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: lengthFt, Y: 0},
		{X: lengthFt, Y: widthFt},
		{X: 0, Y: widthFt},
		{X: 0, Y: 0},
	}
	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	var centers plotter.XYs
	var deepCenters plotter.XYs

	for _, f := range footings {
		half := func(w float64) float64 { return w / 2 }
		rect := plotter.XYs{
			{X: f.X - half(f.WidthX), Y: f.Y - half(f.WidthY)},
			{X: f.X + half(f.WidthX), Y: f.Y - half(f.WidthY)},
			{X: f.X + half(f.WidthX), Y: f.Y + half(f.WidthY)},
			{X: f.X - half(f.WidthX), Y: f.Y + half(f.WidthY)},
		}
		poly, err := plotter.NewPolygon(rect)
		if err != nil {
			return err
		}
		if f.Deep {
			poly.Color = color.RGBA{R: 220, G: 80, B: 80, A: 120}
			poly.LineStyle.Color = color.RGBA{R: 180, G: 0, B: 0, A: 255}
			deepCenters = append(deepCenters, plotter.XY{X: f.X, Y: f.Y})
		} else {
			poly.Color = color.RGBA{R: 150, G: 150, B: 150, A: 90}
			poly.LineStyle.Color = color.RGBA{R: 60, G: 60, B: 60, A: 255}
			centers = append(centers, plotter.XY{X: f.X, Y: f.Y})
		}
		p.Add(poly)

		if f.Label != "" {
			lbl, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{{X: f.X, Y: f.Y + half(f.WidthY)}},
				Labels: []string{f.Label},
			})
			if err != nil {
				return err
			}
			p.Add(lbl)
		}
	}

	if len(centers) > 0 {
		s, err := plotter.NewScatter(centers)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.Black
		s.GlyphStyle.Radius = vg.Points(2)
		s.GlyphStyle.Shape = draw.PlusGlyph{}
		p.Add(s)
	}
	if len(deepCenters) > 0 {
		s, err := plotter.NewScatter(deepCenters)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 180, G: 0, B: 0, A: 255}
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(s)
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 10 * vg.Inch
	height := 8 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	case "":
		return p.Save(width, height, filename+".png")
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(filename))
	}
}
