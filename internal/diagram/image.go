package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Mark is a labelled handle position, already projected onto the plane
// of the drawing.
type Mark struct {
	Label string
	Point r2.Vec
	Ref   r2.Vec
}

// SectionDiagramData holds data for drawing a beam section diagram
type SectionDiagramData struct {
	Title string

	// Outline counter-clockwise from bottom-left, X across, Y up (mm)
	Outline kernel.Polygon

	// Centroid of the outline
	Centroid r2.Vec

	// Sling hole axis height and radius; the hole runs across the section
	HoleHeight float64
	HoleRadius float64

	Handles []Mark
}

// ElevationDiagramData holds data for drawing the side view of a beam.
type ElevationDiagramData struct {
	Title string

	Length float64 // mm
	Height float64 // mm

	// Hole centers along the beam (X = station, Y = height)
	Holes      []r2.Vec
	HoleRadius float64

	Handles []Mark
}

var (
	outlineColor = color.Black
	holeColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	handleColor  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSectionDiagram exports a beam section diagram to an image file
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	if len(data.Outline) < 3 {
		return fmt.Errorf("section diagram: outline has %d vertices", len(data.Outline))
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outline := make(plotter.XYs, len(data.Outline)+1)
	for i, v := range data.Outline {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(data.Outline)] = outline[0]

	beamLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	beamLine.LineStyle.Width = vg.Points(2)
	beamLine.LineStyle.Color = outlineColor
	p.Add(beamLine)

	b := data.Outline.Bounds()

	// Sling hole band, seen end-on it crosses the whole section
	if data.HoleRadius > 0 {
		band, err := plotter.NewPolygon(plotter.XYs{
			{X: b.Min.X, Y: data.HoleHeight - data.HoleRadius},
			{X: b.Max.X, Y: data.HoleHeight - data.HoleRadius},
			{X: b.Max.X, Y: data.HoleHeight + data.HoleRadius},
			{X: b.Min.X, Y: data.HoleHeight + data.HoleRadius},
		})
		if err != nil {
			return err
		}
		band.Color = holeColor
		band.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		band.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(band)
	}

	// Centroid
	c, err := plotter.NewScatter(plotter.XYs{{X: data.Centroid.X, Y: data.Centroid.Y}})
	if err != nil {
		return err
	}
	c.GlyphStyle.Shape = draw.CrossGlyph{}
	c.GlyphStyle.Radius = vg.Points(5)
	p.Add(c)

	if err := addHandles(p, data.Handles); err != nil {
		return err
	}

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// ExportElevationDiagram exports the side view with both sling holes.
func ExportElevationDiagram(data ElevationDiagramData, filename string) error {
	if data.Length <= 0 || data.Height <= 0 {
		return fmt.Errorf("elevation diagram: invalid size %.1f x %.1f", data.Length, data.Height)
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Height (mm)"

	body, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Length, Y: 0},
		{X: data.Length, Y: data.Height},
		{X: 0, Y: data.Height},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	body.LineStyle.Width = vg.Points(2)
	body.LineStyle.Color = outlineColor
	p.Add(body)

	for _, h := range data.Holes {
		circle, err := plotter.NewPolygon(circleXYs(h, data.HoleRadius, 48))
		if err != nil {
			return err
		}
		circle.Color = holeColor
		p.Add(circle)
	}

	if err := addHandles(p, data.Handles); err != nil {
		return err
	}

	return save(p, 10*vg.Inch, 4*vg.Inch, filename)
}

func addHandles(p *plot.Plot, marks []Mark) error {
	if len(marks) == 0 {
		return nil
	}

	pts := make(plotter.XYs, len(marks))
	labels := plotter.XYLabels{XYs: make([]plotter.XY, len(marks)), Labels: make([]string, len(marks))}
	for i, m := range marks {
		pts[i] = plotter.XY{X: m.Point.X, Y: m.Point.Y}
		labels.XYs[i] = pts[i]
		labels.Labels[i] = m.Label

		arm, err := plotter.NewLine(plotter.XYs{{X: m.Ref.X, Y: m.Ref.Y}, pts[i]})
		if err != nil {
			return err
		}
		arm.LineStyle.Color = handleColor
		arm.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(arm)
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = handleColor
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

func circleXYs(center r2.Vec, r float64, n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = plotter.XY{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	return pts
}

// save writes the plot, choosing the format from the file extension.
// Unknown extensions get a .png suffix. WebP is rasterized at the
// default resolution.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	case ".webp":
		return saveWebP(p, width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func saveWebP(p *plot.Plot, width, height vg.Length, filename string) error {
	c := vgimg.New(width, height)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, c.Image(), nil); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return f.Close()
}
