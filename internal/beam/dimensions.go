package beam

import (
	"math"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"gonum.org/v1/gonum/spatial/r2"
)

// Dimensions are the working dimensions derived from a parameter set.
// Horizontal offsets are measured from the left face of the beam.
type Dimensions struct {
	Width        float64 // overall width, the wider shelf
	Height       float64 // BeamHeight
	Length       float64 // BeamLength
	BottomHeight float64 // BotShUpHeight + BotShLowHeight

	TopOffset    float64 // left edge of the top shelf
	BottomOffset float64 // left edge of the bottom shelf
	RibOffset    float64 // left face of the rib
}

// Derive computes the working dimensions of p.
func Derive(p *params.Parameters) Dimensions {
	w := p.Width()
	return Dimensions{
		Width:        w,
		Height:       p.BeamHeight,
		Length:       p.BeamLength,
		BottomHeight: p.BottomShelfHeight(),
		TopOffset:    (w - p.TopShWidth) / 2,
		BottomOffset: (w - p.BotShWidth) / 2,
		RibOffset:    (w - p.RibThick) / 2,
	}
}

// Notch corners that can receive the rib fillet.
const (
	NotchTopJunction    kernel.Edge = 0 // rib meets the top shelf haunch
	NotchBottomJunction kernel.Edge = 1 // rib meets the bottom shelf slope
)

// NotchProfile is the left notch cut out beside the rib, in the XZ plane.
// It traces the rib face, the bottom shelf slope and the top shelf haunch.
// The first two vertices are NotchTopJunction and NotchBottomJunction.
func NotchProfile(p *params.Parameters, geo config.Geometry) kernel.Polygon {
	d := Derive(p)
	haunch := d.Height - geo.HaunchDepth
	return kernel.Polygon{
		{X: d.RibOffset, Y: d.Height - p.TopShHeight},
		{X: d.RibOffset, Y: d.BottomHeight},
		{X: d.BottomOffset, Y: p.BotShLowHeight},
		{X: 0, Y: p.BotShLowHeight},
		{X: 0, Y: haunch},
		{X: 0, Y: haunch},
		{X: d.TopOffset, Y: haunch},
		{X: d.RibOffset, Y: d.Height - p.TopShHeight},
	}
}

// FilletJunctions selects the rib junctions to round. A rib as wide as a
// shelf has no corner on that side.
func FilletJunctions(p *params.Parameters) []kernel.Edge {
	switch {
	case p.RibThick == p.BotShWidth:
		return []kernel.Edge{NotchTopJunction}
	case p.RibThick == p.TopShWidth:
		return []kernel.Edge{NotchBottomJunction}
	default:
		return []kernel.Edge{NotchTopJunction, NotchBottomJunction}
	}
}

// Profile returns the outline of the finished cross-section, counter
// clockwise from the bottom left corner. Sling holes are not part of it.
// Fillets are approximated by segments straight pieces each.
func Profile(p *params.Parameters, geo config.Geometry, segments int) (kernel.Polygon, error) {
	d := Derive(p)
	h := d.Height
	xb, xt, xr := d.BottomOffset, d.TopOffset, d.RibOffset
	right := func(x float64) float64 { return d.Width - x }

	outline := kernel.Polygon{
		{X: xb, Y: 0},
		{X: right(xb), Y: 0},
		{X: right(xb), Y: p.BotShLowHeight},
		{X: right(xr), Y: d.BottomHeight},
		{X: right(xr), Y: h - p.TopShHeight},
		{X: right(xt), Y: h - geo.HaunchDepth},
		{X: right(xt), Y: h - geo.NotchHeight},
		{X: right(xt) - geo.NotchWidth, Y: h - geo.NotchHeight},
		{X: right(xt) - geo.NotchWidth, Y: h},
		{X: xt + geo.NotchWidth, Y: h},
		{X: xt + geo.NotchWidth, Y: h - geo.NotchHeight},
		{X: xt, Y: h - geo.NotchHeight},
		{X: xt, Y: h - geo.HaunchDepth},
		{X: xr, Y: h - p.TopShHeight},
		{X: xr, Y: d.BottomHeight},
		{X: xb, Y: p.BotShLowHeight},
	}

	// Outline corners matching the notch junctions, right side first.
	var fillets []kernel.Edge
	for _, j := range FilletJunctions(p) {
		if j == NotchTopJunction {
			fillets = append(fillets, 4, 13)
		} else {
			fillets = append(fillets, 3, 14)
		}
	}

	// Fillets only add vertices after index 2, so the chamfered corners
	// keep their indices.
	outline, err := outline.Fillet(fillets, geo.FilletRadius, segments)
	if err != nil {
		return nil, err
	}
	outline, err = outline.Chamfer([]kernel.Edge{kernel.EdgeBottomLeft, kernel.EdgeBottomRight}, geo.ChamferSize)
	if err != nil {
		return nil, err
	}
	return outline, nil
}

// HoleCenter returns the center of the sling hole near the beam start in
// the YZ plane.
func HoleCenter(p *params.Parameters) r2.Vec {
	return r2.Vec{X: p.HoleDepth, Y: p.HoleHeight}
}

// HoleCenters returns the centers of both sling holes in the YZ plane.
// The second hole mirrors the first about the middle of the beam.
func HoleCenters(p *params.Parameters) [2]r2.Vec {
	first := HoleCenter(p)
	return [2]r2.Vec{first, {X: p.BeamLength - p.HoleDepth, Y: p.HoleHeight}}
}

// HoleSpacing is the distance between the two sling holes.
func HoleSpacing(p *params.Parameters) float64 {
	return math.Abs(p.BeamLength - 2*p.HoleDepth)
}
