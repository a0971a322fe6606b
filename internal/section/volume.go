package section

import (
	"math"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/params"
)

// Holes describes the two transverse sling holes of a beam.
type Holes struct {
	Radius  float64 // mm
	Height  float64 // center above the beam bottom (mm)
	Depth   float64 // center from the beam start (mm)
	Spacing float64 // between the two centers (mm)
}

// HolesOf returns the sling holes of p.
func HolesOf(p *params.Parameters, limits config.Limits) Holes {
	return Holes{
		Radius:  limits.HoleRadius,
		Height:  p.HoleHeight,
		Depth:   p.HoleDepth,
		Spacing: p.BeamLength - 2*p.HoleDepth,
	}
}

// HoleVolume integrates the concrete removed by the holes of a beam of
// the given length. At each height the removed volume is the section
// width times the length of the holes' chords inside the beam; holes that
// overlap are counted once.
func (s *Section) HoleVolume(h Holes, length float64) float64 {
	const numSteps = 400
	if h.Radius <= 0 || length <= 0 {
		return 0
	}

	y1 := h.Height - h.Radius
	dy := 2 * h.Radius / numSteps

	removed := func(y float64) float64 {
		dz := y - h.Height
		half := math.Sqrt(math.Max(0, h.Radius*h.Radius-dz*dz))
		first := h.Depth
		second := h.Depth + h.Spacing
		chord := intervalUnion(first-half, first+half, second-half, second+half, 0, length)
		return s.WidthAtY(y) * chord
	}

	var vol float64
	for i := 0; i < numSteps; i++ {
		vol += removed(y1+(float64(i)+0.5)*dy) * dy
	}
	return vol
}

// Quantities computes the volumes and mass of a beam with this section.
func (s *Section) Quantities(h Holes, length, density float64) Quantities {
	props := s.CalculateProperties()
	q := Quantities{
		Length:      length,
		GrossVolume: props.Area * length,
		HoleVolume:  s.HoleVolume(h, length),
	}
	q.NetVolume = q.GrossVolume - q.HoleVolume
	q.Mass = CubicMeters(q.NetVolume) * density
	return q
}

// intervalUnion returns the length of [a1,b1] ∪ [a2,b2] clipped to
// [lo,hi].
func intervalUnion(a1, b1, a2, b2, lo, hi float64) float64 {
	clip := func(a, b float64) (float64, float64) {
		return math.Max(a, lo), math.Min(b, hi)
	}
	a1, b1 = clip(a1, b1)
	a2, b2 = clip(a2, b2)
	if a2 < a1 {
		a1, b1, a2, b2 = a2, b2, a1, b1
	}

	length := func(a, b float64) float64 { return math.Max(0, b-a) }
	if a2 > b1 {
		return length(a1, b1) + length(a2, b2)
	}
	return length(a1, math.Max(b1, b2))
}
