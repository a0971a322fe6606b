package section

import (
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
)

// Section is a beam cross-section outline.
// The outline is given in section coordinates where:
// - X points across the beam, measured from its left face
// - Y points upward, measured from the beam bottom
type Section struct {
	Name     string
	Vertices kernel.Polygon
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm from the bottom

	// Second moment of area about the horizontal centroidal axis
	Ix float64 // mm⁴

	// Section moduli for the top and bottom fibres
	Stop float64 // mm³
	Sbot float64 // mm³

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Quantities are the material quantities of a whole beam.
type Quantities struct {
	Length      float64 // mm
	GrossVolume float64 // section area × length (mm³)
	HoleVolume  float64 // concrete removed by the sling holes (mm³)
	NetVolume   float64 // mm³
	Mass        float64 // kg
}

// CubicMeters converts a volume in mm³.
func CubicMeters(mm3 float64) float64 {
	return mm3 * 1e-9
}
