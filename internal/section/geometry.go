package section

import (
	"math"
	"sort"

	"github.com/alexiusacademia/bridgebeam/internal/beam"
	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/params"
)

// FromBeam returns the cross-section of the beam described by p. Fillets
// are approximated with segments straight pieces each.
func FromBeam(p *params.Parameters, geo config.Geometry, segments int) (*Section, error) {
	outline, err := beam.Profile(p, geo, segments)
	if err != nil {
		return nil, err
	}
	return &Section{Name: "bridge beam", Vertices: outline}, nil
}

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	b := s.Vertices.Bounds()
	props.MinX, props.MaxX = b.Min.X, b.Max.X
	props.MinY, props.MaxY = b.Min.Y, b.Max.Y

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	props.Ix = s.secondMoment(props.Area, props.CentroidY)
	if top := props.MaxY - props.CentroidY; top > 0 {
		props.Stop = props.Ix / top
	}
	if bot := props.CentroidY - props.MinY; bot > 0 {
		props.Sbot = props.Ix / bot
	}

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// secondMoment returns Ix about the horizontal axis through cy.
func (s *Section) secondMoment(area, cy float64) float64 {
	n := len(s.Vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		sum += cross * (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y)
	}
	return math.Abs(sum)/12 - area*cy*cy
}

// WidthAtY calculates the width of the section at height y above the
// bottom, summing every solid segment the horizontal line crosses. At a
// height where the width steps it returns the width just above; at the
// top of the section it returns the width of the top edges.
func (s *Section) WidthAtY(y float64) float64 {
	intersections := s.findIntersectionsAtY(y, y >= s.Vertices.Bounds().Max.Y)

	if len(intersections) < 2 {
		return 0
	}

	// Sort intersections by X coordinate
	sort.Float64s(intersections)

	// Total width is the sum of all segments
	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}

	return totalWidth
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the polygon.
// Edges count on [low, high), or on (low, high] when fromBelow is set.
func (s *Section) findIntersectionsAtY(y float64, fromBelow bool) []float64 {
	var intersections []float64
	n := len(s.Vertices)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := s.Vertices[i], s.Vertices[j]

		// Check if the edge crosses the Y level
		crosses := (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y)
		if fromBelow {
			crosses = (v1.Y < y && v2.Y >= y) || (v2.Y < y && v1.Y >= y)
		}
		if crosses {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			x := v1.X + t*(v2.X-v1.X)
			intersections = append(intersections, x)
		}
	}

	return intersections
}

// AreaBetween integrates the section width between two heights with the
// midpoint rule. It is exact for straight-sided sections whose vertices
// fall on strip boundaries.
func (s *Section) AreaBetween(y1, y2 float64) float64 {
	const numSteps = 200
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	dy := (y2 - y1) / numSteps

	var area float64
	for i := 0; i < numSteps; i++ {
		area += s.WidthAtY(y1+(float64(i)+0.5)*dy) * dy
	}
	return area
}
