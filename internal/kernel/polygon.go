package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a closed 2D profile. The closing vertex may be repeated.
type Polygon []r2.Vec

const pointTolerance = 1e-9

// Clean removes consecutive duplicate vertices and the repeated closing
// vertex.
func (pg Polygon) Clean() Polygon {
	out := make(Polygon, 0, len(pg))
	for _, v := range pg {
		if len(out) > 0 && samePoint(out[len(out)-1], v) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

// SignedArea returns the shoelace area, positive for counter-clockwise
// profiles.
func (pg Polygon) SignedArea() float64 {
	n := len(pg)
	if n < 3 {
		return 0
	}
	var a float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pg[i].X*pg[j].Y - pg[j].X*pg[i].Y
	}
	return a / 2
}

// Validate reports whether the cleaned polygon can bound a solid.
func (pg Polygon) Validate() error {
	c := pg.Clean()
	if len(c) < 3 {
		return fmt.Errorf("%w: polygon has %d distinct vertices", ErrInvalidGeometry, len(c))
	}
	for _, v := range c {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return fmt.Errorf("%w: polygon vertex is not finite", ErrInvalidGeometry)
		}
	}
	if math.Abs(c.SignedArea()) < pointTolerance {
		return fmt.Errorf("%w: polygon has no area", ErrInvalidGeometry)
	}
	if c.selfIntersects() {
		return fmt.Errorf("%w: polygon edges cross", ErrInvalidGeometry)
	}
	return nil
}

// Contains reports whether p lies inside or on the polygon.
func (pg Polygon) Contains(p r2.Vec) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pg[i], pg[j]
		if onSegment(p, a, b) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds returns the bounding rectangle of the polygon.
func (pg Polygon) Bounds() r2.Box {
	if len(pg) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: pg[0], Max: pg[0]}
	for _, v := range pg[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
	}
	return b
}

// selfIntersects checks every pair of non-adjacent edges for a proper
// crossing. Profiles here have a handful of vertices.
func (pg Polygon) selfIntersects() bool {
	n := len(pg)
	for i := 0; i < n; i++ {
		a1, a2 := pg[i], pg[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1, b2 := pg[j], pg[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsCross(a1, a2, b1, b2 r2.Vec) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)
	return ((d1 > pointTolerance && d2 < -pointTolerance) || (d1 < -pointTolerance && d2 > pointTolerance)) &&
		((d3 > pointTolerance && d4 < -pointTolerance) || (d3 < -pointTolerance && d4 > pointTolerance))
}

func orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

func onSegment(p, a, b r2.Vec) bool {
	if math.Abs(orient(a, b, p)) > pointTolerance*math.Max(1, r2.Norm(r2.Sub(b, a))) {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-pointTolerance && p.X <= math.Max(a.X, b.X)+pointTolerance &&
		p.Y >= math.Min(a.Y, b.Y)-pointTolerance && p.Y <= math.Max(a.Y, b.Y)+pointTolerance
}

func samePoint(a, b r2.Vec) bool {
	return math.Abs(a.X-b.X) < pointTolerance && math.Abs(a.Y-b.Y) < pointTolerance
}
