package csg

import (
	"math"

	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a csg solid. Every solid returned by Kernel implements it.
type Solid interface {
	kernel.Solid
	// Contains reports whether p lies inside or on the solid.
	Contains(p r3.Vec) bool
}

// prism is a profile in the XZ plane swept along Y. Boxes are prisms
// with a rectangular profile whose vertices follow kernel.Edge order.
type prism struct {
	profile kernel.Polygon
	y0, y1  float64
	bounds  r3.Box
}

func newPrism(profile kernel.Polygon, y0, length float64) *prism {
	pb := profile.Bounds()
	return &prism{
		profile: profile,
		y0:      y0,
		y1:      y0 + length,
		bounds: r3.Box{
			Min: r3.Vec{X: pb.Min.X, Y: y0, Z: pb.Min.Y},
			Max: r3.Vec{X: pb.Max.X, Y: y0 + length, Z: pb.Max.Y},
		},
	}
}

func (s *prism) Bounds() r3.Box { return s.bounds }

func (s *prism) Contains(p r3.Vec) bool {
	if p.Y < s.y0-eps || p.Y > s.y1+eps {
		return false
	}
	return s.profile.Contains(r2.Vec{X: p.X, Y: p.Z})
}

// cylinder is a right circular cylinder along an arbitrary axis.
type cylinder struct {
	base   r3.Vec
	axis   r3.Vec // unit
	radius float64
	height float64
}

func (s *cylinder) Bounds() r3.Box {
	top := r3.Add(s.base, r3.Scale(s.height, s.axis))
	ext := r3.Vec{
		X: s.radius * math.Sqrt(math.Max(0, 1-s.axis.X*s.axis.X)),
		Y: s.radius * math.Sqrt(math.Max(0, 1-s.axis.Y*s.axis.Y)),
		Z: s.radius * math.Sqrt(math.Max(0, 1-s.axis.Z*s.axis.Z)),
	}
	return r3.Box{
		Min: r3.Sub(minVec(s.base, top), ext),
		Max: r3.Add(maxVec(s.base, top), ext),
	}
}

func (s *cylinder) Contains(p r3.Vec) bool {
	d := r3.Sub(p, s.base)
	t := r3.Dot(d, s.axis)
	if t < -eps || t > s.height+eps {
		return false
	}
	radial := r3.Sub(d, r3.Scale(t, s.axis))
	return r3.Norm(radial) <= s.radius+eps
}

type union struct {
	a, b Solid
}

func (s *union) Bounds() r3.Box { return s.a.Bounds().Union(s.b.Bounds()) }

func (s *union) Contains(p r3.Vec) bool { return s.a.Contains(p) || s.b.Contains(p) }

type difference struct {
	a, b Solid
}

func (s *difference) Bounds() r3.Box { return s.a.Bounds() }

func (s *difference) Contains(p r3.Vec) bool {
	if !s.a.Contains(p) {
		return false
	}
	// Points on the boundary of the tool stay with the result so that
	// touching faces do not open gaps.
	return !s.b.Contains(p) || onBoundary(s.b, p)
}

// transformed maps a solid through an affine transform. inv must undo fwd.
type transformed struct {
	inner    Solid
	fwd, inv func(r3.Vec) r3.Vec
}

func (s *transformed) Bounds() r3.Box {
	var b r3.Box
	for i, v := range s.inner.Bounds().Vertices() {
		w := s.fwd(v)
		if i == 0 {
			b = r3.Box{Min: w, Max: w}
			continue
		}
		b.Min = minVec(b.Min, w)
		b.Max = maxVec(b.Max, w)
	}
	return b
}

func (s *transformed) Contains(p r3.Vec) bool { return s.inner.Contains(s.inv(p)) }

const eps = 1e-9

// onBoundary reports whether p sits on the surface of s: inside, but with
// a neighbour just outside along one of the axes.
func onBoundary(s Solid, p r3.Vec) bool {
	const h = 1e-6
	for _, d := range []r3.Vec{{X: h}, {X: -h}, {Y: h}, {Y: -h}, {Z: h}, {Z: -h}} {
		if !s.Contains(r3.Add(p, d)) {
			return true
		}
	}
	return false
}

func minVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
