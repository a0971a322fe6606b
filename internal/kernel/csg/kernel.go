// Package csg is an in-process geometry kernel. Solids are kept as a
// constructive tree and answer point-membership queries, which is enough
// to validate boolean results, estimate volumes and draw sections.
package csg

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

// Op is one entry of the kernel's operation log.
type Op struct {
	Name string
	Err  error
}

// Kernel implements kernel.Kernel.
type Kernel struct {
	// SampleCells is the number of sample cells per axis used to decide
	// whether a boolean result is empty.
	SampleCells int

	// ArcSegments is the number of straight segments used per fillet.
	ArcSegments int

	log zerolog.Logger
	ops []Op
}

var _ kernel.Kernel = (*Kernel)(nil)

// New creates a kernel with default sampling settings.
func New(log zerolog.Logger) *Kernel {
	return &Kernel{
		SampleCells:  16,
		ArcSegments: 8,
		log:         log,
	}
}

// Ops returns the operations performed since the last Reset.
func (k *Kernel) Ops() []Op {
	return append([]Op(nil), k.ops...)
}

// Reset clears the operation log.
func (k *Kernel) Reset() {
	k.ops = k.ops[:0]
}

func (k *Kernel) record(name string, err error) error {
	k.ops = append(k.ops, Op{Name: name, Err: err})
	if err != nil {
		k.log.Debug().Str("op", name).Err(err).Msg("kernel operation failed")
	}
	return err
}

// Box creates an axis-aligned cuboid.
func (k *Kernel) Box(origin, size r3.Vec) (kernel.Solid, error) {
	if !finite(origin) || !finite(size) || size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, k.record("box", fmt.Errorf("%w: box size %v", kernel.ErrInvalidGeometry, size))
	}
	x0, z0 := origin.X, origin.Z
	x1, z1 := x0+size.X, z0+size.Z
	// Vertex order matches kernel.EdgeBottomLeft..EdgeTopLeft.
	profile := kernel.Polygon{{X: x0, Y: z0}, {X: x1, Y: z0}, {X: x1, Y: z1}, {X: x0, Y: z1}}
	return newPrism(profile, origin.Y, size.Y), k.record("box", nil)
}

// Cylinder creates a cylinder along axis.
func (k *Kernel) Cylinder(base, axis r3.Vec, radius, height float64) (kernel.Solid, error) {
	n := r3.Norm(axis)
	if !finite(base) || !finite(axis) || n == 0 || radius <= 0 || height <= 0 {
		return nil, k.record("cylinder", fmt.Errorf("%w: cylinder r=%.2f h=%.2f", kernel.ErrInvalidGeometry, radius, height))
	}
	return &cylinder{base: base, axis: r3.Scale(1/n, axis), radius: radius, height: height}, k.record("cylinder", nil)
}

// Extrude sweeps profile along Y.
func (k *Kernel) Extrude(profile kernel.Polygon, y0, length float64) (kernel.Solid, error) {
	if err := profile.Validate(); err != nil {
		return nil, k.record("extrude", err)
	}
	if length <= 0 || math.IsNaN(y0) || math.IsInf(length, 0) {
		return nil, k.record("extrude", fmt.Errorf("%w: extrusion length %.2f", kernel.ErrInvalidGeometry, length))
	}
	return newPrism(profile.Clean(), y0, length), k.record("extrude", nil)
}

// Union joins two solids.
func (k *Kernel) Union(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb, err := operands(a, b)
	if err != nil {
		return nil, k.record("union", err)
	}
	return &union{a: sa, b: sb}, k.record("union", nil)
}

// Subtract removes b from a. An empty result is reported as invalid.
func (k *Kernel) Subtract(a, b kernel.Solid) (kernel.Solid, error) {
	sa, sb, err := operands(a, b)
	if err != nil {
		return nil, k.record("subtract", err)
	}
	res := &difference{a: sa, b: sb}
	if k.empty(res) {
		return nil, k.record("subtract", fmt.Errorf("%w: subtraction leaves nothing", kernel.ErrInvalidGeometry))
	}
	return res, k.record("subtract", nil)
}

// Chamfer cuts the selected longitudinal edges of a box or extrusion at
// 45 degrees, size measured along each adjacent face.
func (k *Kernel) Chamfer(s kernel.Solid, edges []kernel.Edge, size float64) (kernel.Solid, error) {
	p, ok := s.(*prism)
	if !ok {
		return nil, k.record("chamfer", fmt.Errorf("%w: chamfer needs a box or extrusion", kernel.ErrInvalidGeometry))
	}
	profile, err := p.profile.Chamfer(edges, size)
	if err != nil {
		return nil, k.record("chamfer", err)
	}
	return newPrism(profile, p.y0, p.y1-p.y0), k.record("chamfer", nil)
}

// Fillet rounds the selected longitudinal edges of a box or extrusion.
func (k *Kernel) Fillet(s kernel.Solid, edges []kernel.Edge, radius float64) (kernel.Solid, error) {
	p, ok := s.(*prism)
	if !ok {
		return nil, k.record("fillet", fmt.Errorf("%w: fillet needs a box or extrusion", kernel.ErrInvalidGeometry))
	}
	profile, err := p.profile.Fillet(edges, radius, k.ArcSegments)
	if err != nil {
		return nil, k.record("fillet", err)
	}
	return newPrism(profile, p.y0, p.y1-p.y0), k.record("fillet", nil)
}

// Mirror reflects s about plane.
func (k *Kernel) Mirror(s kernel.Solid, plane kernel.Plane) kernel.Solid {
	n := r3.Unit(plane.Normal)
	reflect := func(p r3.Vec) r3.Vec {
		d := r3.Dot(r3.Sub(p, plane.Point), n)
		return r3.Sub(p, r3.Scale(2*d, n))
	}
	k.record("mirror", nil)
	return &transformed{inner: asSolid(s), fwd: reflect, inv: reflect}
}

// Move translates s by offset.
func (k *Kernel) Move(s kernel.Solid, offset r3.Vec) kernel.Solid {
	k.record("move", nil)
	return &transformed{
		inner: asSolid(s),
		fwd:   func(p r3.Vec) r3.Vec { return r3.Add(p, offset) },
		inv:   func(p r3.Vec) r3.Vec { return r3.Sub(p, offset) },
	}
}

// Rotate turns s about the origin.
func (k *Kernel) Rotate(s kernel.Solid, rot kernel.Rotation) kernel.Solid {
	k.record("rotate", nil)
	if rot.IsIdentity() {
		return s
	}
	return &transformed{inner: asSolid(s), fwd: rot.Apply, inv: rot.Invert}
}

// empty samples the bounds of s on a regular grid of cell centers.
func (k *Kernel) empty(s Solid) bool {
	n := k.SampleCells
	if n < 1 {
		n = 1
	}
	b := s.Bounds()
	size := b.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for l := 0; l < n; l++ {
				p := r3.Vec{
					X: b.Min.X + size.X*(float64(i)+0.5)/float64(n),
					Y: b.Min.Y + size.Y*(float64(j)+0.5)/float64(n),
					Z: b.Min.Z + size.Z*(float64(l)+0.5)/float64(n),
				}
				if s.Contains(p) {
					return false
				}
			}
		}
	}
	return true
}

func operands(a, b kernel.Solid) (Solid, Solid, error) {
	sa, okA := a.(Solid)
	sb, okB := b.(Solid)
	if a == nil || b == nil || !okA || !okB {
		return nil, nil, fmt.Errorf("%w: missing or foreign operand", kernel.ErrInvalidGeometry)
	}
	return sa, sb, nil
}

// asSolid accepts only csg solids; anything else becomes an empty solid
// so that the next boolean reports it.
func asSolid(s kernel.Solid) Solid {
	if cs, ok := s.(Solid); ok {
		return cs
	}
	return nothing{}
}

type nothing struct{}

func (nothing) Bounds() r3.Box {
	return r3.Box{}
}

func (nothing) Contains(r3.Vec) bool {
	return false
}

func finite(v r3.Vec) bool {
	for _, x := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
