// Package kernel defines the solid-modelling operations the beam builder
// needs from a geometry kernel. Hosts plug their own kernel in; package
// csg provides an in-process implementation.
//
// Coordinates follow the beam: X runs across the beam width, Y along the
// beam length and Z up. Profiles are drawn in the XZ plane and extruded
// along Y.
package kernel

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidGeometry is wrapped by every kernel operation that produces a
// degenerate or otherwise unusable result.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Solid is an opaque boundary-representation solid owned by a kernel.
type Solid interface {
	Bounds() r3.Box
}

// Edge selects an edge of a solid for chamfering or filleting.
//
// For boxes it names one of the four edges running parallel to Y. For
// extruded solids it is the index of the profile vertex whose
// longitudinal edge is meant, counted after duplicate vertices have been
// removed.
type Edge int

// Longitudinal box edges, seen looking along +Y. These run the full
// length of the box; the vertical edges at its ends cannot be selected.
const (
	EdgeBottomLeft Edge = iota
	EdgeBottomRight
	EdgeTopRight
	EdgeTopLeft
)

// Plane is given by a point on it and its normal.
type Plane struct {
	Point  r3.Vec
	Normal r3.Vec
}

// Kernel is the set of operations the beam pipeline uses.
type Kernel interface {
	// Box creates an axis-aligned cuboid with its minimum corner at origin.
	Box(origin, size r3.Vec) (Solid, error)

	// Cylinder creates a cylinder whose base circle is centered at base
	// and which extends height along axis.
	Cylinder(base, axis r3.Vec, radius, height float64) (Solid, error)

	// Extrude sweeps a closed XZ profile along Y from y0 to y0+length.
	Extrude(profile Polygon, y0, length float64) (Solid, error)

	Union(a, b Solid) (Solid, error)
	Subtract(a, b Solid) (Solid, error)

	Chamfer(s Solid, edges []Edge, size float64) (Solid, error)
	Fillet(s Solid, edges []Edge, radius float64) (Solid, error)

	Mirror(s Solid, plane Plane) Solid
	Move(s Solid, offset r3.Vec) Solid
	Rotate(s Solid, rot Rotation) Solid
}
