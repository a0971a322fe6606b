// Package handle describes draggable control points and turns their
// movement back into parameter values.
package handle

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"gonum.org/v1/gonum/spatial/r3"
)

// Direction selects how a drag is measured.
type Direction int

// Handle directions
const (
	// PointDir measures the distance from the reference point.
	PointDir Direction = iota
	XDir
	YDir
	ZDir
)

func (d Direction) String() string {
	switch d {
	case PointDir:
		return "point"
	case XDir:
		return "x"
	case YDir:
		return "y"
	case ZDir:
		return "z"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Binding ties a handle to a parameter.
type Binding struct {
	Param     params.Name
	Direction Direction
}

// Handle is a draggable point. Point is where the handle is drawn, Ref
// is the anchor its value is measured from.
type Handle struct {
	ID          string
	Point       r3.Vec
	Ref         r3.Vec
	Bindings    []Binding
	Direction   Direction
	ApplyOnMove bool

	// axes are the local X, Y and Z axes after Transform.
	axes [3]r3.Vec
}

// New creates a handle bound to a single parameter, measured as a point
// distance. The handle id is the parameter name.
func New(name params.Name, point, ref r3.Vec) Handle {
	return Handle{
		ID:          string(name),
		Point:       point,
		Ref:         ref,
		Bindings:    []Binding{{Param: name, Direction: PointDir}},
		Direction:   PointDir,
		ApplyOnMove: true,
	}
}

// Axis returns the handle's local axis for d, following any rotation
// applied by Transform.
func (h Handle) Axis(d Direction) r3.Vec {
	i := int(d) - int(XDir)
	if i < 0 || i > 2 {
		return r3.Vec{}
	}
	if h.axes[i] == (r3.Vec{}) {
		return [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}[i]
	}
	return h.axes[i]
}

// Service is the handle collaborator of the plugin.
type Service interface {
	// Transform rotates every handle in place about the origin.
	Transform(handles []Handle, rot kernel.Rotation)

	// Apply converts the dragged position of h into new values for its
	// bound parameters. Values are not written to p.
	Apply(p *params.Parameters, h Handle, input r3.Vec) map[params.Name]float64
}

// DefaultService is the in-process handle service.
type DefaultService struct{}

var _ Service = DefaultService{}

// Transform rotates points, anchors and local axes.
func (DefaultService) Transform(handles []Handle, rot kernel.Rotation) {
	for i := range handles {
		h := &handles[i]
		for a := range h.axes {
			h.axes[a] = rot.Apply(h.Axis(XDir + Direction(a)))
		}
		h.Point = rot.Apply(h.Point)
		h.Ref = rot.Apply(h.Ref)
	}
}

// Apply measures input against the handle's anchor. A point binding takes
// the distance; an axis binding takes the signed projection on that axis.
func (DefaultService) Apply(p *params.Parameters, h Handle, input r3.Vec) map[params.Name]float64 {
	d := r3.Sub(input, h.Ref)
	values := make(map[params.Name]float64, len(h.Bindings))
	for _, b := range h.Bindings {
		var v float64
		switch b.Direction {
		case PointDir:
			v = r3.Norm(d)
		case XDir, YDir, ZDir:
			v = r3.Dot(d, h.Axis(b.Direction))
		default:
			continue
		}
		if math.IsNaN(v) {
			continue
		}
		values[b.Param] = v
	}
	return values
}

// Find returns the handle with the given id.
func Find(handles []Handle, id string) (Handle, bool) {
	for _, h := range handles {
		if h.ID == id {
			return h, true
		}
	}
	return Handle{}, false
}
