// Package beam builds the solid of a precast bridge beam and the handles
// used to edit it.
package beam

import (
	"fmt"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/element"
	"github.com/alexiusacademia/bridgebeam/internal/handle"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/resolver"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

// Builder turns a resolved parameter set into geometry.
type Builder struct {
	Kernel  kernel.Kernel
	Handles handle.Service // defaults to handle.DefaultService
	Config  config.Config
	Log     zerolog.Logger
}

// Result is the output of one build.
type Result struct {
	Elements []element.ModelElement
	Handles  []handle.Handle

	// Failure is the geometry step that aborted the build, if any. The
	// elements are empty in that case but the handles are still valid.
	Failure error
}

// NewBuilder creates a builder with the default handle service.
func NewBuilder(k kernel.Kernel, cfg config.Config, log zerolog.Logger) *Builder {
	return &Builder{
		Kernel:  k,
		Handles: handle.DefaultService{},
		Config:  cfg,
		Log:     log,
	}
}

// Build creates the beam solid and its handles. RibThick is clamped to
// the narrower shelf in p before anything is built.
func (b *Builder) Build(p *params.Parameters) *Result {
	if resolver.New(b.Config.Limits).ClampRibThick(p) {
		b.Log.Debug().Float64("rib_thick", p.RibThick).Msg("rib clamped to narrower shelf")
	}

	rot := kernel.NewRotation(p.RotationAngleX, p.RotationAngleY, p.RotationAngleZ)
	res := &Result{}

	solid, err := b.solid(p)
	if err != nil {
		res.Failure = err
		b.Log.Debug().Err(err).Msg("beam geometry aborted")
	} else {
		props := element.NewProperties(b.Config.Style, p.Color)
		res.Elements = append(res.Elements, element.New(props, b.Kernel.Rotate(solid, rot)))
	}

	res.Handles = b.PlaceHandles(p)
	return res
}

// PlaceHandles returns the handles of p, rotated with the beam.
func (b *Builder) PlaceHandles(p *params.Parameters) []handle.Handle {
	hs := Handles(p, b.Config.Geometry)
	b.service().Transform(hs, kernel.NewRotation(p.RotationAngleX, p.RotationAngleY, p.RotationAngleZ))
	return hs
}

func (b *Builder) service() handle.Service {
	if b.Handles == nil {
		return handle.DefaultService{}
	}
	return b.Handles
}

// solid runs the construction steps in order and stops at the first one
// the kernel rejects.
func (b *Builder) solid(p *params.Parameters) (kernel.Solid, error) {
	k := b.Kernel
	g := b.Config.Geometry
	d := Derive(p)

	// Bottom shelf. The chamfer goes on its two lower edges that run the
	// length of the beam, not on the short vertical edges at the ends.
	bottom, err := k.Box(r3.Vec{X: d.BottomOffset}, r3.Vec{X: p.BotShWidth, Y: d.Length, Z: d.BottomHeight})
	if err != nil {
		return nil, fmt.Errorf("bottom shelf: %w", err)
	}
	bottom, err = k.Chamfer(bottom, []kernel.Edge{kernel.EdgeBottomLeft, kernel.EdgeBottomRight}, g.ChamferSize)
	if err != nil {
		return nil, fmt.Errorf("bottom shelf chamfer: %w", err)
	}

	// Top shelf with a strand notch at each outer corner
	top, err := k.Box(r3.Vec{X: d.TopOffset, Z: d.Height - p.TopShHeight}, r3.Vec{X: p.TopShWidth, Y: d.Length, Z: p.TopShHeight})
	if err != nil {
		return nil, fmt.Errorf("top shelf: %w", err)
	}
	notch, err := k.Box(r3.Vec{X: d.TopOffset, Z: d.Height - g.NotchHeight}, r3.Vec{X: g.NotchWidth, Y: d.Length, Z: g.NotchHeight})
	if err != nil {
		return nil, fmt.Errorf("top shelf notch: %w", err)
	}
	if top, err = k.Subtract(top, notch); err != nil {
		return nil, fmt.Errorf("top shelf left notch: %w", err)
	}
	notch = k.Move(notch, r3.Vec{X: p.TopShWidth - g.NotchWidth})
	if top, err = k.Subtract(top, notch); err != nil {
		return nil, fmt.Errorf("top shelf right notch: %w", err)
	}

	beam, err := k.Union(bottom, top)
	if err != nil {
		return nil, fmt.Errorf("shelves: %w", err)
	}

	// Rib, full width; the side notches shape it below
	rib, err := k.Box(r3.Vec{Z: d.BottomHeight}, r3.Vec{X: d.Width, Y: d.Length, Z: p.RibHeight})
	if err != nil {
		return nil, fmt.Errorf("rib: %w", err)
	}
	if beam, err = k.Union(beam, rib); err != nil {
		return nil, fmt.Errorf("rib: %w", err)
	}

	if beam, err = b.cutSides(beam, p, d); err != nil {
		return nil, err
	}

	// Sling holes
	hole, err := k.Cylinder(r3.Vec{Y: p.HoleDepth, Z: p.HoleHeight}, r3.Vec{X: 1}, b.Config.Limits.HoleRadius, d.Width)
	if err != nil {
		return nil, fmt.Errorf("sling hole: %w", err)
	}
	holes, err := k.Union(hole, k.Move(hole, r3.Vec{Y: d.Length - 2*p.HoleDepth}))
	if err != nil {
		return nil, fmt.Errorf("sling holes: %w", err)
	}
	if beam, err = k.Subtract(beam, holes); err != nil {
		return nil, fmt.Errorf("sling holes: %w", err)
	}

	return beam, nil
}

// cutSides removes the notches on both sides of the rib. A notch profile
// that cannot be extruded leaves the beam uncut.
func (b *Builder) cutSides(beam kernel.Solid, p *params.Parameters, d Dimensions) (kernel.Solid, error) {
	k := b.Kernel
	g := b.Config.Geometry

	profile := NotchProfile(p, g)
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("notch profile: %w", err)
	}

	left, err := k.Extrude(profile, 0, d.Length)
	if err != nil {
		b.Log.Debug().Err(err).Msg("notch extrusion failed, sides left uncut")
		return beam, nil
	}
	if left, err = k.Fillet(left, FilletJunctions(p), g.FilletRadius); err != nil {
		return nil, fmt.Errorf("notch fillet: %w", err)
	}

	right := k.Mirror(left, kernel.Plane{Point: r3.Vec{X: d.Width / 2}, Normal: r3.Vec{X: 1}})
	notches, err := k.Union(left, right)
	if err != nil {
		return nil, fmt.Errorf("notches: %w", err)
	}
	if beam, err = k.Subtract(beam, notches); err != nil {
		return nil, fmt.Errorf("notches: %w", err)
	}
	return beam, nil
}
