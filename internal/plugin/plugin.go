// Package plugin exposes the beam to a host application through the four
// entry points the host calls: version check, create, handle move and
// property edit.
package plugin

import (
	"github.com/alexiusacademia/bridgebeam/internal/beam"
	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/handle"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/resolver"
	"github.com/alexiusacademia/bridgebeam/internal/version"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

// Plugin is the capability set a host drives.
type Plugin interface {
	// CheckVersion reports whether the host version is supported.
	CheckVersion(hostVersion string) bool

	// Create builds the geometry and handles for p.
	Create(p *params.Parameters) *beam.Result

	// MoveHandle applies a handle drag to p and rebuilds.
	MoveHandle(p *params.Parameters, id string, input r3.Vec) *beam.Result

	// ModifyProperty applies a property edit to p. It reports false when
	// the name is not an editable parameter.
	ModifyProperty(p *params.Parameters, name string, value float64) bool
}

// BridgeBeam implements Plugin.
type BridgeBeam struct {
	builder  *beam.Builder
	handles  handle.Service
	resolver resolver.Resolver
	log      zerolog.Logger

	// last is the outcome of the most recent resolver run.
	last resolver.Outcome
}

var _ Plugin = (*BridgeBeam)(nil)

// New creates the plugin with the given collaborators. A nil handle
// service selects handle.DefaultService.
func New(k kernel.Kernel, svc handle.Service, cfg config.Config, log zerolog.Logger) *BridgeBeam {
	if svc == nil {
		svc = handle.DefaultService{}
	}
	return &BridgeBeam{
		builder: &beam.Builder{
			Kernel:  k,
			Handles: svc,
			Config:  cfg,
			Log:     log,
		},
		handles:  svc,
		resolver: resolver.New(cfg.Limits),
		log:      log,
	}
}

// CheckVersion accepts every host version.
func (b *BridgeBeam) CheckVersion(hostVersion string) bool {
	return version.Supports(hostVersion)
}

// Create builds the beam.
func (b *BridgeBeam) Create(p *params.Parameters) *beam.Result {
	return b.builder.Build(p)
}

// Handles returns the handles of p as Create would place them, without
// building the solid.
func (b *BridgeBeam) Handles(p *params.Parameters) []handle.Handle {
	return b.builder.PlaceHandles(p)
}

// MoveHandle converts the dragged point into parameter values, resolves
// each bound parameter and rebuilds. An unknown id rebuilds unchanged.
func (b *BridgeBeam) MoveHandle(p *params.Parameters, id string, input r3.Vec) *beam.Result {
	h, ok := handle.Find(b.Handles(p), id)
	if !ok {
		b.log.Debug().Str("handle", id).Msg("unknown handle")
		return b.Create(p)
	}

	values := b.handles.Apply(p, h, input)
	for _, bnd := range h.Bindings {
		v, ok := values[bnd.Param]
		if !ok {
			continue
		}
		b.resolve(p, bnd.Param, v)
	}
	return b.Create(p)
}

// ModifyProperty runs the resolver rules for name.
func (b *BridgeBeam) ModifyProperty(p *params.Parameters, name string, value float64) bool {
	n, ok := params.Lookup(name)
	if !ok || n == params.BeamWidth {
		b.log.Debug().Str("name", name).Msg("not an editable parameter")
		return false
	}
	b.resolve(p, n, value)
	return true
}

// LastOutcome returns what the most recent edit changed.
func (b *BridgeBeam) LastOutcome() resolver.Outcome {
	return b.last
}

func (b *BridgeBeam) resolve(p *params.Parameters, name params.Name, value float64) {
	out := b.resolver.Resolve(p, name, value)
	b.last = out

	switch {
	case out.Ignored:
		b.log.Debug().Str("name", string(name)).Float64("value", value).Msg("non-finite value ignored")
	case out.Residual != 0:
		b.log.Warn().
			Float64("requested", value).
			Float64("beam_height", p.BeamHeight).
			Float64("residual", out.Residual).
			Msg("heights at their minimums, beam height not reached")
	default:
		b.log.Debug().Str("name", string(name)).Int("changed", len(out.Changed)).Msg("parameters resolved")
	}
}
