package resolver

import (
	"math"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/params"
)

// Resolver recomputes dependent parameters after a single edit so that
// the stacked heights always add up to BeamHeight and the sling holes
// stay inside their clearance band.
type Resolver struct {
	Limits config.Limits
}

// New creates a resolver bound to the given limits.
func New(limits config.Limits) Resolver {
	return Resolver{Limits: limits}
}

// Outcome describes what an edit did to the parameter set.
type Outcome struct {
	// Changed lists every parameter whose value differs after the edit,
	// including the edited one.
	Changed []params.Name

	// Residual is the part of a BeamHeight reduction that could not be
	// absorbed because every height already sits at its minimum.
	Residual float64

	// Ignored is set when the value was not a finite number and the
	// parameters were left as they were.
	Ignored bool
}

// Resolve applies value to the named parameter and rebalances the
// parameters that depend on it. It never fails: out of range values are
// clamped.
func (r Resolver) Resolve(p *params.Parameters, name params.Name, value float64) Outcome {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Outcome{Ignored: true}
	}

	before := *p
	var out Outcome

	switch name {
	case params.BeamHeight:
		out.Residual = r.beamHeight(p, value)

	case params.TopShHeight, params.RibHeight:
		p.Set(name, value)
		p.BeamHeight = p.HeightSum()

	case params.BotShUpHeight:
		p.BotShUpHeight = value
		p.BeamHeight = p.HeightSum()
		r.raiseHole(p, value+p.BotShLowHeight+r.Limits.HoleRadius)

	case params.BotShLowHeight:
		p.BotShLowHeight = value
		p.BeamHeight = p.HeightSum()
		r.raiseHole(p, p.BotShUpHeight+value+r.Limits.HoleRadius)

	case params.HoleHeight:
		p.HoleHeight = r.holeHeight(p, value)

	case params.HoleDepth:
		maxDepth := p.BeamLength / 2
		if value >= maxDepth {
			value = maxDepth - r.Limits.HoleRadius
		}
		p.HoleDepth = value

	default:
		p.Set(name, value)
	}

	out.Changed = diff(&before, p)
	return out
}

// beamHeight spreads a BeamHeight change over the stacked heights.
// Growth goes entirely into the rib; shrinkage is taken from the top
// shelf, then the bottom shelf parts, then the rib, each floored at its
// minimum. It returns the shortfall that could not be absorbed.
func (r Resolver) beamHeight(p *params.Parameters, value float64) float64 {
	difference := value - p.HeightSum()

	var residual float64
	if difference >= 0 {
		p.RibHeight += difference
	} else {
		residual = Distribute(-difference, []Bucket{
			{Value: &p.TopShHeight, Min: r.Limits.MinTopShHeight},
			{Value: &p.BotShUpHeight, Min: r.Limits.MinBotShUpHeight},
			{Value: &p.BotShLowHeight, Min: r.Limits.MinBotShLowHeight},
			{Value: &p.RibHeight, Min: r.Limits.MinRibHeight},
		})
	}

	if residual > 0 {
		p.BeamHeight = p.HeightSum()
	} else {
		p.BeamHeight = value
	}

	ceiling := p.BeamHeight - p.TopShHeight - r.Limits.HoleRadius
	if p.HoleHeight > ceiling {
		p.HoleHeight = ceiling
	}

	return residual
}

// holeHeight snaps a requested hole height onto the clearance lines.
// A request above the top line snaps to it, one below snaps to the bottom
// line, and a request exactly on the top line is kept.
func (r Resolver) holeHeight(p *params.Parameters, value float64) float64 {
	fromTop := r.HoleCeiling(p)
	fromBot := r.HoleFloor(p)

	switch {
	case value > fromTop:
		return fromTop
	case value < fromTop:
		return fromBot
	}
	return value
}

func (r Resolver) raiseHole(p *params.Parameters, floor float64) {
	if floor > p.HoleHeight {
		p.HoleHeight = floor
	}
}

// HoleCeiling is the highest allowed hole center: one hole radius below
// the underside of the top shelf.
func (r Resolver) HoleCeiling(p *params.Parameters) float64 {
	return p.BeamHeight - p.TopShHeight - r.Limits.HoleRadius
}

// HoleFloor is the lowest allowed hole center: one hole radius above the
// top of the bottom shelf.
func (r Resolver) HoleFloor(p *params.Parameters) float64 {
	return p.BotShLowHeight + p.BotShUpHeight + r.Limits.HoleRadius
}

// ClampRibThick limits the rib to the narrower shelf. It reports whether
// the value was changed.
func (r Resolver) ClampRibThick(p *params.Parameters) bool {
	minWidth := math.Min(p.TopShWidth, p.BotShWidth)
	if p.RibThick > minWidth {
		p.RibThick = minWidth
		return true
	}
	return false
}

func diff(before, after *params.Parameters) []params.Name {
	var changed []params.Name
	for _, n := range params.Names {
		a, _ := before.Get(n)
		b, _ := after.Get(n)
		if a != b {
			changed = append(changed, n)
		}
	}
	return changed
}
