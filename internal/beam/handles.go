package beam

import (
	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/handle"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"gonum.org/v1/gonum/spatial/r3"
)

// Handles returns the five edit handles of an unrotated beam. Each one
// measures its parameter as the distance from its anchor.
func Handles(p *params.Parameters, geo config.Geometry) []handle.Handle {
	d := Derive(p)
	topZ := d.Height - geo.TopWidthHandleDrop
	midZ := d.Height / 2

	return []handle.Handle{
		handle.New(params.BeamLength,
			r3.Vec{Y: d.Length},
			r3.Vec{}),
		handle.New(params.BeamHeight,
			r3.Vec{Z: d.Height},
			r3.Vec{}),
		handle.New(params.TopShWidth,
			r3.Vec{X: d.TopOffset + p.TopShWidth, Z: topZ},
			r3.Vec{X: d.TopOffset, Z: topZ}),
		handle.New(params.BotShWidth,
			r3.Vec{X: d.BottomOffset + p.BotShWidth, Z: p.BotShLowHeight},
			r3.Vec{X: d.BottomOffset, Z: p.BotShLowHeight}),
		handle.New(params.RibThick,
			r3.Vec{X: d.RibOffset + p.RibThick, Z: midZ},
			r3.Vec{X: d.RibOffset, Z: midZ}),
	}
}
