package handle

import (
	"testing"

	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNew(t *testing.T) {
	h := New(params.BeamLength, r3.Vec{Y: 10000}, r3.Vec{})

	assert.Equal(t, "BeamLength", h.ID)
	assert.Equal(t, PointDir, h.Direction)
	assert.True(t, h.ApplyOnMove)
	require.Len(t, h.Bindings, 1)
	assert.Equal(t, Binding{Param: params.BeamLength, Direction: PointDir}, h.Bindings[0])
	assert.Equal(t, r3.Vec{Z: 1}, h.Axis(ZDir))
	assert.Equal(t, r3.Vec{}, h.Axis(PointDir))
}

func TestApply_PointDistance(t *testing.T) {
	p := params.Default()
	h := New(params.TopShWidth, r3.Vec{X: 600, Z: 1055}, r3.Vec{Z: 1055})

	got := DefaultService{}.Apply(&p, h, r3.Vec{X: 300, Y: 400, Z: 1055})
	assert.InDelta(t, 500, got[params.TopShWidth], 1e-9)
	assert.Equal(t, 600.0, p.TopShWidth, "parameters are not written")
}

func TestApply_AxisProjection(t *testing.T) {
	p := params.Default()
	h := Handle{
		ID:  "depth",
		Ref: r3.Vec{X: 10},
		Bindings: []Binding{
			{Param: params.HoleDepth, Direction: YDir},
			{Param: params.HoleHeight, Direction: ZDir},
		},
	}

	got := DefaultService{}.Apply(&p, h, r3.Vec{X: 10, Y: -30, Z: 40})
	assert.InDelta(t, -30, got[params.HoleDepth], 1e-12)
	assert.InDelta(t, 40, got[params.HoleHeight], 1e-12)
}

func TestTransform(t *testing.T) {
	var svc DefaultService
	handles := []Handle{
		New(params.BeamLength, r3.Vec{Y: 100}, r3.Vec{}),
		{ID: "x", Ref: r3.Vec{}, Bindings: []Binding{{Param: params.BeamLength, Direction: XDir}}},
	}

	svc.Transform(handles, kernel.NewRotation(0, 0, 90))

	assert.InDelta(t, -100, handles[0].Point.X, 1e-9)
	assert.InDelta(t, 0, handles[0].Point.Y, 1e-9)

	// The local X axis turned with the handle, so a drag along world Y
	// still reads as a positive X movement.
	p := params.Default()
	got := svc.Apply(&p, handles[1], r3.Vec{Y: 25})
	assert.InDelta(t, 25, got[params.BeamLength], 1e-9)
}

func TestTransform_PreservesDistances(t *testing.T) {
	var svc DefaultService
	h := New(params.RibThick, r3.Vec{X: 380, Z: 550}, r3.Vec{X: 220, Z: 550})
	handles := []Handle{h}

	svc.Transform(handles, kernel.NewRotation(15, -40, 70))

	p := params.Default()
	got := svc.Apply(&p, handles[0], handles[0].Point)
	assert.InDelta(t, 160, got[params.RibThick], 1e-9)
}

func TestFind(t *testing.T) {
	handles := []Handle{
		New(params.BeamLength, r3.Vec{}, r3.Vec{}),
		New(params.BeamHeight, r3.Vec{}, r3.Vec{}),
	}

	h, ok := Find(handles, "BeamHeight")
	require.True(t, ok)
	assert.Equal(t, "BeamHeight", h.ID)

	_, ok = Find(handles, "Nope")
	assert.False(t, ok)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "point", PointDir.String())
	assert.Equal(t, "z", ZDir.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
