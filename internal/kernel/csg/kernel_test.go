package csg

import (
	"math"
	"testing"

	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newKernel() *Kernel {
	return New(zerolog.Nop())
}

func TestBox(t *testing.T) {
	k := newKernel()
	b, err := k.Box(r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 10, Y: 20, Z: 30})
	require.NoError(t, err)

	assert.Equal(t, r3.Box{Min: r3.Vec{X: 1, Y: 2, Z: 3}, Max: r3.Vec{X: 11, Y: 22, Z: 33}}, b.Bounds())
	assert.True(t, Contains(b, r3.Vec{X: 5, Y: 5, Z: 5}))
	assert.False(t, Contains(b, r3.Vec{X: 5, Y: 25, Z: 5}))

	_, err = k.Box(r3.Vec{}, r3.Vec{X: 1, Y: 0, Z: 1})
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
}

func TestCylinder(t *testing.T) {
	k := newKernel()
	c, err := k.Cylinder(r3.Vec{Y: 100, Z: 50}, r3.Vec{X: 1}, 10, 40)
	require.NoError(t, err)

	assert.True(t, Contains(c, r3.Vec{X: 20, Y: 105, Z: 55}))
	assert.False(t, Contains(c, r3.Vec{X: 20, Y: 112, Z: 50}))
	assert.False(t, Contains(c, r3.Vec{X: 41, Y: 100, Z: 50}))

	b := c.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-12)
	assert.InDelta(t, 40, b.Max.X, 1e-12)
	assert.InDelta(t, 90, b.Min.Y, 1e-12)
	assert.InDelta(t, 60, b.Max.Z, 1e-12)

	_, err = k.Cylinder(r3.Vec{}, r3.Vec{}, 1, 1)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
}

func TestUnionAndSubtract(t *testing.T) {
	k := newKernel()
	a, _ := k.Box(r3.Vec{}, r3.Vec{X: 10, Y: 10, Z: 10})
	b, _ := k.Box(r3.Vec{X: 5}, r3.Vec{X: 10, Y: 10, Z: 10})

	u, err := k.Union(a, b)
	require.NoError(t, err)
	assert.True(t, Contains(u, r3.Vec{X: 12, Y: 5, Z: 5}))
	assert.Equal(t, 15.0, u.Bounds().Max.X)

	d, err := k.Subtract(a, b)
	require.NoError(t, err)
	assert.True(t, Contains(d, r3.Vec{X: 2, Y: 5, Z: 5}))
	assert.False(t, Contains(d, r3.Vec{X: 7, Y: 5, Z: 5}))
	assert.InDelta(t, 500, Volume(d, 0.5), 1e-6)
}

func TestSubtract_EmptyResultFails(t *testing.T) {
	k := newKernel()
	small, _ := k.Box(r3.Vec{X: 2, Y: 2, Z: 2}, r3.Vec{X: 1, Y: 1, Z: 1})
	big, _ := k.Box(r3.Vec{}, r3.Vec{X: 10, Y: 10, Z: 10})

	_, err := k.Subtract(small, big)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)

	ops := k.Ops()
	require.NotEmpty(t, ops)
	last := ops[len(ops)-1]
	assert.Equal(t, "subtract", last.Name)
	assert.Error(t, last.Err)
}

func TestBooleans_RejectMissingOperands(t *testing.T) {
	k := newKernel()
	a, _ := k.Box(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})

	_, err := k.Union(a, nil)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
	_, err = k.Subtract(nil, a)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
}

func TestChamfer(t *testing.T) {
	k := newKernel()
	b, _ := k.Box(r3.Vec{}, r3.Vec{X: 100, Y: 10, Z: 50})

	c, err := k.Chamfer(b, []kernel.Edge{kernel.EdgeBottomLeft, kernel.EdgeBottomRight}, 20)
	require.NoError(t, err)

	assert.False(t, Contains(c, r3.Vec{X: 5, Y: 5, Z: 5}), "bottom left corner is cut")
	assert.False(t, Contains(c, r3.Vec{X: 95, Y: 5, Z: 5}), "bottom right corner is cut")
	assert.True(t, Contains(c, r3.Vec{X: 5, Y: 5, Z: 45}), "top corners untouched")
	assert.True(t, Contains(c, r3.Vec{X: 15, Y: 5, Z: 15}))

	// 100*50 minus two 20x20 half squares; cells on the cut count as inside
	assert.InDelta(t, (5000-400)*10, Volume(c, 1), 250)

	_, err = k.Chamfer(b, []kernel.Edge{kernel.EdgeTopLeft, kernel.EdgeBottomLeft}, 30)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry, "two 30 cuts on a 50 side")

	_, err = k.Chamfer(b, []kernel.Edge{7}, 5)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
}

func TestFillet(t *testing.T) {
	k := newKernel()
	k.ArcSegments = 64
	b, _ := k.Box(r3.Vec{}, r3.Vec{X: 100, Y: 10, Z: 100})

	f, err := k.Fillet(b, []kernel.Edge{kernel.EdgeTopRight}, 40)
	require.NoError(t, err)

	assert.False(t, Contains(f, r3.Vec{X: 99, Y: 5, Z: 99}))
	assert.True(t, Contains(f, r3.Vec{X: 60, Y: 5, Z: 60}))
	assert.True(t, Contains(f, r3.Vec{X: 80, Y: 5, Z: 80}), "inside the arc")

	removed := (40*40 - math.Pi*40*40/4) * 10
	assert.InDelta(t, 100*100*10-removed, Volume(f, 1), 150)

	_, err = k.Fillet(b, []kernel.Edge{kernel.EdgeTopRight}, 200)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
}

func TestExtrude(t *testing.T) {
	k := newKernel()
	tri := kernel.Polygon{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 0}}

	s, err := k.Extrude(tri, 5, 20)
	require.NoError(t, err)
	assert.True(t, Contains(s, r3.Vec{X: 2, Y: 10, Z: 2}))
	assert.False(t, Contains(s, r3.Vec{X: 8, Y: 10, Z: 8}))
	assert.False(t, Contains(s, r3.Vec{X: 2, Y: 30, Z: 2}))

	_, err = k.Extrude(kernel.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0, 10)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)

	_, err = k.Extrude(tri, 0, 0)
	assert.ErrorIs(t, err, kernel.ErrInvalidGeometry)
}

func TestTransforms(t *testing.T) {
	k := newKernel()
	b, _ := k.Box(r3.Vec{}, r3.Vec{X: 10, Y: 10, Z: 10})

	m := k.Move(b, r3.Vec{Y: 100})
	assert.True(t, Contains(m, r3.Vec{X: 5, Y: 105, Z: 5}))
	assert.False(t, Contains(m, r3.Vec{X: 5, Y: 5, Z: 5}))

	mir := k.Mirror(b, kernel.Plane{Point: r3.Vec{X: 50}, Normal: r3.Vec{X: 1}})
	assert.True(t, Contains(mir, r3.Vec{X: 95, Y: 5, Z: 5}))
	assert.InDelta(t, 90, mir.Bounds().Min.X, 1e-12)

	rot := k.Rotate(b, kernel.NewRotation(0, 0, 90))
	assert.True(t, Contains(rot, r3.Vec{X: -5, Y: 5, Z: 5}))
	assert.False(t, Contains(rot, r3.Vec{X: 5, Y: 5, Z: 5}))
	assert.InDelta(t, -10, rot.Bounds().Min.X, 1e-9)

	assert.Same(t, b, k.Rotate(b, kernel.Identity()))
}

func TestReset(t *testing.T) {
	k := newKernel()
	_, _ = k.Box(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
	require.Len(t, k.Ops(), 1)
	k.Reset()
	assert.Empty(t, k.Ops())
}
