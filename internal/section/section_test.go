package section

import (
	"math"
	"testing"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectangle(w, h float64) *Section {
	return &Section{
		Name:     "rect",
		Vertices: kernel.Polygon{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}},
	}
}

func TestCalculateProperties_Rectangle(t *testing.T) {
	props := rectangle(300, 600).CalculateProperties()

	assert.InDelta(t, 180000, props.Area, 1e-6)
	assert.InDelta(t, 150, props.CentroidX, 1e-9)
	assert.InDelta(t, 300, props.CentroidY, 1e-9)
	assert.InDelta(t, 300*math.Pow(600, 3)/12, props.Ix, 1e-3)
	assert.InDelta(t, 300*600*600/6.0, props.Stop, 1e-3)
	assert.InDelta(t, props.Stop, props.Sbot, 1e-6)
	assert.Equal(t, 300.0, props.Width)
	assert.Equal(t, 600.0, props.Height)
}

func TestCalculateProperties_Clockwise(t *testing.T) {
	s := &Section{Vertices: kernel.Polygon{{X: 0, Y: 0}, {X: 0, Y: 600}, {X: 300, Y: 600}, {X: 300, Y: 0}}}
	props := s.CalculateProperties()
	assert.InDelta(t, 180000, props.Area, 1e-6)
	assert.InDelta(t, 300, props.CentroidY, 1e-9)
	assert.InDelta(t, 300*math.Pow(600, 3)/12, props.Ix, 1e-3)
}

func TestCalculateProperties_Degenerate(t *testing.T) {
	s := &Section{Vertices: kernel.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	assert.Equal(t, &Properties{}, s.CalculateProperties())
}

func TestWidthAtY(t *testing.T) {
	// U shape: two 100 wide legs with a 100 wide gap
	u := &Section{Vertices: kernel.Polygon{
		{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 200}, {X: 200, Y: 200},
		{X: 200, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 200}, {X: 0, Y: 200},
	}}

	assert.InDelta(t, 300, u.WidthAtY(50), 1e-9)
	assert.InDelta(t, 200, u.WidthAtY(150), 1e-9)
	assert.Zero(t, u.WidthAtY(250))
	assert.Zero(t, u.WidthAtY(-1))

	// at a step the width above counts, at the top the top edges do
	assert.InDelta(t, 200, u.WidthAtY(100), 1e-9)
	assert.InDelta(t, 200, u.WidthAtY(200), 1e-9)
	assert.InDelta(t, 300, u.WidthAtY(0), 1e-9)
}

func TestAreaBetween(t *testing.T) {
	u := &Section{Vertices: kernel.Polygon{
		{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 200}, {X: 200, Y: 200},
		{X: 200, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 200}, {X: 0, Y: 200},
	}}
	assert.InDelta(t, 300*100+200*100, u.AreaBetween(0, 200), 1e-6)
	assert.InDelta(t, 200*100, u.AreaBetween(200, 100), 1e-6, "bounds in either order")

	tri := &Section{Vertices: kernel.Polygon{{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 200, Y: 300}}}
	assert.InDelta(t, 400*300/2.0, tri.AreaBetween(0, 300), 1e-6)
	assert.InDelta(t, 300*600.0, rectangle(300, 600).AreaBetween(0, 600), 1e-6)
}

func TestFromBeam(t *testing.T) {
	p := params.Default()
	s, err := FromBeam(&p, config.DefaultGeometry(), 8)
	require.NoError(t, err)

	props := s.CalculateProperties()
	assert.Equal(t, 600.0, props.Width)
	assert.Equal(t, 1100.0, props.Height)
	assert.InDelta(t, 300, props.CentroidX, 1e-6, "symmetric about the center plane")
	assert.InDelta(t, props.Area, s.AreaBetween(0, 1100), props.Area*0.001)

	assert.InDelta(t, 160, s.WidthAtY(550), 1e-6, "rib")
	assert.InDelta(t, 480, s.WidthAtY(100), 1e-6, "bottom shelf")
	assert.InDelta(t, 600, s.WidthAtY(1030), 1e-6, "top shelf")
	assert.InDelta(t, 480, s.WidthAtY(1080), 1e-6, "between the strand notches")
}

func TestHoleVolume(t *testing.T) {
	s := rectangle(200, 1000)
	r := 45.5
	single := math.Pi * r * r * 200

	far := Holes{Radius: r, Height: 500, Depth: 250, Spacing: 9500}
	assert.InDelta(t, 2*single, s.HoleVolume(far, 10000), 2*single*0.001)

	same := Holes{Radius: r, Height: 500, Depth: 5000, Spacing: 0}
	assert.InDelta(t, single, s.HoleVolume(same, 10000), single*0.001)

	// Half of each hole sticks out of the beam ends.
	ends := Holes{Radius: r, Height: 500, Depth: 0, Spacing: 10000}
	assert.InDelta(t, single, s.HoleVolume(ends, 10000), single*0.001)

	assert.Zero(t, s.HoleVolume(Holes{}, 10000))
}

func TestQuantities(t *testing.T) {
	p := params.Default()
	cfg := config.Default()
	s, err := FromBeam(&p, cfg.Geometry, 8)
	require.NoError(t, err)

	q := s.Quantities(HolesOf(&p, cfg.Limits), p.BeamLength, cfg.Material.Density)
	area := s.CalculateProperties().Area

	assert.InDelta(t, area*10000, q.GrossVolume, 1e-3)
	// both holes run through the 160 wide rib
	want := 2 * math.Pi * 45.5 * 45.5 * 160
	assert.InDelta(t, want, q.HoleVolume, want*0.001)
	assert.InDelta(t, q.GrossVolume-q.HoleVolume, q.NetVolume, 1e-6)
	assert.InDelta(t, CubicMeters(q.NetVolume)*2500, q.Mass, 1e-9)
}

func TestIntervalUnion(t *testing.T) {
	tests := []struct {
		desc                   string
		a1, b1, a2, b2, lo, hi float64
		want                   float64
	}{
		{"disjoint", 0, 1, 2, 4, 0, 10, 3},
		{"overlap", 0, 3, 2, 4, 0, 10, 4},
		{"nested", 0, 5, 1, 2, 0, 10, 5},
		{"reversed", 2, 4, 0, 1, 0, 10, 3},
		{"clipped", -2, 1, 9, 12, 0, 10, 2},
		{"outside", -5, -1, 11, 12, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.InDelta(t, tt.want, intervalUnion(tt.a1, tt.b1, tt.a2, tt.b2, tt.lo, tt.hi), 1e-12)
		})
	}
}
