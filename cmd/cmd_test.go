package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/kernel/csg"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configFile, holeRadius, density, verbose = "", 0, 0, false
	})
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvHoleRadius, "")
	t.Setenv(config.EnvDensity, "")
}

func TestLoadConfig_Layers(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"limits": {"hole_radius": 30}, "material": {"density": 2400}}`), 0644))
	t.Setenv(config.EnvConfigPath, path)
	t.Setenv(config.EnvDensity, "2300")

	cfg, err := loadConfig(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Limits.HoleRadius, "file")
	assert.Equal(t, 2300.0, cfg.Material.Density, "environment over file")

	density = 2200
	cfg, err = loadConfig(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2200.0, cfg.Material.Density, "flag over environment")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	resetFlags(t)
	configFile = filepath.Join(t.TempDir(), "none.json")

	_, err := loadConfig(zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadParams(t *testing.T) {
	p, err := loadParams("")
	require.NoError(t, err)
	assert.Equal(t, params.Default(), *p)

	path := filepath.Join(t.TempDir(), "beam.json")
	p.BeamLength = 12000
	require.NoError(t, p.SaveToFile(path))

	loaded, err := loadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 12000.0, loaded.BeamLength)
}

func TestExportView(t *testing.T) {
	s := &session{log: zerolog.Nop(), cfg: config.Default(), kernel: csg.New(zerolog.Nop())}
	p := params.Default()
	dir := t.TempDir()

	for _, view := range []string{"section", "elevation"} {
		file := filepath.Join(dir, view+".svg")
		require.NoError(t, exportView(s, &p, view, file), view)
		_, err := os.Stat(file)
		assert.NoError(t, err, view)
	}

	assert.ErrorContains(t, exportView(s, &p, "plan", filepath.Join(dir, "plan.svg")), "unknown view")
}

func TestSolidSampler_FollowsRotation(t *testing.T) {
	resetFlags(t)
	s, err := newSession()
	require.NoError(t, err)

	p := params.Default()
	p.RotationAngleZ = 90
	res := s.plugin.Create(&p)
	require.NoError(t, res.Failure)

	inside := solidSampler(res.Elements[0].Solid, &p)
	assert.True(t, inside(r3.Vec{X: 300, Y: 5000, Z: 550}), "rib")
	assert.False(t, inside(r3.Vec{X: 300, Y: p.HoleDepth, Z: p.HoleHeight}), "sling hole")
	assert.False(t, inside(r3.Vec{X: 30, Y: 5000, Z: 550}), "beside the rib")
}
