package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 45.5, cfg.Limits.HoleRadius)
	assert.Equal(t, 320.0, cfg.Limits.MinTopShHeight)
	assert.Equal(t, 160.0, cfg.Limits.MinBotShUpHeight)
	assert.Equal(t, 153.0, cfg.Limits.MinBotShLowHeight)
	assert.Equal(t, 467.0, cfg.Limits.MinRibHeight)
	assert.Equal(t, 20.0, cfg.Geometry.ChamferSize)
	assert.Equal(t, 100.0, cfg.Geometry.FilletRadius)
	require.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"limits": {"hole_radius": 30}, "material": {"density": 2400}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Limits.HoleRadius)
	assert.Equal(t, 320.0, cfg.Limits.MinTopShHeight)
	assert.Equal(t, 2400.0, cfg.Material.Density)
	assert.Equal(t, 60.0, cfg.Geometry.NotchWidth)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"limits": {"hole_radius": -1}}`), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "hole_radius")
}

func TestResolve_FlagsOverride(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{})
	assert.Equal(t, Default(), cfg)

	cfg.Resolve(Flags{HoleRadius: 50, Density: 2450})
	assert.Equal(t, 50.0, cfg.Limits.HoleRadius)
	assert.Equal(t, 2450.0, cfg.Material.Density)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("BRIDGEBEAM_HOLE_RADIUS=40\nBRIDGEBEAM_CONFIG=beam.json\n"), 0644))

	t.Setenv(EnvHoleRadius, "")
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvDensity, "2400")
	// t.Setenv restores the values afterwards; godotenv only fills unset keys
	require.NoError(t, os.Unsetenv(EnvHoleRadius))
	require.NoError(t, os.Unsetenv(EnvConfigPath))

	env, err := LoadEnv(file, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "beam.json", env.ConfigPath)
	assert.Equal(t, 40.0, env.Flags.HoleRadius)
	assert.Equal(t, 2400.0, env.Flags.Density, "process environment wins")
}

func TestLoadEnv_BadNumber(t *testing.T) {
	t.Setenv(EnvDensity, "heavy")
	_, err := LoadEnv()
	assert.ErrorContains(t, err, EnvDensity)
}
