package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HeightsAddUp(t *testing.T) {
	p := Default()
	assert.Equal(t, p.BeamHeight, p.HeightSum())
	assert.Equal(t, 600.0, p.Width())
	assert.Equal(t, 313.0, p.BottomShelfHeight())
	require.NoError(t, p.Validate())
}

func TestGetSet_ByName(t *testing.T) {
	p := Default()

	for _, n := range Names {
		_, ok := p.Get(n)
		assert.True(t, ok, "Get(%s)", n)
	}

	assert.True(t, p.Set(RibHeight, 500))
	assert.Equal(t, 500.0, p.RibHeight)

	assert.True(t, p.Set(Color, 6.6))
	assert.Equal(t, 7, p.Color)

	assert.False(t, p.Set(BeamWidth, 900), "derived width is read-only")
	assert.False(t, p.Set(Name("Bogus"), 1))

	_, ok := p.Get(Name("Bogus"))
	assert.False(t, ok)
}

func TestWidth_TakesWiderShelf(t *testing.T) {
	p := Default()
	p.TopShWidth = 400
	p.BotShWidth = 700
	w, _ := p.Get(BeamWidth)
	assert.Equal(t, 700.0, w)
}

func TestValidate_RejectsNonPositive(t *testing.T) {
	p := Default()
	p.RibThick = 0

	err := p.Validate()
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "RibThick")
}

func TestLookup(t *testing.T) {
	n, ok := Lookup("HoleDepth")
	assert.True(t, ok)
	assert.Equal(t, HoleDepth, n)

	_, ok = Lookup("holedepth")
	assert.False(t, ok)
}

func TestLoadFromFile_MissingFieldsKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beam.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"BeamLength": 12000, "HoleDepth": 400}`), 0644))

	p, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12000.0, p.BeamLength)
	assert.Equal(t, 400.0, p.HoleDepth)
	assert.Equal(t, 320.0, p.TopShHeight)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "beam.json")
	p := Default()
	p.RotationAngleZ = 90

	require.NoError(t, p.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, *loaded)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"BeamLength": -1}`), 0644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)
}
