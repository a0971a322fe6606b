package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func defaultBeam(t *testing.T, mark string) Beam {
	t.Helper()
	p := params.Default()
	b, err := Summarize(mark, &p, config.Default(), 8, nil)
	require.NoError(t, err)
	return b
}

func TestSummarize(t *testing.T) {
	b := defaultBeam(t, "B1")

	assert.Equal(t, "B1", b.Mark)
	assert.Equal(t, "OK", b.Status())
	assert.Positive(t, b.Properties.Area)
	assert.InDelta(t, b.Properties.Area*10000, b.Quantities.GrossVolume, 1e-3)
	assert.Less(t, b.Quantities.NetVolume, b.Quantities.GrossVolume)
	assert.Positive(t, b.Quantities.Mass)
}

func TestSummarize_KeepsFailure(t *testing.T) {
	p := params.Default()
	b, err := Summarize("B2", &p, config.Default(), 8, errors.New("rib: invalid geometry"))
	require.NoError(t, err)
	assert.Equal(t, "FAILED", b.Status())
	assert.Equal(t, "rib: invalid geometry", b.Failure)
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.pdf")
	require.NoError(t, WritePDF(path, defaultBeam(t, "B1"), ""))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestWritePDF_MissingDiagram(t *testing.T) {
	dir := t.TempDir()
	err := WritePDF(filepath.Join(dir, "beam.pdf"), defaultBeam(t, "B1"), filepath.Join(dir, "none.png"))
	assert.Error(t, err)
}

func TestSchedule_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	b2 := defaultBeam(t, "B2")
	b2.Params.BeamLength = 12000
	b2.Params.HoleDepth = 400
	require.NoError(t, WriteSchedule(path, []Beam{defaultBeam(t, "B1"), b2}))

	entries, err := ReadSchedule(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "B1", entries[0].Mark)
	assert.Equal(t, 2, entries[0].Row)
	assert.Equal(t, params.Default(), entries[0].Params)

	assert.Equal(t, "B2", entries[1].Mark)
	assert.Equal(t, 12000.0, entries[1].Params.BeamLength)
	assert.Equal(t, 400.0, entries[1].Params.HoleDepth)
}

func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadSchedule_PartialColumns(t *testing.T) {
	path := writeSheet(t, [][]interface{}{
		{"BeamLength", "Notes", "BeamWidth"},
		{8000, "short span", 999},
		{},
		{9000, "", ""},
	})

	entries, err := ReadSchedule(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "B1", entries[0].Mark)
	assert.Equal(t, 8000.0, entries[0].Params.BeamLength)
	assert.Equal(t, 600.0, entries[0].Params.Width(), "derived columns are ignored")
	assert.Equal(t, "B2", entries[1].Mark)
	assert.Equal(t, 4, entries[1].Row)
}

func TestReadSchedule_Errors(t *testing.T) {
	tests := []struct {
		desc string
		rows [][]interface{}
		want string
	}{
		{"header only", [][]interface{}{{"Mark", "BeamLength"}}, "no beams"},
		{"not a number", [][]interface{}{{"Mark", "BeamLength"}, {"B1", "long"}}, "B2"},
		{"invalid beam", [][]interface{}{{"Mark", "RibHeight"}, {"B1", -5}}, "row 2"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ReadSchedule(writeSheet(t, tt.rows))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := ReadSchedule(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
