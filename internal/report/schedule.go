package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/section"
	"github.com/xuri/excelize/v2"
)

// ScheduleSheet is the sheet written by WriteSchedule.
const ScheduleSheet = "Schedule"

const markColumn = "Mark"

// Entry is one beam read from a schedule.
type Entry struct {
	Mark   string
	Row    int // 1-based sheet row
	Params params.Parameters
}

var resultColumns = []string{"Area (mm2)", "Ix (mm4)", "Net volume (m3)", "Mass (kg)", "Status"}

// WriteSchedule writes one row per beam: its mark, every parameter and
// the computed quantities.
func WriteSchedule(path string, beams []Beam) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ScheduleSheet); err != nil {
		return err
	}

	header := []interface{}{markColumn}
	for _, n := range params.Names {
		header = append(header, string(n))
	}
	for _, c := range resultColumns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(ScheduleSheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ScheduleSheet, "A1", last, bold); err != nil {
		return err
	}

	for i, b := range beams {
		values := []interface{}{b.Mark}
		for _, n := range params.Names {
			v, _ := b.Params.Get(n)
			values = append(values, v)
		}
		values = append(values,
			b.Properties.Area,
			b.Properties.Ix,
			section.CubicMeters(b.Quantities.NetVolume),
			b.Quantities.Mass,
			b.Status(),
		)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ScheduleSheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}

// ReadSchedule reads beams from the first sheet of an xlsx workbook. The
// first row names the columns: "Mark" and any parameter names. Other
// columns are ignored, as are derived parameters. Parameters without a
// column keep their default values.
func ReadSchedule(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("report: %s: sheet %q has no beams", path, sheet)
	}

	markCol := -1
	columns := make(map[int]params.Name)
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == markColumn {
			markCol = i
			continue
		}
		if n, ok := params.Lookup(h); ok && n != params.BeamWidth {
			columns[i] = n
		}
	}

	var entries []Entry
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}

		e := Entry{Row: r + 2, Params: params.Default()}
		if markCol >= 0 && markCol < len(row) {
			e.Mark = strings.TrimSpace(row[markCol])
		}
		if e.Mark == "" {
			e.Mark = fmt.Sprintf("B%d", len(entries)+1)
		}

		for col, name := range columns {
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				cell, _ := excelize.CoordinatesToCellName(col+1, e.Row)
				return nil, fmt.Errorf("report: %s %s: %w", sheet, cell, err)
			}
			e.Params.Set(name, v)
		}

		if err := e.Params.Validate(); err != nil {
			return nil, fmt.Errorf("report: %s row %d: %w", sheet, e.Row, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
