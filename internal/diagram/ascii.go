package diagram

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sampler reports whether a point of the unrotated beam is concrete.
type Sampler func(p r3.Vec) bool

// Grid sets the character resolution of ASCII drawings.
type Grid struct {
	Columns int
	Rows    int
}

// DefaultSectionGrid suits a cross-section about as tall as it is wide.
var DefaultSectionGrid = Grid{Columns: 30, Rows: 22}

// DefaultElevationGrid suits a side view of a long beam.
var DefaultElevationGrid = Grid{Columns: 72, Rows: 12}

// DrawASCIISection draws the cross-section of the beam at the given
// station along its length by sampling inside at each character cell.
func DrawASCIISection(inside Sampler, width, height, station float64, g Grid) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CROSS SECTION AT %.0f mm\n", station))
	sb.WriteString("  ────────────────────────\n")

	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", g.Columns)))
	for i := 0; i < g.Rows; i++ {
		z := height * (float64(g.Rows-1-i) + 0.5) / float64(g.Rows)
		var row strings.Builder
		for j := 0; j < g.Columns; j++ {
			x := width * (float64(j) + 0.5) / float64(g.Columns)
			if inside(r3.Vec{X: x, Y: station, Z: z}) {
				row.WriteString("█")
			} else {
				row.WriteString(" ")
			}
		}
		sb.WriteString(fmt.Sprintf("  │%s│", row.String()))
		if i == 0 {
			sb.WriteString(fmt.Sprintf(" ◄─ %.0f", height))
		} else if i == g.Rows-1 {
			sb.WriteString(" ◄─ 0")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", g.Columns)))
	sb.WriteString(fmt.Sprintf("   width = %.0f mm\n", width))

	return sb.String()
}

// DrawASCIIElevation draws the side view of the beam on its longitudinal
// center plane. The sling holes show as gaps in the rib.
func DrawASCIIElevation(inside Sampler, width, height, length float64, g Grid) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  ELEVATION (center plane)\n")
	sb.WriteString("  ────────────────────────\n")

	x := width / 2
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", g.Columns)))
	for i := 0; i < g.Rows; i++ {
		z := height * (float64(g.Rows-1-i) + 0.5) / float64(g.Rows)
		var row strings.Builder
		for j := 0; j < g.Columns; j++ {
			y := length * (float64(j) + 0.5) / float64(g.Columns)
			if inside(r3.Vec{X: x, Y: y, Z: z}) {
				row.WriteString("▓")
			} else {
				row.WriteString("○")
			}
		}
		sb.WriteString(fmt.Sprintf("  │%s│\n", row.String()))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", g.Columns)))
	sb.WriteString(fmt.Sprintf("   0%s%.0f mm\n", strings.Repeat(" ", max(1, g.Columns-8)), length))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
