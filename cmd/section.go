package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/bridgebeam/internal/beam"
	"github.com/alexiusacademia/bridgebeam/internal/diagram"
	"github.com/alexiusacademia/bridgebeam/internal/report"
	"github.com/alexiusacademia/bridgebeam/internal/section"
	"github.com/spf13/cobra"
)

var sectionFile string

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section properties, volume and mass of a beam",
	Long: `Compute the properties of the beam cross-section and the
material quantities of the whole beam.

The section is the outline of the shelves and rib with the bottom
chamfers and rib fillets. The net volume deducts both sling holes.

Examples:
  # Default beam
  bridgebeam section

  # Beam file with a lighter concrete
  bridgebeam section -f beam.json --density 2400`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Parameter document (JSON)")
}

func runSection(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, err := loadParams(sectionFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sec, err := section.FromBeam(p, s.cfg.Geometry, s.kernel.ArcSegments)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	b, err := report.Summarize("", p, s.cfg, s.kernel.ArcSegments, nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	props, q := b.Properties, b.Quantities

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width:\t%.0f mm\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.0f mm\n", props.Height)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid from bottom (ȳ):\t%.2f mm\n", props.CentroidY)
	fmt.Fprintf(w, "  Moment of inertia (Ix):\t%.4e mm⁴\n", props.Ix)
	fmt.Fprintf(w, "  Section modulus, top (St):\t%.4e mm³\n", props.Stop)
	fmt.Fprintf(w, "  Section modulus, bottom (Sb):\t%.4e mm³\n", props.Sbot)
	w.Flush()
	fmt.Println()

	fmt.Println("PARTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	bottom := p.BottomShelfHeight()
	top := p.BeamHeight - p.TopShHeight
	ribZ := bottom + p.RibHeight/2
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Part\tFrom (mm)\tTo (mm)\tWidth at mid (mm)\tArea (mm²)")
	fmt.Fprintf(w, "  Bottom shelf\t0\t%.0f\t%.0f\t%.0f\n", bottom, sec.WidthAtY(bottom/2), sec.AreaBetween(0, bottom))
	fmt.Fprintf(w, "  Rib\t%.0f\t%.0f\t%.0f\t%.0f\n", bottom, top, sec.WidthAtY(ribZ), sec.AreaBetween(bottom, top))
	fmt.Fprintf(w, "  Top shelf\t%.0f\t%.0f\t%.0f\t%.0f\n", top, p.BeamHeight, sec.WidthAtY((top+p.BeamHeight)/2), sec.AreaBetween(top, p.BeamHeight))
	w.Flush()
	fmt.Println()

	fmt.Println("SLING HOLES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius:\t%.1f mm\n", s.cfg.Limits.HoleRadius)
	fmt.Fprintf(w, "  Height of axis:\t%.1f mm\n", p.HoleHeight)
	fmt.Fprintf(w, "  Distance from ends:\t%.1f mm\n", p.HoleDepth)
	fmt.Fprintf(w, "  Spacing:\t%.1f mm\n", beam.HoleSpacing(p))
	fmt.Fprintf(w, "  Width at axis:\t%.1f mm\n", sec.WidthAtY(p.HoleHeight))
	w.Flush()
	fmt.Println()

	fmt.Println("QUANTITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length:\t%.0f mm\n", q.Length)
	fmt.Fprintf(w, "  Gross volume:\t%.3f m³\n", section.CubicMeters(q.GrossVolume))
	fmt.Fprintf(w, "  Sling holes:\t%.4f m³\n", section.CubicMeters(q.HoleVolume))
	fmt.Fprintf(w, "  Net volume:\t%.3f m³\n", section.CubicMeters(q.NetVolume))
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", s.cfg.Material.Density)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("BEAM SUMMARY", []string{
		fmt.Sprintf("Section area:  %.0f mm2", props.Area),
		fmt.Sprintf("Net volume:    %.3f m3", section.CubicMeters(q.NetVolume)),
		fmt.Sprintf("Mass:          %.0f kg", q.Mass),
	}))
	fmt.Println()
}
