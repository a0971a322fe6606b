package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/bridgebeam/internal/beam"
	"github.com/alexiusacademia/bridgebeam/internal/diagram"
	"github.com/alexiusacademia/bridgebeam/internal/handle"
	"github.com/alexiusacademia/bridgebeam/internal/kernel"
	"github.com/alexiusacademia/bridgebeam/internal/kernel/csg"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/section"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	buildFile    string
	buildDiagram bool
	buildStation float64
	buildOutput  string
	buildView    string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the beam solid and its edit handles",
	Long: `Build the beam from a parameter document and report every
geometry step, the resulting handles and any failure.

Without -f the default beam is built. The rib is clamped to the
narrower shelf before building.

Examples:
  # Build the default beam with ASCII diagrams
  bridgebeam build --diagram

  # Cross-section through the first sling hole
  bridgebeam build -f beam.json --diagram --station 250

  # Export the cross-section (png, svg, pdf or webp)
  bridgebeam build -f beam.json -o section.svg

  # Export the side view
  bridgebeam build -f beam.json -o elevation.png --view elevation`,
	Run: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildFile, "file", "f", "", "Parameter document (JSON)")
	buildCmd.Flags().BoolVar(&buildDiagram, "diagram", false, "Display ASCII section and elevation")
	buildCmd.Flags().Float64Var(&buildStation, "station", -1, "Station of the ASCII section along the beam (mm, default: mid-span)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Export a diagram image to this file")
	buildCmd.Flags().StringVar(&buildView, "view", "section", "Exported view: section or elevation")
}

func runBuild(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, err := loadParams(buildFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	s.kernel.Reset()
	res := s.plugin.Create(p)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PRECAST BRIDGE BEAM")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printParameters(p)
	printSteps(s.kernel.Ops())
	printHandles(res.Handles)
	printStatus(res)

	if len(res.Elements) > 0 {
		const step = 25.0
		v := csg.Volume(res.Elements[0].Solid, step)
		fmt.Printf("  Solid volume (sampled on a %.0f mm grid): %.3f m³\n", step, section.CubicMeters(v))
		fmt.Println()
	}

	if buildDiagram && len(res.Elements) > 0 {
		station := buildStation
		if station < 0 {
			station = p.BeamLength / 2
		}
		inside := solidSampler(res.Elements[0].Solid, p)
		fmt.Print(diagram.DrawASCIISection(inside, p.Width(), p.BeamHeight, station, diagram.DefaultSectionGrid))
		fmt.Print(diagram.DrawASCIIElevation(inside, p.Width(), p.BeamHeight, p.BeamLength, diagram.DefaultElevationGrid))
		fmt.Println()
	}

	if buildOutput != "" {
		if err := exportView(s, p, buildView, buildOutput); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("Diagram exported to: %s\n", buildOutput)
	}
}

func printParameters(p *params.Parameters) {
	fmt.Println("PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, n := range params.Names {
		v, _ := p.Get(n)
		fmt.Fprintf(w, "  %s:\t%.1f\n", n, v)
	}
	fmt.Fprintf(w, "  Height sum:\t%.1f\n", p.HeightSum())
	w.Flush()
	fmt.Println()
}

func printSteps(ops []csg.Op) {
	fmt.Println("GEOMETRY STEPS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, op := range ops {
		if op.Err != nil {
			fmt.Fprintf(w, "  %2d\t%s\t✗ %v\n", i+1, op.Name, op.Err)
			continue
		}
		fmt.Fprintf(w, "  %2d\t%s\t✓\n", i+1, op.Name)
	}
	w.Flush()
	fmt.Println()
}

func printHandles(hs []handle.Handle) {
	fmt.Println("HANDLES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tPoint (x, y, z)\tRef (x, y, z)\tValue")
	for _, h := range hs {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%.1f\n", h.ID, vec(h.Point), vec(h.Ref), r3.Norm(r3.Sub(h.Point, h.Ref)))
	}
	w.Flush()
	fmt.Println()
}

func printStatus(res *beam.Result) {
	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if res.Failure != nil {
		fmt.Printf("  ✗ Geometry aborted: %v\n", res.Failure)
		fmt.Println("    Handles are still placed and can be used to fix the beam.")
	} else {
		fmt.Printf("  ✓ %d element(s) built\n", len(res.Elements))
		for _, e := range res.Elements {
			fmt.Printf("    %s  pen %d, color %d, stroke %d\n", e.ID, e.Properties.Pen, e.Properties.Color, e.Properties.Stroke)
		}
	}
	fmt.Println()
}

func vec(v r3.Vec) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}

// solidSampler samples a built solid in the coordinates of the unrotated
// beam.
func solidSampler(solid kernel.Solid, p *params.Parameters) diagram.Sampler {
	rot := kernel.NewRotation(p.RotationAngleX, p.RotationAngleY, p.RotationAngleZ)
	return func(v r3.Vec) bool {
		return csg.Contains(solid, rot.Apply(v))
	}
}

func exportView(s *session, p *params.Parameters, view, filename string) error {
	hs := beam.Handles(p, s.cfg.Geometry)

	switch view {
	case "section":
		outline, err := beam.Profile(p, s.cfg.Geometry, s.kernel.ArcSegments)
		if err != nil {
			return err
		}
		props := (&section.Section{Vertices: outline}).CalculateProperties()

		var marks []diagram.Mark
		for _, h := range hs {
			if h.Point.X == h.Ref.X && h.Point.Z == h.Ref.Z {
				continue // runs along the beam
			}
			marks = append(marks, diagram.Mark{
				Label: h.ID,
				Point: r2.Vec{X: h.Point.X, Y: h.Point.Z},
				Ref:   r2.Vec{X: h.Ref.X, Y: h.Ref.Z},
			})
		}

		return diagram.ExportSectionDiagram(diagram.SectionDiagramData{
			Title:      "Beam Cross Section",
			Outline:    outline,
			Centroid:   r2.Vec{X: props.CentroidX, Y: props.CentroidY},
			HoleHeight: p.HoleHeight,
			HoleRadius: s.cfg.Limits.HoleRadius,
			Handles:    marks,
		}, filename)

	case "elevation":
		var marks []diagram.Mark
		for _, h := range hs {
			if h.Point.Y == h.Ref.Y && h.Point.Z == h.Ref.Z {
				continue // runs across the beam
			}
			marks = append(marks, diagram.Mark{
				Label: h.ID,
				Point: r2.Vec{X: h.Point.Y, Y: h.Point.Z},
				Ref:   r2.Vec{X: h.Ref.Y, Y: h.Ref.Z},
			})
		}
		centers := beam.HoleCenters(p)

		return diagram.ExportElevationDiagram(diagram.ElevationDiagramData{
			Title:      "Beam Elevation",
			Length:     p.BeamLength,
			Height:     p.BeamHeight,
			Holes:      centers[:],
			HoleRadius: s.cfg.Limits.HoleRadius,
			Handles:    marks,
		}, filename)
	}
	return fmt.Errorf("unknown view %q, want section or elevation", view)
}
