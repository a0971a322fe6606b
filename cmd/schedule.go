package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/bridgebeam/internal/report"
	"github.com/alexiusacademia/bridgebeam/internal/section"
	"github.com/spf13/cobra"
)

var scheduleOutput string

var scheduleCmd = &cobra.Command{
	Use:   "schedule INPUT.xlsx",
	Short: "Build every beam of an xlsx schedule",
	Long: `Read beams from the first sheet of a workbook, build each one
and write a schedule with the quantities of every beam.

The first row names the columns. A "Mark" column labels the beams;
any column named after a parameter (BeamLength, RibThick, ...) sets
it. Missing parameters keep their default values.

Examples:
  bridgebeam schedule beams.xlsx -o schedule.xlsx`,
	Args: cobra.ExactArgs(1),
	Run:  runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&scheduleOutput, "output", "o", "schedule.xlsx", "Schedule workbook to write")
}

func runSchedule(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	entries, err := report.ReadSchedule(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	beams := make([]report.Beam, 0, len(entries))
	for _, e := range entries {
		p := e.Params
		res := s.plugin.Create(&p)
		b, err := report.Summarize(e.Mark, &p, s.cfg, s.kernel.ArcSegments, res.Failure)
		if err != nil {
			s.log.Warn().Str("mark", e.Mark).Int("row", e.Row).Err(err).Msg("beam skipped")
			continue
		}
		beams = append(beams, b)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM SCHEDULE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Mark\tLength (mm)\tHeight (mm)\tNet volume (m³)\tMass (kg)\tStatus")
	var total float64
	for _, b := range beams {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.3f\t%.0f\t%s\n",
			b.Mark, b.Params.BeamLength, b.Params.BeamHeight,
			section.CubicMeters(b.Quantities.NetVolume), b.Quantities.Mass, b.Status())
		total += b.Quantities.Mass
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d of %d beam(s), total mass %.0f kg\n", len(beams), len(entries), total)
	fmt.Println()

	if err := report.WriteSchedule(scheduleOutput, beams); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Schedule written to: %s\n", scheduleOutput)
}
