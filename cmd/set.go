package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	setFile  string
	setWrite bool
)

var setCmd = &cobra.Command{
	Use:   "set NAME VALUE",
	Short: "Edit one parameter and rebalance the others",
	Long: `Apply a property edit the way a modelling host does.

Height edits keep the shelf and rib heights adding up to BeamHeight.
Shrinking BeamHeight takes the difference from the top shelf, the
bottom shelf and the rib, in that order, never below their minimums.
Sling hole height and depth are clamped to their clearance band.

BeamWidth is derived from the shelf widths and cannot be set.

Examples:
  # Raise the beam, the rib absorbs the difference
  bridgebeam set BeamHeight 1250

  # Edit a beam file in place
  bridgebeam set -f beam.json HoleDepth 400 --write`,
	Args: cobra.ExactArgs(2),
	Run:  runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVarP(&setFile, "file", "f", "", "Parameter document (JSON)")
	setCmd.Flags().BoolVar(&setWrite, "write", false, "Save the edited parameters back to the file")
}

func runSet(cmd *cobra.Command, args []string) {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Printf("Error: invalid value %q: %v\n", args[1], err)
		return
	}

	s, err := newSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, err := loadParams(setFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	before := *p

	if !s.plugin.ModifyProperty(p, args[0], value) {
		fmt.Printf("Error: %s is not an editable parameter\n", args[0])
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     SET %s = %g\n", args[0], value)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printChanges(&before, p, s.plugin.LastOutcome())
	saveEdited(p, setFile, setWrite)
}

func printChanges(before, after *params.Parameters, out resolver.Outcome) {
	fmt.Println("CHANGES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if out.Ignored {
		fmt.Println("  Value is not a finite number, nothing changed.")
		fmt.Println()
		return
	}
	if len(out.Changed) == 0 {
		fmt.Println("  No parameter changed.")
		fmt.Println()
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Parameter\tBefore\tAfter")
	for _, n := range out.Changed {
		b, _ := before.Get(n)
		a, _ := after.Get(n)
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f\n", n, b, a)
	}
	w.Flush()
	fmt.Println()

	if out.Residual != 0 {
		fmt.Printf("  ⚠ Heights are at their minimums: %.1f mm could not be removed.\n", out.Residual)
		fmt.Printf("    BeamHeight is %.1f mm.\n", after.BeamHeight)
		fmt.Println()
	}
}

// saveEdited writes p back to path when requested. Edits of the default
// beam have no file to go back to.
func saveEdited(p *params.Parameters, path string, write bool) {
	if !write {
		return
	}
	if path == "" {
		fmt.Println("Nothing written: --write needs -f")
		return
	}
	if err := p.SaveToFile(path); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Parameters written to: %s\n", path)
}
