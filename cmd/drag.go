package cmd

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/bridgebeam/internal/handle"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	dragFile  string
	dragWrite bool
)

var dragCmd = &cobra.Command{
	Use:   "drag HANDLE X Y Z",
	Short: "Move an edit handle to a point and rebuild",
	Long: `Move a handle the way a modelling host does and rebuild.

The new parameter value is the distance from the handle's anchor to
the given point, then the same rebalancing as 'set' applies.

Handles: BeamLength, BeamHeight, TopShWidth, BotShWidth, RibThick

Examples:
  # Stretch the default beam to 12 m
  bridgebeam drag BeamLength 0 12000 0

  # Widen the rib of a beam file and save it
  bridgebeam drag -f beam.json RibThick 420 0 550 --write`,
	Args: cobra.ExactArgs(4),
	Run:  runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)

	dragCmd.Flags().StringVarP(&dragFile, "file", "f", "", "Parameter document (JSON)")
	dragCmd.Flags().BoolVar(&dragWrite, "write", false, "Save the edited parameters back to the file")
}

func runDrag(cmd *cobra.Command, args []string) {
	var coords [3]float64
	for i, a := range args[1:] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Printf("Error: invalid coordinate %q: %v\n", a, err)
			return
		}
		coords[i] = v
	}
	to := r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}

	s, err := newSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, err := loadParams(dragFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	before := *p

	if _, ok := handle.Find(s.plugin.Handles(p), args[0]); !ok {
		fmt.Printf("Error: unknown handle %s\n", args[0])
		return
	}

	s.kernel.Reset()
	res := s.plugin.MoveHandle(p, args[0], to)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     DRAG %s TO %s\n", args[0], vec(to))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printChanges(&before, p, s.plugin.LastOutcome())
	printHandles(res.Handles)
	printStatus(res)
	saveEdited(p, dragFile, dragWrite)
}
