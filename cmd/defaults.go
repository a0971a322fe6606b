package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/spf13/cobra"
)

var defaultsOutput string

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the parameters of a newly placed beam",
	Long: `Print the default parameter document as JSON.

The document can be edited and passed to the other commands with -f.

Examples:
  # Print to the terminal
  bridgebeam defaults

  # Start a new beam file
  bridgebeam defaults -o beam.json`,
	Run: runDefaults,
}

func init() {
	rootCmd.AddCommand(defaultsCmd)

	defaultsCmd.Flags().StringVarP(&defaultsOutput, "output", "o", "", "Write the document to this file")
}

func runDefaults(cmd *cobra.Command, args []string) {
	p := params.Default()

	if defaultsOutput != "" {
		if err := p.SaveToFile(defaultsOutput); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Parameters written to: %s\n", defaultsOutput)
		return
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(string(data))
}
