package cmd

import (
	"fmt"

	"github.com/alexiusacademia/bridgebeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bridgebeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bridgebeam v%s\n", version.Version)
		fmt.Println("Precast Bridge Beam Generator")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
