package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/bridgebeam/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportFile    string
	reportOutput  string
	reportMark    string
	reportDiagram bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF data sheet for a beam",
	Long: `Build the beam and write a one page PDF with its parameters,
section properties, quantities and build status.

Examples:
  # Data sheet of a beam file
  bridgebeam report -f beam.json -o B1.pdf --mark B1

  # Include the cross-section drawing
  bridgebeam report -f beam.json -o B1.pdf --with-diagram`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Parameter document (JSON)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "beam.pdf", "PDF file to write")
	reportCmd.Flags().StringVar(&reportMark, "mark", "B1", "Beam mark shown in the title")
	reportCmd.Flags().BoolVar(&reportDiagram, "with-diagram", false, "Embed the cross-section drawing")
}

func runReport(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	p, err := loadParams(reportFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res := s.plugin.Create(p)
	b, err := report.Summarize(reportMark, p, s.cfg, s.kernel.ArcSegments, res.Failure)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var image string
	if reportDiagram {
		dir, err := os.MkdirTemp("", "bridgebeam")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer os.RemoveAll(dir)

		image = filepath.Join(dir, "section.png")
		if err := exportView(s, p, "section", image); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
	}

	if err := report.WritePDF(reportOutput, b, image); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s (%s)\n", reportOutput, b.Status())
}
