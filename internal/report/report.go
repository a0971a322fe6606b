// Package report turns built beams into documents: a PDF data sheet per
// beam and an xlsx schedule for a batch of beams.
package report

import (
	"fmt"

	"github.com/alexiusacademia/bridgebeam/internal/config"
	"github.com/alexiusacademia/bridgebeam/internal/params"
	"github.com/alexiusacademia/bridgebeam/internal/section"
)

// Beam is the reportable summary of one beam.
type Beam struct {
	Mark       string
	Params     params.Parameters
	Properties section.Properties
	Quantities section.Quantities

	// Failure is the geometry error of the build, empty when it succeeded.
	Failure string
}

// Status is the one word build state shown in reports.
func (b Beam) Status() string {
	if b.Failure != "" {
		return "FAILED"
	}
	return "OK"
}

// Summarize computes the section properties and quantities of p. The
// section outline uses segments straight pieces per fillet.
func Summarize(mark string, p *params.Parameters, cfg config.Config, segments int, failure error) (Beam, error) {
	s, err := section.FromBeam(p, cfg.Geometry, segments)
	if err != nil {
		return Beam{}, fmt.Errorf("report: %s: %w", mark, err)
	}

	b := Beam{
		Mark:       mark,
		Params:     *p,
		Properties: *s.CalculateProperties(),
		Quantities: s.Quantities(section.HolesOf(p, cfg.Limits), p.BeamLength, cfg.Material.Density),
	}
	if failure != nil {
		b.Failure = failure.Error()
	}
	return b, nil
}
