// Package sarif converts a codesmell.Report into a SARIF 2.1.0 log.
package sarif

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/smelly/internal/codesmell"
)

// ToolInfo describes the linter that produced the report.
type ToolInfo struct {
	Name           string
	Version        string
	InformationURI string
}

// DefaultTool is pylint.
var DefaultTool = ToolInfo{
	Name:           "pylint",
	InformationURI: "https://pylint.readthedocs.io",
}

// FromReport builds a SARIF log with one rule per message id and one result per smell.
func FromReport(report *codesmell.Report, tool ToolInfo) (*sarif.Report, error) {
	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	if tool.Name == "" {
		tool.Name = DefaultTool.Name
	}
	run := sarif.NewRunWithInformationURI(tool.Name, tool.InformationURI)
	if tool.Version != "" {
		version := tool.Version
		run.Tool.Driver.Version = &version
	}

	rules := make(map[string]*sarif.ReportingDescriptor)
	for _, smell := range report.CodeSmells() {
		level := toSarifLevel(smell.Type())

		ruleID := smell.MessageID()
		if _, ok := rules[ruleID]; !ok {
			rules[ruleID] = run.AddRule(ruleID).
				WithName(smell.Symbol()).
				WithDescription(smell.ReadableSymbol()).
				WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel(level))
		}

		result := sarif.NewRuleResult(ruleID).
			WithMessage(sarif.NewTextMessage(smell.Message())).
			WithLevel(level).
			WithLocations([]*sarif.Location{toSarifLocation(smell.Location())})
		result.Properties = sarif.Properties{
			"severity": smell.Severity(),
			"priority": smell.Type().String(),
			"symbol":   smell.Symbol(),
		}
		run.AddResult(result)
	}

	reportSarif.AddRun(run)
	return reportSarif, nil
}

// Write converts report and pretty-writes the SARIF log to w.
func Write(w io.Writer, report *codesmell.Report, tool ToolInfo) error {
	reportSarif, err := FromReport(report, tool)
	if err != nil {
		return err
	}
	return reportSarif.PrettyWrite(w)
}

func toSarifLocation(loc codesmell.Location) *sarif.Location {
	// pylint columns are 0-based, SARIF columns are 1-based
	region := sarif.NewRegion().
		WithStartLine(loc.Line()).
		WithStartColumn(loc.Column() + 1)
	if loc.EndLine() > 0 {
		region = region.WithEndLine(loc.EndLine())
	}

	return sarif.NewLocation().WithPhysicalLocation(
		sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(loc.Path())).
			WithRegion(region),
	)
}

func toSarifLevel(p codesmell.Priority) string {
	switch p {
	case codesmell.Error:
		return "error"
	case codesmell.Warning:
		return "warning"
	case codesmell.Refactor, codesmell.Convention:
		return "note"
	default:
		return "none"
	}
}
