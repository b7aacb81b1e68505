package render

import (
	"encoding/json"
	"io"

	"github.com/scan-io-git/smelly/internal/codesmell"
)

type JSONOptions struct {
	RunID string
}

type jsonReport struct {
	RunID      string           `json:"run_id,omitempty"`
	Grade      any              `json:"grade"`
	Summary    Summary          `json:"summary"`
	CodeSmells []codesmell.View `json:"code_smells"`
}

// JSON writes the report with every smell in its Jsonify projection.
func JSON(w io.Writer, report *codesmell.Report, opts JSONOptions) error {
	out := jsonReport{
		RunID:      opts.RunID,
		Grade:      report.Grade(),
		Summary:    Summarize(report),
		CodeSmells: make([]codesmell.View, 0, report.Len()),
	}
	for _, smell := range report.CodeSmells() {
		out.CodeSmells = append(out.CodeSmells, smell.View())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
