// Package render presents a codesmell.Report as text, markdown or JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/scan-io-git/smelly/internal/codesmell"
)

// Summary is the per-priority count of a report.
type Summary struct {
	Total      int `json:"total"`
	Error      int `json:"error"`
	Warning    int `json:"warning"`
	Refactor   int `json:"refactor"`
	Convention int `json:"convention"`
}

// Summarize counts the smells of report by priority.
func Summarize(report *codesmell.Report) Summary {
	counts := report.CountByPriority()
	return Summary{
		Total:      report.Len(),
		Error:      counts[codesmell.Error],
		Warning:    counts[codesmell.Warning],
		Refactor:   counts[codesmell.Refactor],
		Convention: counts[codesmell.Convention],
	}
}

func (s Summary) count(p codesmell.Priority) int {
	switch p {
	case codesmell.Error:
		return s.Error
	case codesmell.Warning:
		return s.Warning
	case codesmell.Refactor:
		return s.Refactor
	case codesmell.Convention:
		return s.Convention
	}
	return 0
}

func (s Summary) String() string {
	parts := make([]string, 0, 4)
	for _, p := range codesmell.Priorities() {
		parts = append(parts, fmt.Sprintf("%d %s", s.count(p), p))
	}
	return fmt.Sprintf("%d code smell(s): %s", s.Total, strings.Join(parts, ", "))
}

// formatGrade renders the opaque grade, or "" when none was supplied.
func formatGrade(grade any) string {
	switch g := grade.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", g)
	case float32:
		return fmt.Sprintf("%.2f", g)
	default:
		return fmt.Sprint(g)
	}
}
