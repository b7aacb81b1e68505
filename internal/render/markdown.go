package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/scan-io-git/smelly/internal/codesmell"
)

type MarkdownOptions struct {
	Title string
	// Repository is an optional line describing the analysed revision.
	Repository string
}

// Markdown writes the report as a pull request comment, one section per
// GroupByFile group.
func Markdown(w io.Writer, report *codesmell.Report, opts MarkdownOptions) error {
	var b strings.Builder

	title := opts.Title
	if title == "" {
		title = "Smelly report"
	}
	fmt.Fprintf(&b, "### %s\n", title)
	if opts.Repository != "" {
		fmt.Fprintf(&b, "%s\n", opts.Repository)
	}
	b.WriteString("\n")

	if grade := formatGrade(report.Grade()); grade != "" {
		fmt.Fprintf(&b, "Grade: **%s**\n\n", grade)
	}

	if report.Len() == 0 {
		b.WriteString("No code smells found.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	summary := Summarize(report)
	fmt.Fprintf(&b, "The linter found %d code smell(s).\n\n", summary.Total)
	headers := make([]string, 0, 4)
	counts := make([]string, 0, 4)
	for _, p := range codesmell.Priorities() {
		headers = append(headers, fmt.Sprintf("%s %s", p.Glyph(), p))
		counts = append(counts, fmt.Sprint(summary.count(p)))
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(headers, " | "))
	fmt.Fprintf(&b, "|%s\n", strings.Repeat("---|", len(headers)))
	fmt.Fprintf(&b, "| %s |\n\n", strings.Join(counts, " | "))

	for _, group := range report.GroupByFile() {
		fmt.Fprintf(&b, "#### Path: %s\n", group[0].Location().Path())
		for _, smell := range group {
			fmt.Fprintf(&b, "- %s **%s** (%s) line %d: %s\n",
				smell.Type().Glyph(),
				smell.ReadableSymbol(),
				smell.MessageID(),
				smell.Location().Line(),
				smell.Message())
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
