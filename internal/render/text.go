package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/scan-io-git/smelly/internal/codesmell"
)

type TextOptions struct {
	Color       bool
	GroupByFile bool
}

var priorityColors = map[codesmell.Priority]color.Attribute{
	codesmell.Error:      color.FgRed,
	codesmell.Warning:    color.FgYellow,
	codesmell.Refactor:   color.FgCyan,
	codesmell.Convention: color.FgBlue,
}

type palette struct {
	enabled bool
}

func (p palette) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (p palette) smell(smell *codesmell.CodeSmell) string {
	name := smell.Type().String()
	rest := strings.TrimPrefix(smell.String(), name)
	return p.paint(name, priorityColors[smell.Type()], color.Bold) + rest
}

// Text writes one line per smell followed by a summary line.
func Text(w io.Writer, report *codesmell.Report, opts TextOptions) error {
	pal := palette{enabled: opts.Color}
	var b strings.Builder

	if opts.GroupByFile {
		for _, group := range report.GroupByFile() {
			b.WriteString(pal.paint(group[0].Location().Path(), color.Bold))
			b.WriteString("\n")
			for _, smell := range group {
				fmt.Fprintf(&b, "  %s\n", pal.smell(smell))
			}
		}
	} else {
		for _, smell := range report.CodeSmells() {
			fmt.Fprintf(&b, "%s\n", pal.smell(smell))
		}
	}

	b.WriteString(Summarize(report).String())
	if grade := formatGrade(report.Grade()); grade != "" {
		fmt.Fprintf(&b, ". Grade: %s", grade)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
