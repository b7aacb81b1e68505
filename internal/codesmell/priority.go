package codesmell

import "strings"

// Priority is the classification pylint assigns to a message.
type Priority int

const (
	Error Priority = iota + 1
	Warning
	Refactor
	Convention
)

var priorityNames = map[Priority]string{
	Error:      "ERROR",
	Warning:    "WARNING",
	Refactor:   "REFACTOR",
	Convention: "CONVENTION",
}

var priorityGlyphs = map[Priority]string{
	Error:      ":red_circle:",
	Warning:    ":orange_circle:",
	Refactor:   ":yellow_circle:",
	Convention: ":blue_circle:",
}

// severityOrder lists priorities from least to most severe; the index is the rank.
var severityOrder = []Priority{Convention, Refactor, Warning, Error}

var prioritiesByName = func() map[string]Priority {
	m := make(map[string]Priority, len(priorityNames))
	for p, name := range priorityNames {
		m[strings.ToLower(name)] = p
	}
	return m
}()

// GetPriority looks up a priority by its lowercase name ("error", "warning", ...).
// The match is exact and case-sensitive.
func GetPriority(name string) (Priority, error) {
	p, ok := prioritiesByName[name]
	if !ok {
		return 0, &UnknownPriorityError{Name: name}
	}
	return p, nil
}

// Priorities returns every priority, most severe first.
func Priorities() []Priority {
	return []Priority{Error, Warning, Refactor, Convention}
}

// Name returns the upper-case variant name, or "" for an unknown priority.
func (p Priority) Name() string {
	return priorityNames[p]
}

// String returns the lowercase name used in linter output.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return strings.ToLower(name)
	}
	return "unknown"
}

// Glyph returns the emoji shortcode used when presenting the priority.
func (p Priority) Glyph() string {
	return priorityGlyphs[p]
}

// Rank is 3 for Error down to 0 for Convention, and -1 outside the enumeration.
func (p Priority) Rank() int {
	for i, known := range severityOrder {
		if known == p {
			return i
		}
	}
	return -1
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := GetPriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
