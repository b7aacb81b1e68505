package codesmell

import (
	"encoding/json"
	"fmt"
)

// Location is where a code smell was reported. It is immutable once built.
type Location struct {
	module       string
	pythonObject string
	line         int
	column       int
	endLine      *int
	path         string
}

// LocationView is the serialized form of a Location.
type LocationView struct {
	Module       string `json:"module"`
	PythonObject string `json:"python_object"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
	EndLine      *int   `json:"end_line"`
	Path         string `json:"path"`
}

// NewLocation reads the location keys from a raw record.
// Every key must be present; values are not range checked.
func NewLocation(rec Record) (Location, error) {
	var (
		loc Location
		err error
	)

	if loc.module, err = rec.String("module"); err != nil {
		return Location{}, err
	}
	if loc.pythonObject, err = rec.String("obj"); err != nil {
		return Location{}, err
	}
	if loc.line, err = rec.Int("line"); err != nil {
		return Location{}, err
	}
	if loc.column, err = rec.Int("column"); err != nil {
		return Location{}, err
	}
	if loc.endLine, err = rec.OptionalInt("endLine"); err != nil {
		return Location{}, err
	}
	if loc.path, err = rec.String("path"); err != nil {
		return Location{}, err
	}
	return loc, nil
}

func (l Location) Module() string { return l.module }
func (l Location) PythonObject() string { return l.pythonObject }
func (l Location) Line() int { return l.line }
func (l Location) Column() int { return l.column }
func (l Location) Path() string { return l.path }

// EndLine is zero when the linter did not report one.
func (l Location) EndLine() int {
	if l.endLine == nil {
		return 0
	}
	return *l.endLine
}

// HasEndLine reports whether the linter sent an end line.
func (l Location) HasEndLine() bool { return l.endLine != nil }

func (l Location) String() string {
	return fmt.Sprintf("in %s on line %d at %d", l.module, l.line, l.column)
}

func (l Location) GoString() string {
	return l.String()
}

// View returns the serializable projection of the location.
func (l Location) View() LocationView {
	return LocationView{
		Module:       l.module,
		PythonObject: l.pythonObject,
		Line:         l.line,
		Column:       l.column,
		EndLine:      l.endLine,
		Path:         l.path,
	}
}

func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.View())
}
