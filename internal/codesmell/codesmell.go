// Package codesmell models the JSON report produced by pylint: one CodeSmell per
// reported message, grouped into a Report sorted by severity.
package codesmell

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CodeSmell is a single linter finding.
type CodeSmell struct {
	priority  Priority
	location  Location
	symbol    string
	message   string
	messageID string
}

// View is the JSON projection of a CodeSmell.
type View struct {
	Type      string       `json:"type"`
	Location  LocationView `json:"location"`
	Symbol    string       `json:"symbol"`
	Message   string       `json:"message"`
	MessageID string       `json:"message_id"`
	Severity  int          `json:"severity"`
}

// New builds a CodeSmell from a raw record. The location keys are read from
// the same record.
func New(rec Record) (*CodeSmell, error) {
	typeName, err := rec.String("type")
	if err != nil {
		return nil, err
	}
	priority, err := GetPriority(typeName)
	if err != nil {
		return nil, err
	}

	location, err := NewLocation(rec)
	if err != nil {
		return nil, err
	}

	smell := &CodeSmell{
		priority: priority,
		location: location,
	}
	if smell.symbol, err = rec.String("symbol"); err != nil {
		return nil, err
	}
	if smell.message, err = rec.String("message"); err != nil {
		return nil, err
	}
	if smell.messageID, err = rec.String("message-id"); err != nil {
		return nil, err
	}
	return smell, nil
}

func (c *CodeSmell) Type() Priority { return c.priority }
func (c *CodeSmell) Location() Location { return c.location }
func (c *CodeSmell) Symbol() string { return c.symbol }
func (c *CodeSmell) Message() string { return c.message }
func (c *CodeSmell) MessageID() string { return c.messageID }

// Severity ranks the smell by its priority, see Priority.Rank.
func (c *CodeSmell) Severity() int {
	return c.priority.Rank()
}

// ReadableSymbol returns the symbol with hyphens replaced by spaces.
func (c *CodeSmell) ReadableSymbol() string {
	return strings.ReplaceAll(c.symbol, "-", " ")
}

// View returns the serializable projection of the smell.
func (c *CodeSmell) View() View {
	return View{
		Type:      c.priority.String(),
		Location:  c.location.View(),
		Symbol:    c.symbol,
		Message:   c.message,
		MessageID: c.messageID,
		Severity:  c.Severity(),
	}
}

// Jsonify encodes the smell as a JSON object.
func (c *CodeSmell) Jsonify() ([]byte, error) {
	return json.Marshal(c.View())
}

func (c *CodeSmell) MarshalJSON() ([]byte, error) {
	return c.Jsonify()
}

func (c *CodeSmell) String() string {
	return fmt.Sprintf("%s %s with reason: %s", c.priority, c.location, c.message)
}

func (c *CodeSmell) GoString() string {
	return fmt.Sprintf("%s %#v with reason: %s", c.priority, c.location, c.message)
}
