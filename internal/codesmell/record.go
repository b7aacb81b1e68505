package codesmell

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Record is a single raw object from the linter's JSON report.
// Accessors check the JSON type of a value as well as its presence.
type Record map[string]any

// DecodeRecords decodes a JSON array of linter records.
// Numbers are kept as json.Number so integer fields are read exactly.
func DecodeRecords(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var records []Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode linter report: %w", err)
	}
	return records, nil
}

// ParseRecords is DecodeRecords over an in-memory buffer.
func ParseRecords(data []byte) ([]Record, error) {
	return DecodeRecords(bytes.NewReader(data))
}

func (r Record) lookup(key string) (any, error) {
	v, ok := r[key]
	if !ok {
		return nil, &MissingFieldError{Field: key}
	}
	return v, nil
}

// String returns the string stored under key.
func (r Record) String(key string) (string, error) {
	v, err := r.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldTypeError{Field: key, Want: "string", Got: v}
	}
	return s, nil
}

// Int returns the integer stored under key. A JSON null reads as zero.
func (r Record) Int(key string) (int, error) {
	v, err := r.lookup(key)
	if err != nil {
		return 0, err
	}

	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, &FieldTypeError{Field: key, Want: "integer", Got: v}
		}
		return int(n), nil
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, &FieldTypeError{Field: key, Want: "integer", Got: v}
		}
		return i, nil
	default:
		return 0, &FieldTypeError{Field: key, Want: "integer", Got: v}
	}
}

// OptionalInt is Int for keys whose value may be JSON null; null yields nil.
// The key itself must still be present.
func (r Record) OptionalInt(key string) (*int, error) {
	v, err := r.lookup(key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	i, err := r.Int(key)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
