package codesmell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pylintOutput = `[
    {
        "type": "convention",
        "module": "smelly.app",
        "obj": "",
        "line": 1,
        "column": 0,
        "endLine": null,
        "endColumn": null,
        "path": "smelly/app.py",
        "symbol": "missing-module-docstring",
        "message": "Missing module docstring",
        "message-id": "C0114"
    },
    {
        "type": "error",
        "module": "smelly.app",
        "obj": "main",
        "line": 9,
        "column": 4,
        "endLine": 9,
        "endColumn": 20,
        "path": "smelly/app.py",
        "symbol": "undefined-variable",
        "message": "Undefined variable 'reslt'",
        "message-id": "E0602"
    }
]`

func TestDecodeRecords(t *testing.T) {
	records, err := DecodeRecords(strings.NewReader(pylintOutput))
	require.NoError(t, err)
	require.Len(t, records, 2)

	line, err := records[1].Int("line")
	require.NoError(t, err)
	assert.Equal(t, 9, line)

	endLine, err := records[0].Int("endLine")
	require.NoError(t, err)
	assert.Equal(t, 0, endLine)

	optional, err := records[0].OptionalInt("endLine")
	require.NoError(t, err)
	assert.Nil(t, optional)

	optional, err = records[1].OptionalInt("endLine")
	require.NoError(t, err)
	require.NotNil(t, optional)
	assert.Equal(t, 9, *optional)

	_, err = Record{}.OptionalInt("endLine")
	assert.True(t, errors.Is(err, ErrMissingField))

	symbol, err := records[0].String("symbol")
	require.NoError(t, err)
	assert.Equal(t, "missing-module-docstring", symbol)
}

func TestDecodeRecordsRejectsNonArray(t *testing.T) {
	_, err := ParseRecords([]byte(`{"type": "error"}`))
	assert.Error(t, err)
}

func TestRecordInt(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected int
		wantErr  bool
	}{
		{name: "int", value: 7, expected: 7},
		{name: "int64", value: int64(7), expected: 7},
		{name: "whole float", value: float64(7), expected: 7},
		{name: "fractional float", value: 7.5, wantErr: true},
		{name: "string", value: "7", wantErr: true},
		{name: "null", value: nil, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Record{"line": tc.value}.Int("line")
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrFieldType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestRecordMissingKey(t *testing.T) {
	_, err := Record{}.String("path")
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.EqualError(t, err, `missing field "path"`)
}
