package report

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/smelly/pkg/shared/errors"
)

const pylintReport = `[
  {"type": "convention", "module": "app", "obj": "", "line": 1, "column": 0, "endLine": null,
   "path": "app.py", "symbol": "missing-module-docstring", "message": "Missing module docstring", "message-id": "C0114"},
  {"type": "warning", "module": "app", "obj": "main", "line": 5, "column": 4, "endLine": 5,
   "path": "app.py", "symbol": "unused-variable", "message": "Unused variable 'x'", "message-id": "W0612"}
]`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pylint.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	err := Run(hclog.NewNullLogger(), RunOptionsReport{
		InputFile: writeInput(t, pylintReport),
		Format:    "text",
		Grade:     "8.5",
		NoColor:   true,
	}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "warning in app on line 5 at 4 with reason: Unused variable 'x'", lines[0])
	assert.Equal(t, "convention in app on line 1 at 0 with reason: Missing module docstring", lines[1])
	assert.Equal(t, "2 code smell(s): 0 error, 1 warning, 0 refactor, 1 convention. Grade: 8.50", lines[2])
}

func TestRunFormats(t *testing.T) {
	input := writeInput(t, pylintReport)
	expected := map[string]string{
		"json":     `"code_smells"`,
		"sarif":    `"version": "2.1.0"`,
		"markdown": "#### Path: app.py",
	}
	for format, marker := range expected {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(hclog.NewNullLogger(), RunOptionsReport{InputFile: input, Format: format}, &out)
			require.NoError(t, err)
			assert.Contains(t, out.String(), marker)
		})
	}
}

func TestRunFailOn(t *testing.T) {
	input := writeInput(t, pylintReport)

	var out bytes.Buffer
	err := Run(hclog.NewNullLogger(), RunOptionsReport{InputFile: input, Format: "text", NoColor: true, FailOn: "warning"}, &out)
	require.Error(t, err)

	var cmdErr *errors.CommandError
	require.True(t, stderrors.As(err, &cmdErr))
	assert.Equal(t, errors.ExitCodeThreshold, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "found 1 code smell(s)")
	assert.NotEmpty(t, out.String())

	out.Reset()
	err = Run(hclog.NewNullLogger(), RunOptionsReport{InputFile: input, Format: "text", NoColor: true, FailOn: "error"}, &out)
	assert.NoError(t, err)
}

func TestRunInvalidRecord(t *testing.T) {
	input := writeInput(t, `[{"type": "fatal", "module": "app", "obj": "", "line": 1, "column": 0,
	  "endLine": 1, "path": "app.py", "symbol": "x", "message": "x", "message-id": "F0001"}]`)

	var out bytes.Buffer
	err := Run(hclog.NewNullLogger(), RunOptionsReport{InputFile: input, Format: "text"}, &out)
	require.Error(t, err)

	var cmdErr *errors.CommandError
	require.True(t, stderrors.As(err, &cmdErr))
	assert.Equal(t, errors.ExitCodeFailure, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "unknown priority")
	assert.Empty(t, out.String())
}

func TestRunInvalidFailOn(t *testing.T) {
	var out bytes.Buffer
	err := Run(hclog.NewNullLogger(), RunOptionsReport{
		InputFile: writeInput(t, pylintReport),
		Format:    "text",
		FailOn:    "fatal",
	}, &out)
	require.Error(t, err)

	var cmdErr *errors.CommandError
	require.True(t, stderrors.As(err, &cmdErr))
	assert.Equal(t, errors.ExitCodeFailure, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "invalid fail-on value")
	assert.Empty(t, out.String())
}

func TestRunTextToFileIsPlain(t *testing.T) {
	input := writeInput(t, pylintReport)

	tests := []struct {
		name       string
		outputPath bool
	}{
		{name: "output path set", outputPath: true},
		{name: "non-terminal file", outputPath: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "reports")
			file, err := openOutput(dir, "text")
			require.NoError(t, err)

			opts := RunOptionsReport{InputFile: input, Format: "text"}
			if tt.outputPath {
				opts.OutputPath = dir
			}
			require.NoError(t, Run(hclog.NewNullLogger(), opts, file))
			require.NoError(t, file.Close())

			data, err := os.ReadFile(file.Name())
			require.NoError(t, err)
			assert.Contains(t, string(data), "warning in app on line 5 at 4")
			assert.NotContains(t, string(data), "\x1b[")
		})
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, useColor(RunOptionsReport{}, &buf))
	assert.False(t, useColor(RunOptionsReport{NoColor: true}, os.Stdout))
	assert.False(t, useColor(RunOptionsReport{OutputPath: "out.txt"}, os.Stdout))
}

func TestOpenOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	file, err := openOutput(dir, "markdown")
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, filepath.Join(dir, "smelly-report.md"), file.Name())
}

func TestCloseOutput(t *testing.T) {
	file, err := openOutput(t.TempDir(), "json")
	require.NoError(t, err)

	var runErr error
	closeOutput(hclog.NewNullLogger(), file, &runErr)
	assert.NoError(t, runErr)

	// A second close fails and must surface as a command failure.
	closeOutput(hclog.NewNullLogger(), file, &runErr)
	require.Error(t, runErr)
	var cmdErr *errors.CommandError
	require.True(t, stderrors.As(runErr, &cmdErr))
	assert.Equal(t, errors.ExitCodeFailure, cmdErr.ExitCode)
	assert.Contains(t, runErr.Error(), "failed to close output")

	// An earlier error is kept.
	earlier := stderrors.New("render failed")
	runErr = earlier
	closeOutput(hclog.NewNullLogger(), file, &runErr)
	assert.Equal(t, earlier, runErr)
}

func TestParseGrade(t *testing.T) {
	assert.Nil(t, parseGrade(""))
	assert.Equal(t, 7.25, parseGrade("7.25"))
	assert.Equal(t, "A-", parseGrade("A-"))
}
