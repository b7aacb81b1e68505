package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportArgs(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "pylint.json")
	require.NoError(t, os.WriteFile(input, []byte("[]"), 0644))

	testCases := []struct {
		name    string
		opts    RunOptionsReport
		wantErr string
	}{
		{
			name: "valid",
			opts: RunOptionsReport{InputFile: input, Format: "text"},
		},
		{
			name: "valid with fail-on",
			opts: RunOptionsReport{InputFile: input, Format: "sarif", FailOn: "warning"},
		},
		{
			name:    "missing input",
			opts:    RunOptionsReport{Format: "text"},
			wantErr: "the 'input' flag must be specified",
		},
		{
			name:    "input is a directory",
			opts:    RunOptionsReport{InputFile: tmpDir, Format: "text"},
			wantErr: "is a directory",
		},
		{
			name:    "input does not exist",
			opts:    RunOptionsReport{InputFile: filepath.Join(tmpDir, "absent.json"), Format: "text"},
			wantErr: "the input file is not valid",
		},
		{
			name:    "unknown format",
			opts:    RunOptionsReport{InputFile: input, Format: "html"},
			wantErr: "unsupported format",
		},
		{
			name:    "unknown fail-on",
			opts:    RunOptionsReport{InputFile: input, Format: "text", FailOn: "Error"},
			wantErr: "the 'fail-on' flag is invalid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateReportArgs(&tc.opts)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
