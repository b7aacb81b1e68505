package version

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmdJSON(t *testing.T) {
	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--json"})
	require.NoError(t, cmd.Execute())

	var got Versions
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, CoreVersion, got.Version)
	assert.Equal(t, runtime.Version(), got.GolangVersion)
}

func TestPrintVersionInfo(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	printVersionInfo(&out, Versions{Version: "1.2.0", GolangVersion: "go1.21.0", BuildTime: "2024-01-01"})
	assert.Equal(t, "Core Version: v1.2.0\nGo Version: go1.21.0\nBuild Time: 2024-01-01\n", out.String())
}
