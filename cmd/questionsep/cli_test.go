// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yug063/questionsep/internal/precheck"
	"github.com/Yug063/questionsep/internal/tool"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its children to its default, so
// values and Changed state do not leak between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "questionsep version test-version-1.0.0")
}

func TestExtractCmd_Stdin(t *testing.T) {
	out, err := execute(t, "• What is AI?\n• How does ML work?", "extract", "--output", "json")
	require.NoError(t, err)

	var result tool.OutputSeparateQuestions
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Questions, 2)
	assert.Equal(t, "prefix_cleaning", result.ProcessingSummary.Method)
	assert.Equal(t, "What is AI?", result.Questions[0].Text)
}

func TestExtractCmd_FileAndLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	require.NoError(t, os.WriteFile(path, []byte("What is one?\nWhat is two?\nWhat is three?"), 0o600))

	out, err := execute(t, "", "extract", path, "--limit", "2", "--output", "json")
	require.NoError(t, err)

	var result tool.OutputSeparateQuestions
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Questions, 2)

	out, err = execute(t, "", "extract", path, "--limit", "0", "--output", "json")
	require.NoError(t, err)

	result = tool.OutputSeparateQuestions{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Empty(t, result.Questions)

	out, err = execute(t, "", "extract", path, "--output", "json")
	require.NoError(t, err)

	result = tool.OutputSeparateQuestions{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Questions, 3, "an unset limit takes the configured default")
}

func TestExtractCmd_YAML(t *testing.T) {
	out, err := execute(t, "What is AI?", "extract", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "processing_summary:")
	assert.Contains(t, out, "line_breaks")
}

func TestExtractCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "extract", "--output", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, tool.ErrTextRequired)

	_, err = execute(t, "What is AI?", "extract", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	_, err = execute(t, "", "extract", filepath.Join(t.TempDir(), "missing.txt"), "--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestCheckCmd(t *testing.T) {
	out, err := execute(t, "note", "check", "--force", "--output", "json")
	require.NoError(t, err)

	var report precheck.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.CanProceed)
	assert.Equal(t, 1, report.LinesCount)
}

func TestCheckCmd_EmptyInput(t *testing.T) {
	_, err := execute(t, "", "check", "--force")
	require.ErrorIs(t, err, tool.ErrTextRequired)

	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	_, err = execute(t, "", "check", path)
	require.ErrorIs(t, err, tool.ErrTextRequired)
}

func TestSelftestCmd(t *testing.T) {
	out, err := execute(t, "", "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "5/5 tests passed")
	assert.NotContains(t, out, "FAIL")
}

func TestRootCmd_BadConfig(t *testing.T) {
	_, err := execute(t, "", "version", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
