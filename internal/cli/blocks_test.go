package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdblocklint/internal/cli"
)

func TestBlocks_Text(t *testing.T) {
	t.Parallel()

	docPath, _ := lintFixture(t, misplacedDoc, "")

	out, err := execute(t, "blocks", "--color", "never", docPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Block 1 lines [2-4] (3)")
	assert.Contains(t, out, "Block 2 lines [6-10] (5)")
	assert.Contains(t, out, "cross-block Reference definition [mise]")
	assert.True(t, strings.HasSuffix(out, "2 blocks, 1 definition, 1 usage, 1 violation\n"), out)
}

func TestBlocks_JSON(t *testing.T) {
	t.Parallel()

	docPath, _ := lintFixture(t, misplacedDoc, "")

	out, err := execute(t, "blocks", "--format", "json", docPath)
	require.NoError(t, err)

	var got struct {
		Lines    int   `json:"lines"`
		Headings []int `json:"headings"`
		Blocks   []struct {
			Index     int `json:"index"`
			StartLine int `json:"startLine"`
			EndLine   int `json:"endLine"`
		} `json:"blocks"`
		Definitions []struct {
			Label       string `json:"label"`
			Destination string `json:"destination"`
			Line        int    `json:"line"`
			Block       int    `json:"block"`
		} `json:"definitions"`
		Usages []struct {
			Key   string `json:"key"`
			Style string `json:"style"`
			Line  int    `json:"line"`
			Block int    `json:"block"`
		} `json:"usages"`
		Violations []struct {
			Line int    `json:"line"`
			Kind string `json:"kind"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	// The newline ending the file opens an empty final line.
	assert.Equal(t, 10, got.Lines)
	assert.Equal(t, []int{1, 5}, got.Headings)
	require.Len(t, got.Blocks, 2)
	assert.Equal(t, 2, got.Blocks[0].StartLine)
	assert.Equal(t, 4, got.Blocks[0].EndLine)

	require.Len(t, got.Definitions, 1)
	assert.Equal(t, "mise", got.Definitions[0].Label)
	assert.Equal(t, "https://mise.jdx.dev", got.Definitions[0].Destination)
	assert.Equal(t, 2, got.Definitions[0].Block)

	require.Len(t, got.Usages, 1)
	assert.Equal(t, "shortcut", got.Usages[0].Style)
	assert.Equal(t, 1, got.Usages[0].Block)

	require.Len(t, got.Violations, 1)
	assert.Equal(t, 9, got.Violations[0].Line)
	assert.Equal(t, "cross-block", got.Violations[0].Kind)
}

func TestBlocks_Stdin(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetIn(strings.NewReader("para\n---\ntext\n"))
	cmd.SetArgs([]string{"blocks", "--color", "never", "-"})

	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "   1 H  para")
	assert.Contains(t, out, "   2 U  ---")
	assert.Contains(t, out, "Block 1 lines [3-4] (2)")
}

func TestBlocks_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(docPath, []byte("# A\n"), 0o600))

	_, err := execute(t, "blocks", filepath.Join(dir, "missing.md"))
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))

	_, err = execute(t, "blocks", dir)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))

	_, err = execute(t, "blocks", "--format", "sarif", docPath)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, err = execute(t, "blocks")
	require.Error(t, err)
}

func TestBlocks_DebugFlagLogsToStderr(t *testing.T) {
	t.Parallel()

	docPath, _ := lintFixture(t, misplacedDoc, "")

	tests := []struct {
		name    string
		args    []string
		wantLog bool
	}{
		{"debug", []string{"--debug", "blocks", "--color", "never", docPath}, true},
		{"default", []string{"blocks", "--color", "never", docPath}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			var stdout, stderr bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(testCase.args)

			require.NoError(t, cmd.Execute())
			assert.NotContains(t, stdout.String(), "analysed document")
			assert.Equal(t, testCase.wantLog, strings.Contains(stderr.String(), "analysed document"), stderr.String())
			if testCase.wantLog {
				assert.Contains(t, stderr.String(), "blocks=2")
			}
		})
	}
}
