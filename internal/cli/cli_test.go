package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempGraph(t *testing.T, edges string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(edges), 0o644))
	return path
}

func TestRootCommandCountsNamedPattern(t *testing.T) {
	graphPath := writeTempGraph(t, "0 1\n1 2\n2 3\n3 4\n")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{graphPath, "path{2}"})

	require.NoError(t, cmd.Execute())
	require.NotEmpty(t, strings.TrimSpace(out.String()))
}

func TestRootCommandRejectsUnreadableGraphFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.txt"), "path{2}"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCommandRejectsUnknownPattern(t *testing.T) {
	graphPath := writeTempGraph(t, "0 1\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{graphPath, "not-a-pattern"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestRootCommandWritesOutputFile(t *testing.T) {
	graphPath := writeTempGraph(t, "0 1\n1 2\n")
	outPath := filepath.Join(t.TempDir(), "out.txt")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{graphPath, "path{2}", "-o", outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(string(data)))
}

func TestRootCommandMultiPatternReportsOnePerLine(t *testing.T) {
	graphPath := writeTempGraph(t, "0 1\n1 2\n2 3\n")
	multiPath := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(multiPath, []byte("path{2}\npath{3}\n"), 0o644))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{graphPath, "path{2}", "-m", multiPath})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "path{2}:")
	require.Contains(t, lines[1], "path{3}:")
}

func TestRootCommandExecDataIncompatibleWithMultiPattern(t *testing.T) {
	graphPath := writeTempGraph(t, "0 1\n1 2\n")
	multiPath := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(multiPath, []byte("path{2}\n"), 0o644))
	execPath := filepath.Join(t.TempDir(), "out.zip")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{graphPath, "path{2}", "-m", multiPath, "-e", execPath})
	err := cmd.Execute()
	require.Error(t, err)
}
