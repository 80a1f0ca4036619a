package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveQueensCommand(t *testing.T) {
	out, err := execute(t, "solve", "queens", "--size", "4", "--diff=false")
	require.NoError(t, err)
	require.Contains(t, out, "Q")
}

func TestSolveQueensImpossible(t *testing.T) {
	_, err := execute(t, "solve", "queens", "--size", "3")
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestSolveSudokuFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	grid := "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	require.NoError(t, os.WriteFile(path, []byte(grid), 0o644))

	out, err := execute(t, "solve", "sudoku", "--grid-file", path, "--diff=false")
	require.NoError(t, err)
	require.Contains(t, out, "|534|678|912|")
}

func TestSolveSudokuNeedsInput(t *testing.T) {
	_, err := execute(t, "solve", "sudoku")
	require.Error(t, err)
}

func TestGenerateAndList(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--data-dir", dir,
		"generate", "--seed", "42", "--difficulty", "easy", "--name", "smoke", "--save")
	require.NoError(t, err)
	require.Contains(t, out, "saved as")

	out, err = execute(t, "--data-dir", dir, "list")
	require.NoError(t, err)
	require.Contains(t, out, "smoke")
	require.Contains(t, out, "easy")
}

func TestListEmptyCatalog(t *testing.T) {
	out, err := execute(t, "--data-dir", t.TempDir(), "list")
	require.NoError(t, err)
	require.Contains(t, out, "catalog is empty")
}
