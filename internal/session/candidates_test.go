package session

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"blank line ends", "alpha\n bravo \n\ncharlie\n", []string{"alpha", "bravo"}},
		{"leading blanks skipped", "\n\nalpha\n\n", []string{"alpha"}},
		{"eof ends", "alpha\nbravo", []string{"alpha", "bravo"}},
		{"nothing entered", "", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var prompt bytes.Buffer
			got, err := ReadCandidates(context.Background(), NewLineReader(strings.NewReader(tc.input)), &prompt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, prompt.String(), "End with blank line.")
		})
	}
}

func TestLoadWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# fallout terminal\nTIRES\n\n  WIRES \r\nFIRES\n"), 0644))

	got, err := LoadWordlist(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"TIRES", "WIRES", "FIRES"}, got)

	_, err = LoadWordlist(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to open wordlist")
}

func TestReadCandidates_LeavesCommandsUnread(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("alpha\nbravo\n\nview\nexit\n"))
	got, err := ReadCandidates(context.Background(), NewLineReader(br), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo"}, got)

	rest, err := io.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, "view\nexit\n", string(rest))
}

func TestReadCandidates_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadCandidates(ctx, NewLineReader(pr), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
