package parker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, words ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")
	content := strings.Join(words, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunEndToEndFindsASolution(t *testing.T) {
	dict := writeDict(t, "abcde", "fghij", "klmno", "pqrst", "uvwxy", "zzzzz")
	out := filepath.Join(t.TempDir(), "solutions.txt")

	result, err := Run(Config{DictPath: dict, OutPath: out, Workers: 2})
	require.NoError(t, err)
	require.Equal(t, 1, result.Metrics.Solutions)
	require.Equal(t, 5, result.Metrics.UniqueWords) // "zzzzz" has a repeated letter and is rejected

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	for _, w := range []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"} {
		require.Contains(t, string(content), w)
	}
}

func TestRunEmptyDictionaryYieldsNoSolutions(t *testing.T) {
	dict := writeDict(t)
	// writeDict always writes a trailing newline even with no words, so
	// truncate it to a genuinely empty file.
	require.NoError(t, os.Truncate(dict, 0))
	out := filepath.Join(t.TempDir(), "solutions.txt")

	result, err := Run(Config{DictPath: dict, OutPath: out, Workers: 2})
	require.NoError(t, err)
	require.Equal(t, 0, result.Metrics.Solutions)
}

func TestRunMissingDictionaryReturnsWrappedError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "solutions.txt")
	_, err := Run(Config{DictPath: "/nonexistent/words.txt", OutPath: out})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parker:")
}
