package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHeaderAndEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	f, err := NewFile(path)
	require.NoError(t, err)

	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.UTC)
	require.NoError(t, f.WriteHeader(at))
	require.NoError(t, f.WriteEntry(1, []int{5, 3, -2}, 6))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "\n=====2024-03-09 07:05:01=====\n" +
		"\n1.\n" +
		"\n5\n" +
		"\n3\n" +
		"\n-2\n" +
		"\nThe answer is 6\n"
	assert.Equal(t, want, string(data))
}

func TestWritesAppendAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	f, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, f.WriteEntry(1, []int{10}, 10))
	require.NoError(t, f.WriteEntry(2, []int{20, 0}, 20))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "existing\n"))
	assert.Equal(t, 2, strings.Count(content, answerPrefix))
	assert.Contains(t, content, "\n2.\n")
}

func TestWriteFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "log.txt")
	f, err := NewFile(path)
	require.NoError(t, err)

	err = f.WriteHeader(time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")

	// A later append still tries on its own.
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.WriteEntry(1, []int{1}, 1))
}

func TestNewFileRejectsEmptyPath(t *testing.T) {
	_, err := NewFile("  ")
	require.Error(t, err)
}

func TestFormatHeader(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "=====2023-12-31 23:59:59=====", FormatHeader(at))
}
