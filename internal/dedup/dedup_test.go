package dedup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.txt")

	cache, err := Open(path)
	require.NoError(t, err)
	defer cache.Close()

	assert.Equal(t, 0, cache.Len())
	//the store file must exist even before the first Record
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRecord_DurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.txt")

	cache, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, cache.Record("job-1"))
	require.NoError(t, cache.Record("job-2"))
	assert.True(t, cache.Contains("job-1"))
	assert.False(t, cache.Contains("job-3"))
	require.NoError(t, cache.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	assert.True(t, reopened.Contains("job-1"))
	assert.True(t, reopened.Contains("job-2"))
	assert.Equal(t, 2, reopened.Len())
}

func TestOpen_IgnoresBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.txt")
	require.NoError(t, os.WriteFile(path, []byte("job-1\n\njob-2\n"), 0644))

	cache, err := Open(path)
	require.NoError(t, err)
	defer cache.Close()

	assert.Equal(t, 2, cache.Len())
}

func TestOpen_SecondRunLockedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.txt")

	first, err := Open(path)
	require.NoError(t, err)
	defer first.Close()

	_, err = Open(path)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.txt")

	cache, err := Open(path)
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Record("job-1"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "job-1\n", string(data))
}
