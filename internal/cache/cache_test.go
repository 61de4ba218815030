package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T, path string, settings string) *Cache {
	t.Helper()
	c, err := Open(t.Context(), path, []byte(settings))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCleanRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tsorder.db")
	c := openTestCache(t, path, "v1")
	ctx := t.Context()
	content := []byte("const a = { a: 1, b: 2 };\n")

	_, ok, err := c.Clean(ctx, "a.ts", content)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.MarkClean(ctx, "a.ts", content, 3))
	n, ok, err := c.Clean(ctx, "a.ts", content)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, n)

	// Changed content misses.
	_, ok, err = c.Clean(ctx, "a.ts", append(content, '\n'))
	require.NoError(t, err)
	require.False(t, ok)

	// Updating replaces the entry.
	require.NoError(t, c.MarkClean(ctx, "a.ts", []byte("x"), 0))
	_, ok, err = c.Clean(ctx, "a.ts", content)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Forget(ctx, "a.ts"))
	_, ok, err = c.Clean(ctx, "a.ts", []byte("x"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSettingsInvalidateEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsorder.db")
	content := []byte("sorted")

	c := openTestCache(t, path, "order=asc")
	require.NoError(t, c.MarkClean(t.Context(), "a.ts", content, 1))
	require.NoError(t, c.Close())

	again := openTestCache(t, path, "order=asc")
	_, ok, err := again.Clean(t.Context(), "a.ts", content)
	require.NoError(t, err)
	require.True(t, ok)

	other := openTestCache(t, path, "order=desc")
	_, ok, err = other.Clean(t.Context(), "a.ts", content)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSum(t *testing.T) {
	require.Equal(t, Sum([]byte("a")), Sum([]byte("a")))
	require.NotEqual(t, Sum([]byte("a")), Sum([]byte("b")))
}
