package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0o644))
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"a.ts",
		"b.tsx",
		"readme.md",
		"src/c.ts",
		"src/gen/d.ts",
		"src/e.test.ts",
		".hidden/f.ts",
		"node_modules/pkg/g.ts",
	)

	tests := []struct {
		name   string
		finder Finder
		want   []string
	}{
		{
			name:   "recursive",
			finder: Finder{Extensions: []string{".ts", ".tsx"}, Recursive: true},
			want:   []string{"a.ts", "b.tsx", "src/c.ts", "src/e.test.ts", "src/gen/d.ts"},
		},
		{
			name:   "top level only",
			finder: Finder{Extensions: []string{".ts", ".tsx"}},
			want:   []string{"a.ts", "b.tsx"},
		},
		{
			name: "exclude directory and base name",
			finder: Finder{
				Extensions: []string{".ts", ".tsx"},
				Exclude:    []string{"src/gen", "*.test.ts"},
				Recursive:  true,
			},
			want: []string{"a.ts", "b.tsx", "src/c.ts"},
		},
		{
			name: "exclude double star",
			finder: Finder{
				Extensions: []string{".ts"},
				Exclude:    []string{"**/gen/**"},
				Recursive:  true,
			},
			want: []string{"a.ts", "src/c.ts", "src/e.test.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := tt.finder.FindFiles(t.Context(), root)
			require.NoError(t, err)
			require.Equal(t, tt.want, relAll(t, root, files))
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Finder{Exclude: []string{"**/*.d.ts"}}.Validate())
	require.Error(t, Finder{Exclude: []string{"src/[a-"}}.Validate())
}

func TestHasValidExtension(t *testing.T) {
	require.True(t, HasValidExtension("a/b.tsx", []string{".ts", ".tsx"}))
	require.False(t, HasValidExtension("a/b.js", []string{".ts", ".tsx"}))
	require.False(t, HasValidExtension("a/b.js", []string{""}))
}
