package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evanrichards/tsorder/internal/report"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const unsortedSource = `const a = {
  /** tsorder: keep-sorted */
  b: 1,
  a: 2,
};
`

const sortedSource = `const a = {
  /** tsorder: keep-sorted */
  a: 2,
  b: 1,
};
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runMain(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Main(t.Context(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCheckReportsUnsortedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "src/b.ts", unsortedSource)
	writeFile(t, dir, "src/a.ts", sortedSource)

	code, stdout, stderr := runMain(t, "--check", dir)
	require.Equal(t, 1, code)
	require.Contains(t, stdout, `:4:3: Expected "a" to come before "b" (order)`)
	require.Contains(t, stderr, "Error: "+report.MsgFilesNeedSort)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, unsortedSource, string(got))
}

func TestWriteSortsFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "b.ts", unsortedSource)

	code, _, stderr := runMain(t, "--write", "--workers", "2", dir)
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, sortedSource, string(got))

	code, stdout, _ := runMain(t, "--check", path)
	require.Equal(t, 0, code)
	require.Empty(t, stdout)
}

func TestDryRunLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "b.ts", unsortedSource)

	code, stdout, _ := runMain(t, "-v", path)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Would sort "+path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, unsortedSource, string(got))
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.ts", unsortedSource)
	writeFile(t, dir, "a.ts", sortedSource)

	code, stdout, _ := runMain(t, "--format", "json", dir)
	require.Equal(t, 0, code)

	var r report.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &r))
	require.Equal(t, report.ModeDryRun, r.Mode)
	require.Equal(t, 2, r.Summary.TotalFiles)
	require.Equal(t, 1, r.Summary.FilesNeedSort)
	require.Equal(t, 1, r.Summary.Diagnostics)
}

func TestExcludeAndKinds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gen/b.ts", unsortedSource)
	plain := writeFile(t, dir, "plain.ts", "const a = { b: 1, a: 2 };\n")

	code, _, stderr := runMain(t, "--check", "--exclude", "gen", "--kinds", "object", dir)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, report.MsgFilesNeedSort)

	code, _, _ = runMain(t, "--write", "--exclude", "gen", "--kinds", "object", dir)
	require.Equal(t, 0, code)
	got, err := os.ReadFile(plain)
	require.NoError(t, err)
	require.Equal(t, "const a = { a: 2, b: 1 };\n", string(got))

	code, _, _ = runMain(t, "--check", "--exclude", "gen", dir)
	require.Equal(t, 0, code)
}

func TestProjectConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "b.ts", sortedSource)
	cfg := writeFile(t, dir, "tsorder.yaml", "sort:\n  order: desc\n")

	code, _, _ := runMain(t, "--check", path)
	require.Equal(t, 0, code)

	code, stdout, _ := runMain(t, "--check", "--config", cfg, "--format", "yaml", path)
	require.Equal(t, 1, code)
	var r report.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &r))
	require.Equal(t, 1, r.Summary.FilesNeedSort)
}

func TestArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	notes := writeFile(t, dir, "notes.md", "# notes\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no_paths", []string{}, "requires at least 1 arg"},
		{"missing_path", []string{filepath.Join(dir, "missing")}, "cannot access path"},
		{"bad_extension", []string{notes}, "does not have a valid extension"},
		{"bad_kind", []string{"--kinds", "struct", dir}, `unknown kind "struct"`},
		{"bad_format", []string{"--format", "xml", dir}, `unknown output format "xml"`},
		{"bad_exclude", []string{"--exclude", "[", dir}, "invalid exclude pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeFile(t, dir, "a.ts", sortedSource)
			code, _, stderr := runMain(t, tt.args...)
			require.Equal(t, 1, code)
			require.True(t, strings.HasPrefix(stderr, "Error: "), stderr)
			require.Contains(t, stderr, tt.want)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := runMain(t, "version")
	require.Equal(t, 0, code)
	require.True(t, strings.HasPrefix(stdout, "tsorder version "))
}

func TestConfigCommand(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "tsorder.yaml", "sort:\n  type: natural\n  deprecated-at-end: true\n")

	code, stdout, stderr := runMain(t, "config", "--config", cfg)
	require.Equal(t, 0, code, stderr)

	var doc struct {
		Sort map[string]any `yaml:"sort"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	require.Equal(t, "natural", doc.Sort["type"])
	require.Equal(t, true, doc.Sort["deprecated-at-end"])

	code, stdout, _ = runMain(t, "config", "--config", cfg, "--format", "toml")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "[sort]")
	require.Contains(t, stdout, "type = 'natural'")

	code, stdout, _ = runMain(t, "config", "--config", cfg, "--format", "json")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, `"type": "natural"`)

	code, _, stderr = runMain(t, "config", "--format", "ini")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, `unknown config format "ini"`)
}

func TestCacheFileAndRunID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/a.ts", sortedSource)
	db := filepath.Join(dir, ".cache", "tsorder.db")

	code, stdout, stderr := runMain(t, "--format", "json", "--cache-file", db, filepath.Join(dir, "src"))
	require.Equal(t, 0, code, stderr)
	var first report.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &first))
	require.NotEmpty(t, first.RunID)
	require.Zero(t, first.Summary.CachedFiles)

	code, stdout, _ = runMain(t, "--format", "json", "--cache-file", db, filepath.Join(dir, "src"))
	require.Equal(t, 0, code)
	var second report.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &second))
	require.Equal(t, 1, second.Summary.CachedFiles)
	require.Equal(t, 1, second.Summary.TotalContainers)
	require.NotEqual(t, first.RunID, second.RunID)
}
