package goanalysis

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzerFixes(t *testing.T) {
	analysistest.RunWithSuggestedFixes(t, analysistest.TestData(), Analyzer, "fixes")
}

func TestAnalyzerDiagnostics(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "embedded")
}

func TestAnalyzerConfigFlag(t *testing.T) {
	path := filepath.Join(analysistest.TestData(), "tsorder.yaml")
	require.NoError(t, Analyzer.Flags.Set("config", path))
	t.Cleanup(func() { _ = Analyzer.Flags.Set("config", "") })

	analysistest.Run(t, analysistest.TestData(), Analyzer, "configured")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults("")
	require.NoError(t, err)
	require.Equal(t, "alphabetical/asc", cfg.GetSortingMode())

	cfg, err = loadDefaults(filepath.Join(analysistest.TestData(), "tsorder.yaml"))
	require.NoError(t, err)
	require.Equal(t, "alphabetical/desc", cfg.GetSortingMode())

	_, err = loadDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
