// Package report formats the results of a run as text, JSON or YAML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Diagnostic is one finding at a position of a file. Line and Column are
// 1-based; Column counts bytes.
type Diagnostic struct {
	Path    string `json:"path" yaml:"path"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Rule    Rule   `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
	Fixable bool   `json:"fixable" yaml:"fixable"`
}

// FileReport is the outcome for one file.
type FileReport struct {
	Path               string       `json:"path" yaml:"path"`
	Changed            bool         `json:"changed" yaml:"changed"`
	ContainersFound    int          `json:"containers_found" yaml:"containers_found"`
	ContainersNeedSort int          `json:"containers_need_sort" yaml:"containers_need_sort"`
	Diagnostics        []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Cached             bool         `json:"cached,omitempty" yaml:"cached,omitempty"`
	Error              string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates file reports.
type Summary struct {
	TotalFiles         int `json:"total_files" yaml:"total_files"`
	FilesNeedSort      int `json:"files_need_sort" yaml:"files_need_sort"`
	FilesNoChanges     int `json:"files_no_changes" yaml:"files_no_changes"`
	ErrorFiles         int `json:"error_files" yaml:"error_files"`
	TotalContainers    int `json:"total_containers" yaml:"total_containers"`
	ContainersNeedSort int `json:"containers_need_sort" yaml:"containers_need_sort"`
	Diagnostics        int `json:"diagnostics" yaml:"diagnostics"`
	CachedFiles        int `json:"cached_files" yaml:"cached_files"`
}

// Report is everything a run produced.
type Report struct {
	RunID   string       `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Mode    Mode         `json:"mode" yaml:"mode"`
	Files   []FileReport `json:"files" yaml:"files"`
	Summary Summary      `json:"summary" yaml:"summary"`
}

// New builds a report with files ordered by path and the summary filled in.
func New(mode Mode, files []FileReport) Report {
	files = slices.Clone(files)
	slices.SortFunc(files, func(a, b FileReport) int { return strings.Compare(a.Path, b.Path) })

	r := Report{Mode: mode, Files: files}
	r.Summary.TotalFiles = len(files)
	for _, f := range files {
		switch {
		case f.Error != "":
			r.Summary.ErrorFiles++
			continue
		case f.Changed:
			r.Summary.FilesNeedSort++
		default:
			r.Summary.FilesNoChanges++
		}
		if f.Cached {
			r.Summary.CachedFiles++
		}
		r.Summary.TotalContainers += f.ContainersFound
		r.Summary.ContainersNeedSort += f.ContainersNeedSort
		r.Summary.Diagnostics += len(f.Diagnostics)
	}
	return r
}

// NeedsSorting reports whether any file had violations.
func (r Report) NeedsSorting() bool {
	for _, f := range r.Files {
		if f.Changed || len(f.Diagnostics) > 0 {
			return true
		}
	}
	return false
}

// Position converts a byte offset into a 1-based line and column.
func Position(content []byte, offset int) (int, int) {
	if offset > len(content) {
		offset = len(content)
	}
	before := content[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	col := offset - (bytes.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}

// Options control text output.
type Options struct {
	Verbose bool
	Quiet   bool
}

// Write renders r in the given format: "text", "json" or "yaml".
func Write(w io.Writer, format string, r Report, opts Options) error {
	switch format {
	case "", "text":
		return writeText(w, r, opts)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
