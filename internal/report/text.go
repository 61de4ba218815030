package report

import (
	"bufio"
	"fmt"
	"io"
)

func writeText(w io.Writer, r Report, opts Options) error {
	bw := bufio.NewWriter(w)

	for _, f := range r.Files {
		if f.Error != "" {
			fmt.Fprintf(bw, MsgFileError, f.Path, f.Error)
			continue
		}
		if !opts.Quiet {
			for _, d := range f.Diagnostics {
				msg := MsgDiagnostic
				if !d.Fixable {
					msg = MsgDiagnosticNoFix
				}
				fmt.Fprintf(bw, msg, d.Path, d.Line, d.Column, d.Message, d.Rule)
			}
		}
		if opts.Verbose {
			writeFileStatus(bw, r.Mode, f)
		}
	}

	// Print summary for all modes when processing multiple files
	if opts.Verbose && r.Summary.TotalFiles > 1 {
		writeSummary(bw, r.Mode, r.Summary)
	}
	return bw.Flush()
}

func writeFileStatus(w io.Writer, mode Mode, f FileReport) {
	if f.Changed {
		switch mode {
		case ModeWrite:
			fmt.Fprintf(w, MsgSorted, f.Path, f.ContainersNeedSort)
		case ModeCheck:
			fmt.Fprintf(w, MsgNeedsSorting, f.Path, f.ContainersNeedSort)
		default:
			fmt.Fprintf(w, MsgWouldSort, f.Path, f.ContainersNeedSort)
		}
		return
	}
	// Only print in check mode
	if mode != ModeCheck {
		return
	}
	if f.ContainersFound > 0 {
		fmt.Fprintf(w, MsgAlreadySorted, f.Path, f.ContainersFound)
	} else {
		fmt.Fprintf(w, MsgNoChanges, f.Path)
	}
}

func writeSummary(w io.Writer, mode Mode, s Summary) {
	fmt.Fprint(w, MsgSummaryRule)
	fmt.Fprintf(w, "Total files:    %d\n", s.TotalFiles)

	switch mode {
	case ModeCheck:
		fmt.Fprintf(w, "No changes:     %d\n", s.FilesNoChanges)
		if s.FilesNeedSort > 0 {
			fmt.Fprintf(w, "Need sorting:   %d ❌\n", s.FilesNeedSort)
		}
	case ModeWrite:
		fmt.Fprintf(w, "Sorted:         %d\n", s.FilesNeedSort)
		fmt.Fprintf(w, "No changes:     %d\n", s.FilesNoChanges)
	default:
		fmt.Fprintf(w, "Would sort:     %d\n", s.FilesNeedSort)
		fmt.Fprintf(w, "No changes:     %d\n", s.FilesNoChanges)
	}

	if s.ErrorFiles > 0 {
		fmt.Fprintf(w, "Errors:         %d\n", s.ErrorFiles)
	}
	if s.CachedFiles > 0 {
		fmt.Fprintf(w, "From cache:     %d\n", s.CachedFiles)
	}

	// Container-level summary
	if s.TotalContainers == 0 {
		return
	}
	fmt.Fprintf(w, "\nkeep-sorted containers:\n")
	fmt.Fprintf(w, "Total found:    %d\n", s.TotalContainers)

	sorted := s.TotalContainers - s.ContainersNeedSort
	switch mode {
	case ModeCheck:
		fmt.Fprintf(w, "Sorted:         %d\n", sorted)
		if s.ContainersNeedSort > 0 {
			fmt.Fprintf(w, "Need sorting:   %d ❌\n", s.ContainersNeedSort)
		}
	case ModeWrite:
		// After writing, all containers are sorted
		fmt.Fprintf(w, "Sorted:         %d (was %d)\n", s.TotalContainers, sorted)
	default:
		fmt.Fprintf(w, "Would sort:     %d\n", s.ContainersNeedSort)
		fmt.Fprintf(w, "Already sorted: %d\n", sorted)
	}
}
