// Package reconstruction rebuilds file content from the edits produced by the
// sorting engine.
package reconstruction

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/evanrichards/tsorder/internal/sorting"
)

// ErrOverlappingEdits is returned when two edits touch the same bytes.
var ErrOverlappingEdits = errors.New("overlapping edits")

// Apply returns content with all edits applied. Edits refer to the original
// content and must not overlap.
func Apply(content []byte, edits []sorting.Edit) ([]byte, error) {
	sorted := sortEdits(edits)

	var result bytes.Buffer
	result.Grow(len(content))

	pos := 0
	for i, e := range sorted {
		if e.Start < 0 || e.End > len(content) || e.Start > e.End {
			return nil, fmt.Errorf("edit %d [%d,%d) outside content of %d bytes", i, e.Start, e.End, len(content))
		}
		if e.Start < pos {
			return nil, fmt.Errorf("edit [%d,%d): %w", e.Start, e.End, ErrOverlappingEdits)
		}
		// Write content before the edit
		result.Write(content[pos:e.Start])
		result.WriteString(e.Text)
		pos = e.End
	}
	// Write content after the last edit
	result.Write(content[pos:])

	return result.Bytes(), nil
}

// Disjoint splits edits into a set that can be applied together and the rest.
// When edits nest, as they do for a sorted object inside a sorted object, the
// outer edit is kept and the inner one deferred to the next pass.
func Disjoint(edits []sorting.Edit) (apply, deferred []sorting.Edit) {
	sorted := sortEdits(edits)
	end := -1
	for _, e := range sorted {
		if e.Start < end {
			deferred = append(deferred, e)
			continue
		}
		apply = append(apply, e)
		end = e.End
	}
	return apply, deferred
}

// sortEdits orders edits by start, longer first on ties.
func sortEdits(edits []sorting.Edit) []sorting.Edit {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b sorting.Edit) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End, a.End)
	})
	return sorted
}
