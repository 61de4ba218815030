package sorting

import (
	"regexp"

	"github.com/evanrichards/tsorder/internal/config"
)

var blankLineRegex = regexp.MustCompile(`\n[ \t\r]*\n`)

// Partition splits elements into runs that are sorted independently. A new
// run starts at an element whose leading comments contain a partition
// boundary, and, with partition-by-new-line, after a blank line. Joining the
// runs gives back elements unchanged.
func Partition(src []byte, elements []Element, cfg config.SortConfig) [][]Element {
	if len(elements) == 0 {
		return nil
	}

	var parts [][]Element
	start := 0
	for i := 1; i < len(elements); i++ {
		if elements[i].Boundary || (cfg.PartitionByNewLine && blankLineBetween(src, elements[i-1], elements[i])) {
			parts = append(parts, elements[start:i:i])
			start = i
		}
	}
	return append(parts, elements[start:])
}

func blankLineBetween(src []byte, prev, next Element) bool {
	from := prev.End
	if prev.Trailing != nil {
		from = prev.Trailing.End
	}
	to := next.Member.Start
	if from >= to {
		return false
	}
	return blankLineRegex.Match(src[from:to])
}
