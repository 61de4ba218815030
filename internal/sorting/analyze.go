package sorting

import (
	"github.com/evanrichards/tsorder/internal/config"
)

// Diagnostic is a violation, optionally with the fix for its partition.
type Diagnostic struct {
	Violation
	Partition int
	Fix       *Edit
}

// Result is the outcome of analysing one container.
type Result struct {
	Elements    []Element
	Partitions  [][]Element
	Diagnostics []Diagnostic
	Fixes       []Edit
}

// Sorted reports whether no violation was found.
func (r Result) Sorted() bool {
	return len(r.Diagnostics) == 0
}

// Analyze runs the whole pipeline on one container. Every violation is
// reported; the first one of each partition carries the single edit that
// sorts that partition. Partitions without violations are never rebuilt.
func Analyze(src []byte, members []Member, cfg config.SortConfig, matcher Matcher) Result {
	classifier := NewClassifier(cfg, matcher)
	comparator := NewComparator(cfg)

	res := Result{Elements: classifier.ClassifyAll(src, members)}
	res.Partitions = Partition(src, res.Elements, cfg)

	for pi, part := range res.Partitions {
		violations := DetectViolations(part, comparator)
		if len(violations) == 0 {
			continue
		}

		fix := SynthesizeFix(src, part, comparator)
		if fix != nil {
			res.Fixes = append(res.Fixes, *fix)
		}
		for i, v := range violations {
			d := Diagnostic{Violation: v, Partition: pi}
			if i == 0 {
				d.Fix = fix
			}
			res.Diagnostics = append(res.Diagnostics, d)
		}
	}
	return res
}
