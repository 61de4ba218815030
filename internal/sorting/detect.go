package sorting

import (
	"fmt"
)

// ViolationKind distinguishes a broken group order from a broken order
// inside a group.
type ViolationKind int

const (
	ViolationOrder ViolationKind = iota
	ViolationGroupOrder
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationOrder:
		return "order"
	case ViolationGroupOrder:
		return "group-order"
	default:
		return fmt.Sprintf("violation-kind-invalid(%d)", int(k))
	}
}

// Violation is an adjacent pair in the original order that contradicts the
// configured order. Element is the later one and should come before Previous.
type Violation struct {
	Kind     ViolationKind
	Element  Element
	Previous Element
}

// Message describes the violation for humans.
func (v Violation) Message() string {
	if v.Kind == ViolationGroupOrder {
		return fmt.Sprintf("Expected %q (%s) to come before %q (%s)",
			v.Element.Name, v.Element.GroupKey, v.Previous.Name, v.Previous.GroupKey)
	}
	return fmt.Sprintf("Expected %q to come before %q", v.Element.Name, v.Previous.Name)
}

// DetectViolations scans adjacent pairs of one partition.
func DetectViolations(partition []Element, c Comparator) []Violation {
	var out []Violation
	for i := 1; i < len(partition); i++ {
		prev, cur := partition[i-1], partition[i]
		switch {
		case cur.Rank < prev.Rank:
			out = append(out, Violation{Kind: ViolationGroupOrder, Element: cur, Previous: prev})
		case cur.Rank == prev.Rank && c.Compare(cur, prev) < 0:
			out = append(out, Violation{Kind: ViolationOrder, Element: cur, Previous: prev})
		}
	}
	return out
}
