package common

import (
	"bytes"

	"github.com/evanrichards/tsorder/internal/sorting"

	sitter "github.com/smacker/go-tree-sitter"
)

// Sibling is one member node of a container together with the trivia that
// belongs to it.
type Sibling struct {
	Elem       *sitter.Node
	Decorators []*sitter.Node
	Leading    []*sitter.Node // Comments before this member
	Trailing   *sitter.Node   // Inline comment after member
	Terminator *sitter.Node   // "," or ";" following the member
}

// Node returns the member node.
func (s *Sibling) Node() *sitter.Node {
	return s.Elem
}

// LeadingComments returns comments that appear before this member.
func (s *Sibling) LeadingComments() []*sitter.Node {
	return s.Leading
}

// TrailingComment returns the inline comment after this member.
func (s *Sibling) TrailingComment() *sitter.Node {
	return s.Trailing
}

// Walk describes how to collect the members of a container.
type Walk struct {
	// From is the index of the first child to look at, usually the one after
	// the magic comment.
	From int
	// Break reports children that end a run without being members themselves,
	// such as spread elements in an object literal.
	Break func(*sitter.Node) bool
}

// Siblings walks the children of container. Comments accumulate as leading
// comments of the next member, decorators accumulate until the member they
// decorate, and a comment starting on the row where a member ends (after its
// terminator, if any) is that member's trailing comment.
func (w Walk) Siblings(container *sitter.Node) [][]*Sibling {
	var (
		runs       [][]*Sibling
		run        []*Sibling
		pending    []*sitter.Node
		decorators []*sitter.Node
	)
	flush := func() {
		if len(run) > 0 {
			runs = append(runs, run)
		}
		run, pending, decorators = nil, nil, nil
	}

	count := int(container.ChildCount())
	for i := w.From; i < count; i++ {
		child := container.Child(i)

		switch {
		case child.Type() == "comment":
			pending = append(pending, child)
			continue
		case child.Type() == "decorator":
			decorators = append(decorators, child)
			continue
		case !child.IsNamed():
			// Brackets and separators not claimed by a member.
			continue
		case w.Break != nil && w.Break(child):
			flush()
			continue
		}

		s := &Sibling{Elem: child, Decorators: decorators, Leading: pending}
		pending, decorators = nil, nil

		// Check if followed by a separator and/or inline comment
		j := i + 1
	trailing:
		for ; j < count; j++ {
			next := container.Child(j)
			switch next.Type() {
			case ",", ";":
				if s.Terminator != nil {
					break trailing
				}
				s.Terminator = next
			case "comment":
				if next.StartPoint().Row == child.EndPoint().Row {
					s.Trailing = next
					j++
				}
				break trailing
			default:
				break trailing
			}
		}
		i = j - 1

		run = append(run, s)
	}
	flush()
	return runs
}

// Member builds the engine view of a sibling. Its span starts at the first
// decorator and ends with the node, or with the terminator when
// withTerminator is set. Adapters fill in selectors and keys.
func Member(s *Sibling, content []byte, withTerminator bool) sorting.Member {
	span := NodeSpan(s.Elem)
	if len(s.Decorators) > 0 {
		span.Start = int(s.Decorators[0].StartByte())
	}
	if withTerminator && s.Terminator != nil {
		span.End = int(s.Terminator.EndByte())
	}

	m := sorting.Member{
		Span:    span,
		Leading: Comments(s.Leading, content),
		Node:    s.Elem,
	}
	if s.Trailing != nil {
		c := sorting.Comment{Span: NodeSpan(s.Trailing), Text: Text(s.Trailing, content)}
		m.Trailing = &c
	}

	if len(s.Decorators) > 0 || HasChild(s.Elem, "decorator") {
		m.Modifiers = append(m.Modifiers, "decorated")
	}
	if HasDeprecatedAnnotation(append(s.Leading[:len(s.Leading):len(s.Leading)], s.Trailing), content) {
		m.Modifiers = append(m.Modifiers, sorting.ModDeprecated)
	}
	if bytes.IndexByte(content[span.Start:span.End], '\n') >= 0 {
		m.Modifiers = append(m.Modifiers, sorting.ModMultiline)
	}
	return m
}
