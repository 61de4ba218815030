// Package sorting is the ordering engine shared by every container adapter.
//
// An adapter walks one container of a syntax tree and describes each sibling
// as a Member. Analyze turns the members into Elements (key, size, group,
// rank), splits them into partitions, reports adjacent pairs that break the
// configured order and synthesizes one text Edit per partition that sorts it.
// The engine never sees a syntax tree: it reads byte ranges of the source and
// returns replacement text.
package sorting

import (
	"slices"
)

// Span is a half-open byte range [Start, End) of the source.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Comment is a comment attached to a member, with its raw text.
type Comment struct {
	Span
	Text string
}

// KeyKind tells the key extractor how a member is named.
type KeyKind int

const (
	// KeyIdentifier uses the text of KeySpan as is.
	KeyIdentifier KeyKind = iota
	// KeyLiteral uses the value of the literal in KeySpan.
	KeyLiteral
	// KeyRaw uses the source of KeySpan up to the first type annotation.
	KeyRaw
	// KeyExplicit uses KeyText, computed by the adapter.
	KeyExplicit
)

// Modifier names shared by adapters.
const (
	ModDeprecated = "deprecated"
	ModMultiline  = "multiline"
)

// Member is what an adapter hands to the engine for one sibling element.
type Member struct {
	// Selectors name the structural kind, most specific first,
	// e.g. {"get-method", "method"}.
	Selectors []string
	// Modifiers are structural attributes such as "static" or "private".
	Modifiers []string

	Key     KeyKind
	KeySpan Span
	KeyText string

	// TypeAnnotation and ReturnType are set for members with annotations
	// and bound raw keys.
	TypeAnnotation *Span
	ReturnType     *Span
	// Optional is set when the member carries a trailing '?' marker.
	Optional bool

	// Span covers the member including decorators and any terminator the
	// adapter wants to travel with it, but not its leading comments.
	Span
	// Leading are comments placed between the previous member and this one.
	Leading []Comment
	// Trailing is a comment on the same line after the member and its
	// separator punctuation.
	Trailing *Comment

	// Node is the originating syntax node, opaque to the engine.
	Node any
}

// HasModifier reports whether the member carries the modifier.
func (m *Member) HasModifier(name string) bool {
	return slices.Contains(m.Modifiers, name)
}

// Element is the record the engine sorts. It is built once per member and
// never changes during a pass.
type Element struct {
	Name     string
	Size     int
	Rank     int
	GroupKey string

	// Span is the movable source range: the member plus the leading comments
	// that travel with it.
	Span
	Trailing *Comment

	// Boundary is set when a leading comment of the member starts a new partition.
	Boundary bool
	// Index is the position in the original sequence.
	Index int

	Member *Member
}

// Edit replaces Span of the source with Text.
type Edit struct {
	Span
	Text string
}

// Apply returns src with the edit applied.
func (e Edit) Apply(src []byte) []byte {
	out := make([]byte, 0, len(src)-e.Len()+len(e.Text))
	out = append(out, src[:e.Start]...)
	out = append(out, e.Text...)
	return append(out, src[e.End:]...)
}
