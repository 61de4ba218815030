package sorting

import (
	"cmp"
	"slices"
	"strings"
)

// SortPartition returns the target order of a partition: by rank, then by
// the comparator, keeping the original order of equal elements.
func SortPartition(partition []Element, c Comparator) []Element {
	out := slices.Clone(partition)
	slices.SortStableFunc(out, func(a, b Element) int {
		if r := cmp.Compare(a.Rank, b.Rank); r != 0 {
			return r
		}
		return c.Compare(a, b)
	})
	return out
}

// PartitionSpan is the source range a fix for the partition replaces: from
// the first element to the end of the last one, including its same-line
// trailing punctuation and comment.
func PartitionSpan(src []byte, partition []Element) Span {
	first, last := partition[0], partition[len(partition)-1]
	end := last.End
	for end < len(src) && strings.IndexByte(" \t,;", src[end]) >= 0 {
		end++
	}
	if last.Trailing != nil && last.Trailing.End > end {
		end = last.Trailing.End
	}
	return Span{Start: first.Start, End: end}
}

// SynthesizeFix rebuilds the partition in target order. Element texts are
// placed into the original slots, so separators stay where they were while
// each element carries its leading comments and its trailing comment. It
// returns nil when the partition is already in order or when the reorder
// cannot be expressed without changing the code.
func SynthesizeFix(src []byte, partition []Element, c Comparator) *Edit {
	if len(partition) < 2 {
		return nil
	}

	target := SortPartition(partition, c)
	span := PartitionSpan(src, partition)

	var b strings.Builder
	b.Grow(span.Len())
	for i, t := range target {
		orig := partition[i]
		b.Write(src[t.Start:t.End])

		gap := Span{Start: orig.End, End: span.End}
		last := i == len(partition)-1
		if !last {
			gap.End = partition[i+1].Start
		}
		if !writeGap(&b, src, gap, orig.Trailing, t.Trailing, last && followsLineBreak(src, span.End)) {
			return nil
		}
	}

	text := b.String()
	if text == string(src[span.Start:span.End]) {
		return nil
	}
	return &Edit{Span: span, Text: text}
}

// writeGap writes the separator that followed the original element of a slot,
// swapping the original element's trailing comment for the placed element's.
// It reports false when a line comment would swallow code.
func writeGap(b *strings.Builder, src []byte, gap Span, have, want *Comment, endsLine bool) bool {
	if have != nil {
		pre := string(src[gap.Start:have.Start])
		post := string(src[have.End:gap.End])
		if want != nil {
			b.WriteString(pre)
			b.WriteString(want.Text)
		} else {
			b.WriteString(strings.TrimRight(pre, " \t"))
		}
		b.WriteString(post)
		return true
	}

	sep := string(src[gap.Start:gap.End])
	if want == nil {
		b.WriteString(sep)
		return true
	}

	k := strings.IndexAny(sep, "\r\n")
	if k < 0 {
		if strings.HasPrefix(want.Text, "//") && !endsLine {
			return false
		}
		k = len(sep)
	}
	head := strings.TrimRight(sep[:k], " \t")
	b.WriteString(head)
	b.WriteByte(' ')
	b.WriteString(want.Text)
	b.WriteString(sep[len(head):k])
	b.WriteString(sep[k:])
	return true
}

// followsLineBreak reports whether only horizontal space separates pos from
// the end of its line.
func followsLineBreak(src []byte, pos int) bool {
	for ; pos < len(src); pos++ {
		switch src[pos] {
		case ' ', '\t':
			continue
		case '\n', '\r':
			return true
		default:
			return false
		}
	}
	return true
}
