package sorting

import (
	"slices"
	"strings"
	"testing"

	"github.com/evanrichards/tsorder/internal/config"
)

// parseMembers reads a tiny line format: one "modifiers key: value," member per
// line, "key()" for methods, "// ..." lines as leading comments and
// " // ..." at the end of a member line as its trailing comment.
func parseMembers(t *testing.T, src string) []Member {
	t.Helper()

	var (
		members []Member
		pending []Comment
		offset  int
	)
	for _, line := range strings.SplitAfter(src, "\n") {
		lineStart := offset
		offset += len(line)

		body := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(body)
		indent := len(body) - len(strings.TrimLeft(body, " \t"))

		switch {
		case trimmed == "" || trimmed == "{" || strings.HasPrefix(trimmed, "}"):
			continue
		case strings.HasPrefix(trimmed, "//"):
			start := lineStart + indent
			pending = append(pending, Comment{Span: Span{Start: start, End: start + len(trimmed)}, Text: trimmed})
			continue
		}

		m := Member{Selectors: []string{"property"}, Leading: pending}
		pending = nil

		code := body
		if idx := strings.Index(body, " //"); idx >= 0 {
			cs := lineStart + idx + 1
			m.Trailing = &Comment{Span: Span{Start: cs, End: lineStart + len(body)}, Text: body[idx+1:]}
			code = body[:idx]
		}
		code = strings.TrimRight(code, " \t")
		code = strings.TrimSuffix(code, ",")

		m.Start = lineStart + indent
		m.End = lineStart + len(code)

		head, _, ok := strings.Cut(code[indent:], ":")
		if !ok {
			t.Fatalf("member line without ':' %q", body)
		}
		words := strings.Fields(head)
		key := words[len(words)-1]
		m.Modifiers = slices.Clone(words[:len(words)-1])
		keyOffset := strings.LastIndex(head, key)
		if k, isMethod := strings.CutSuffix(key, "()"); isMethod {
			key = k
			m.Selectors = []string{"method"}
		}
		ks := m.Start + keyOffset
		m.KeySpan = Span{Start: ks, End: ks + len(key)}
		members = append(members, m)
	}
	return members
}

// applyFixes applies the edits of a result from the end of the source backwards.
func applyFixes(src string, res Result) string {
	edits := slices.Clone(res.Fixes)
	slices.SortFunc(edits, func(a, b Edit) int { return b.Start - a.Start })
	out := []byte(src)
	for _, e := range edits {
		out = e.Apply(out)
	}
	return string(out)
}

func names(elements []Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.Name
	}
	return out
}

func analyzeString(t *testing.T, src string, cfg config.SortConfig) Result {
	t.Helper()
	return Analyze([]byte(src), parseMembers(t, src), cfg, nil)
}
