package sorting

import (
	"strings"

	"github.com/evanrichards/tsorder/internal/config"
)

// Classifier assigns groups and ranks. It is built once per configuration
// and holds no state that depends on the elements it has seen.
type Classifier struct {
	cfg     config.SortConfig
	matcher Matcher
	ranks   map[string]int
	unknown int
	names   []string // configured group names in order of appearance
}

// NewClassifier flattens the configured group ordering into a rank lookup.
func NewClassifier(cfg config.SortConfig, matcher Matcher) *Classifier {
	if matcher == nil {
		matcher = GlobMatcher{}
	}
	ranks, unknown := cfg.Groups.Ranks()
	c := &Classifier{
		cfg:     cfg,
		matcher: matcher,
		ranks:   ranks,
		unknown: unknown,
	}
	for _, entry := range cfg.Groups {
		c.names = append(c.names, entry.Names...)
	}
	return c
}

// Rank returns the rank of a group key.
func (c *Classifier) Rank(group string) int {
	if r, ok := c.ranks[group]; ok {
		return r
	}
	return c.unknown
}

// Group returns the group key of a member named name. Custom groups are tried
// first in configuration order. Otherwise the most specific configured
// structural group wins: earlier selector first, then more modifiers, then
// earlier position in the ordering.
func (c *Classifier) Group(m *Member, name string) string {
	for _, g := range c.cfg.CustomGroups {
		if c.matcher.Match(g.Pattern, name) {
			return g.Name
		}
	}

	best := config.UnknownGroup
	bestSel, bestMods := len(m.Selectors), -1
	for _, group := range c.names {
		sel, mods, ok := matchStructural(group, m)
		if !ok {
			continue
		}
		if sel < bestSel || (sel == bestSel && mods > bestMods) {
			best, bestSel, bestMods = group, sel, mods
		}
	}
	return best
}

// Classify builds the element record for the member at position index.
func (c *Classifier) Classify(src []byte, m *Member, index int) Element {
	name, size := ExtractKey(src, m)
	group := c.Group(m, name)

	el := Element{
		Name:     name,
		Size:     size,
		GroupKey: group,
		Rank:     c.Rank(group),
		Span:     m.Span,
		Trailing: m.Trailing,
		Index:    index,
		Member:   m,
	}
	if c.cfg.DeprecatedAtEnd && m.HasModifier(ModDeprecated) {
		el.Rank = len(c.cfg.Groups) + 1
	}

	// Leading comments travel with the member, except a partition boundary
	// and the comments above it, which stay where they are.
	el.Start = m.Start
	for i := len(m.Leading) - 1; i >= 0; i-- {
		comment := m.Leading[i]
		if c.cfg.PartitionByComment.IsBoundary(CommentText(comment.Text)) {
			el.Boundary = true
			break
		}
		el.Start = comment.Start
	}
	return el
}

// ClassifyAll classifies members in order.
func (c *Classifier) ClassifyAll(src []byte, members []Member) []Element {
	out := make([]Element, len(members))
	for i := range members {
		out[i] = c.Classify(src, &members[i], i)
	}
	return out
}

// matchStructural reports whether a configured group name describes the
// member: a selector of the member, optionally prefixed by distinct
// modifiers the member carries, joined with '-'. It returns the selector
// position and the number of modifiers used.
func matchStructural(group string, m *Member) (int, int, bool) {
	for i, sel := range m.Selectors {
		if group == sel {
			return i, 0, true
		}
		prefix, ok := strings.CutSuffix(group, "-"+sel)
		if !ok || prefix == "" {
			continue
		}
		mods := strings.Split(prefix, "-")
		seen := make(map[string]bool, len(mods))
		valid := true
		for _, mod := range mods {
			if seen[mod] || !m.HasModifier(mod) {
				valid = false
				break
			}
			seen[mod] = true
		}
		if valid {
			return i, len(mods), true
		}
	}
	return 0, 0, false
}

// CommentText strips comment markers and surrounding space.
func CommentText(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "//") {
		return strings.TrimSpace(text[2:])
	}
	if strings.HasPrefix(text, "/*") && strings.HasSuffix(text, "*/") && len(text) >= 4 {
		text = strings.TrimSpace(text[2 : len(text)-2])
		return strings.TrimSpace(strings.TrimLeft(text, "*"))
	}
	return text
}
