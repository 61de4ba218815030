package config

import (
	"encoding"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SortType selects how two elements of the same group are compared.
type SortType int

const (
	TypeAlphabetical SortType = iota
	TypeNatural
	TypeLineLength
)

var (
	_ encoding.TextUnmarshaler = (*SortType)(nil)
	_ encoding.TextMarshaler   = SortType(0)
)

func (t SortType) String() string {
	v, err := t.MarshalText()
	if err != nil {
		return fmt.Sprintf("sort-type-invalid(%d)", int(t))
	}
	return string(v)
}

func (t *SortType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "alphabetical":
		*t = TypeAlphabetical
	case "natural":
		*t = TypeNatural
	case "line-length":
		*t = TypeLineLength
	default:
		return fmt.Errorf("unknown sort type %q (want alphabetical, natural or line-length)", b)
	}
	return nil
}

func (t SortType) MarshalText() ([]byte, error) {
	switch t {
	case TypeAlphabetical:
		return []byte("alphabetical"), nil
	case TypeNatural:
		return []byte("natural"), nil
	case TypeLineLength:
		return []byte("line-length"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid SortType(%d)", int(t))
	}
}

// Order is the direction of the comparison.
type Order int

const (
	OrderAsc Order = iota
	OrderDesc
)

var (
	_ encoding.TextUnmarshaler = (*Order)(nil)
	_ encoding.TextMarshaler   = Order(0)
)

func (o Order) String() string {
	v, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("order-invalid(%d)", int(o))
	}
	return string(v)
}

func (o *Order) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "asc":
		*o = OrderAsc
	case "desc":
		*o = OrderDesc
	default:
		return fmt.Errorf("unknown order %q (want asc or desc)", b)
	}
	return nil
}

func (o Order) MarshalText() ([]byte, error) {
	switch o {
	case OrderAsc:
		return []byte("asc"), nil
	case OrderDesc:
		return []byte("desc"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid Order(%d)", int(o))
	}
}

// PatternSyntax selects the matcher used for custom group patterns.
type PatternSyntax int

const (
	SyntaxGlob PatternSyntax = iota
	SyntaxRegexp
)

var (
	_ encoding.TextUnmarshaler = (*PatternSyntax)(nil)
	_ encoding.TextMarshaler   = PatternSyntax(0)
)

func (s PatternSyntax) String() string {
	v, err := s.MarshalText()
	if err != nil {
		return fmt.Sprintf("pattern-syntax-invalid(%d)", int(s))
	}
	return string(v)
}

func (s *PatternSyntax) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "glob":
		*s = SyntaxGlob
	case "regexp", "regex":
		*s = SyntaxRegexp
	default:
		return fmt.Errorf("unknown pattern syntax %q (want glob or regexp)", b)
	}
	return nil
}

func (s PatternSyntax) MarshalText() ([]byte, error) {
	switch s {
	case SyntaxGlob:
		return []byte("glob"), nil
	case SyntaxRegexp:
		return []byte("regexp"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid PatternSyntax(%d)", int(s))
	}
}

// Partitioning configures comment based partitioning. The zero value is disabled.
// Enabled with a nil Pattern means every standalone comment is a boundary.
type Partitioning struct {
	Enabled bool
	Pattern *regexp.Regexp
}

// PartitionAll returns a partitioning where every comment is a boundary.
func PartitionAll() Partitioning {
	return Partitioning{Enabled: true}
}

// PartitionMatching returns a partitioning on comments matching expr.
func PartitionMatching(expr string) (Partitioning, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Partitioning{}, fmt.Errorf("partition-by-comment pattern %q: %w", expr, err)
	}
	return Partitioning{Enabled: true, Pattern: re}, nil
}

// ParsePartitioning interprets a scalar option value: a boolean literal or a pattern.
func ParsePartitioning(value string) (Partitioning, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		if b {
			return PartitionAll(), nil
		}
		return Partitioning{}, nil
	}
	return PartitionMatching(value)
}

// IsBoundary reports whether a comment with the given text (markers stripped)
// starts a new partition.
func (p Partitioning) IsBoundary(text string) bool {
	if !p.Enabled {
		return false
	}
	if p.Pattern == nil {
		return true
	}
	return p.Pattern.MatchString(text)
}

// Value returns the plain representation used when printing configuration.
func (p Partitioning) Value() any {
	if p.Pattern != nil {
		return p.Pattern.String()
	}
	return p.Enabled
}

func (p *Partitioning) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: partition-by-comment must be a boolean or a pattern", node.Line)
	}
	parsed, err := ParsePartitioning(node.Value)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// GroupEntry is one slot of a group ordering: a single group or a tie set of
// groups sharing a rank.
type GroupEntry struct {
	Names []string
}

// Single returns an entry holding one group.
func Single(name string) GroupEntry {
	return GroupEntry{Names: []string{name}}
}

// Set returns a tie set entry.
func Set(names ...string) GroupEntry {
	return GroupEntry{Names: names}
}

// IsSet reports whether the entry is a tie set.
func (e GroupEntry) IsSet() bool {
	return len(e.Names) > 1
}

// GroupOrdering is the configured list of groups, lowest rank first.
type GroupOrdering []GroupEntry

// UnknownGroup is the implicit group of elements that match no configured group.
const UnknownGroup = "unknown"

// Ranks flattens the ordering into a name to rank lookup and returns the rank
// of unknown elements. An explicit "unknown" entry keeps its position,
// otherwise unknown elements rank after every configured entry.
func (g GroupOrdering) Ranks() (map[string]int, int) {
	ranks := make(map[string]int, len(g))
	for i, entry := range g {
		for _, name := range entry.Names {
			if _, ok := ranks[name]; !ok {
				ranks[name] = i
			}
		}
	}
	if r, ok := ranks[UnknownGroup]; ok {
		return ranks, r
	}
	return ranks, len(g)
}

// Value returns the plain representation used when printing configuration.
func (g GroupOrdering) Value() []any {
	out := make([]any, 0, len(g))
	for _, entry := range g {
		if entry.IsSet() {
			names := make([]any, len(entry.Names))
			for i, n := range entry.Names {
				names[i] = n
			}
			out = append(out, names)
			continue
		}
		if len(entry.Names) == 1 {
			out = append(out, entry.Names[0])
		}
	}
	return out
}

func (g *GroupOrdering) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: groups must be a list", node.Line)
	}
	var raw []any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseGroupOrdering(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGroupOrdering builds an ordering from generic values: each item is a
// group name or a list of group names.
func ParseGroupOrdering(raw []any) (GroupOrdering, error) {
	out := make(GroupOrdering, 0, len(raw))
	for i, item := range raw {
		switch v := item.(type) {
		case string:
			out = append(out, Single(v))
		case []any:
			names := make([]string, 0, len(v))
			for _, n := range v {
				s, ok := n.(string)
				if !ok {
					return nil, fmt.Errorf("groups[%d]: tie set members must be strings, got %T", i, n)
				}
				names = append(names, s)
			}
			if len(names) == 0 {
				return nil, fmt.Errorf("groups[%d]: empty tie set", i)
			}
			out = append(out, GroupEntry{Names: names})
		case []string:
			if len(v) == 0 {
				return nil, fmt.Errorf("groups[%d]: empty tie set", i)
			}
			out = append(out, GroupEntry{Names: append([]string(nil), v...)})
		default:
			return nil, fmt.Errorf("groups[%d]: expected a name or a list of names, got %T", i, item)
		}
	}
	return out, nil
}

// CustomGroup maps a user defined group name to an element name pattern.
type CustomGroup struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Pattern string `yaml:"pattern" mapstructure:"pattern"`
}

// CustomGroups keeps custom groups in configuration order; the first match wins.
type CustomGroups []CustomGroup

func (c *CustomGroups) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(CustomGroups, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: custom group %q pattern must be a string", value.Line, key.Value)
			}
			out = append(out, CustomGroup{Name: key.Value, Pattern: value.Value})
		}
		*c = out
		return nil
	case yaml.SequenceNode:
		var out []CustomGroup
		if err := node.Decode(&out); err != nil {
			return err
		}
		*c = out
		return nil
	default:
		return fmt.Errorf("line %d: custom-groups must be a mapping or a list", node.Line)
	}
}

// Value returns the plain representation used when printing configuration.
func (c CustomGroups) Value() []any {
	out := make([]any, 0, len(c))
	for _, g := range c {
		out = append(out, map[string]any{"name": g.Name, "pattern": g.Pattern})
	}
	return out
}
