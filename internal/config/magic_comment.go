package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Directive is the marker that opts a container into sorting.
const Directive = "tsorder: keep-sorted"

var (
	// MagicCommentRegex matches a block or line comment carrying the directive.
	MagicCommentRegex = regexp.MustCompile(`(?s)^(/\*.*?tsorder:\s*keep-sorted\b.*?\*/|//\s*tsorder:\s*keep-sorted\b.*)$`)

	directiveRegex = regexp.MustCompile(`tsorder:\s*keep-sorted\b`)

	// ErrNoDirective is returned when the comment does not carry the directive.
	ErrNoDirective = errors.New("comment has no keep-sorted directive")
)

// IsMagicComment reports whether a comment's text carries the directive.
func IsMagicComment(commentText []byte) bool {
	return MagicCommentRegex.Match(commentText)
}

// ParseSortConfig extracts options from a magic comment. Options follow the
// directive either as space separated tokens
//
//	/** tsorder: keep-sorted type=natural order=desc ignore-case */
//
// or as a YAML flow mapping
//
//	/** tsorder: keep-sorted { groups: [property, [get-method, set-method], method] } */
func ParseSortConfig(commentText []byte) (Options, error) {
	text := string(commentText)
	loc := directiveRegex.FindStringIndex(text)
	if loc == nil {
		return Options{}, ErrNoDirective
	}

	// Extract the configuration part before the closing */
	configPart := text[loc[1]:]
	if endIdx := strings.LastIndex(configPart, "*/"); endIdx >= 0 {
		configPart = configPart[:endIdx]
	}

	// Remove leading asterisks from each line (for multiline comments)
	lines := strings.Split(configPart, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}
	configPart = strings.Join(cleanedLines, " ")

	if strings.HasPrefix(configPart, "{") {
		return parseYAMLOptions(configPart)
	}
	return parseTokenOptions(configPart)
}

func parseYAMLOptions(src string) (Options, error) {
	var opts Options
	dec := yaml.NewDecoder(strings.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("parse keep-sorted options: %w", err)
	}
	return opts, nil
}

func parseTokenOptions(src string) (Options, error) {
	var opts Options
	tokens, err := splitTokens(src)
	if err != nil {
		return Options{}, err
	}

	for _, tok := range tokens {
		name, value, hasValue := strings.Cut(tok, "=")
		value = trimQuotes(value)

		boolValue := func() (*bool, error) {
			if !hasValue {
				return ptr(true), nil
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("option %s: %q is not a boolean", name, value)
			}
			return &b, nil
		}
		requireValue := func() error {
			if !hasValue || value == "" {
				return fmt.Errorf("option %s needs a value", name)
			}
			return nil
		}

		switch name {
		case "type":
			if err := requireValue(); err != nil {
				return Options{}, err
			}
			var t SortType
			if err := t.UnmarshalText([]byte(value)); err != nil {
				return Options{}, err
			}
			opts.Type = &t
		case "order":
			if err := requireValue(); err != nil {
				return Options{}, err
			}
			var o Order
			if err := o.UnmarshalText([]byte(value)); err != nil {
				return Options{}, err
			}
			opts.Order = &o
		case "pattern-syntax":
			if err := requireValue(); err != nil {
				return Options{}, err
			}
			var s PatternSyntax
			if err := s.UnmarshalText([]byte(value)); err != nil {
				return Options{}, err
			}
			opts.PatternSyntax = &s
		case "ignore-case":
			if opts.IgnoreCase, err = boolValue(); err != nil {
				return Options{}, err
			}
		case "partition-by-new-line":
			if opts.PartitionByNewLine, err = boolValue(); err != nil {
				return Options{}, err
			}
		case "deprecated-at-end":
			if opts.DeprecatedAtEnd, err = boolValue(); err != nil {
				return Options{}, err
			}
		case "sort-by-comment":
			if opts.SortByComment, err = boolValue(); err != nil {
				return Options{}, err
			}
		case "partition-by-comment":
			p := PartitionAll()
			if hasValue {
				if p, err = ParsePartitioning(value); err != nil {
					return Options{}, err
				}
			}
			opts.PartitionByComment = &p
		case "key":
			if err := requireValue(); err != nil {
				return Options{}, err
			}
			opts.Key = ptr(value)
		case "groups":
			if err := requireValue(); err != nil {
				return Options{}, err
			}
			if opts.Groups, err = parseGroupList(value); err != nil {
				return Options{}, err
			}
		default:
			return Options{}, fmt.Errorf("unknown keep-sorted option %q", name)
		}
	}

	return opts, nil
}

// parseGroupList reads the compact token form of a group ordering:
// entries separated by commas, tie set members separated by '|'. A value in
// brackets is read as a YAML flow list, as in the braced form.
func parseGroupList(value string) (GroupOrdering, error) {
	if strings.HasPrefix(value, "[") {
		var out GroupOrdering
		if err := yaml.Unmarshal([]byte(value), &out); err != nil {
			return nil, fmt.Errorf("option groups: %w", err)
		}
		return out, nil
	}

	var out GroupOrdering
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var names []string
		for _, n := range strings.Split(part, "|") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		out = append(out, GroupEntry{Names: names})
	}
	return out, nil
}

// splitTokens splits on whitespace outside of quotes.
func splitTokens(s string) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		quote  rune
	)
	for _, r := range s {
		switch {
		case quote != 0:
			cur.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in keep-sorted options %q", s)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}

func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}
