package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// groupNameRegex matches predefined group names such as "property" or
// "static-get-method".
var groupNameRegex = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// SortConfig is the resolved configuration for one container. It is built
// from project defaults and magic comment options and is read-only afterwards.
type SortConfig struct {
	Type               SortType
	Order              Order
	IgnoreCase         bool
	PartitionByComment Partitioning
	PartitionByNewLine bool
	Groups             GroupOrdering
	CustomGroups       CustomGroups
	PatternSyntax      PatternSyntax
	DeprecatedAtEnd    bool
	Key                string // For array sorting
	SortByComment      bool   // Sort by comment content
}

// Defaults returns the configuration used when nothing is specified:
// alphabetical, ascending, case sensitive, no groups, no partitions.
func Defaults() SortConfig {
	return SortConfig{
		Type:          TypeAlphabetical,
		Order:         OrderAsc,
		PatternSyntax: SyntaxGlob,
	}
}

// Validate checks the whole configuration and reports every problem at once.
func (c *SortConfig) Validate() error {
	var errs []error

	if _, err := c.Type.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Order.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PatternSyntax.MarshalText(); err != nil {
		errs = append(errs, err)
	}

	custom := make(map[string]bool, len(c.CustomGroups))
	for _, g := range c.CustomGroups {
		custom[g.Name] = true
	}

	seen := make(map[string]int)
	for i, entry := range c.Groups {
		if len(entry.Names) == 0 {
			errs = append(errs, fmt.Errorf("groups[%d]: empty entry", i))
		}
		for _, name := range entry.Names {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, fmt.Errorf("groups[%d]: empty group name", i))
				continue
			}
			if name != UnknownGroup && !custom[name] && !groupNameRegex.MatchString(name) {
				errs = append(errs, fmt.Errorf("groups[%d]: invalid group name %q", i, name))
				continue
			}
			if prev, ok := seen[name]; ok {
				errs = append(errs, fmt.Errorf("groups[%d]: group %q already listed at groups[%d]", i, name, prev))
				continue
			}
			seen[name] = i
		}
	}

	customSeen := make(map[string]bool)
	for i, g := range c.CustomGroups {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("custom-groups[%d]: empty group name", i))
		}
		if customSeen[g.Name] {
			errs = append(errs, fmt.Errorf("custom-groups[%d]: group %q defined twice", i, g.Name))
		}
		customSeen[g.Name] = true
		if g.Pattern == "" {
			errs = append(errs, fmt.Errorf("custom-groups[%d]: group %q has an empty pattern", i, g.Name))
			continue
		}
		switch c.PatternSyntax {
		case SyntaxRegexp:
			if _, err := regexp.Compile(g.Pattern); err != nil {
				errs = append(errs, fmt.Errorf("custom-groups[%d]: %w", i, err))
			}
		default:
			if !doublestar.ValidatePattern(g.Pattern) {
				errs = append(errs, fmt.Errorf("custom-groups[%d]: invalid glob %q", i, g.Pattern))
			}
		}
	}

	// Validation: cannot use both key and sort-by-comment
	if c.Key != "" && c.SortByComment {
		errs = append(errs, errors.New("cannot use both 'key' and 'sort-by-comment' options together"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// GetSortingMode returns a string describing the sorting mode for debugging
func (c *SortConfig) GetSortingMode() string {
	mode := fmt.Sprintf("%s/%s", c.Type, c.Order)
	if c.IgnoreCase {
		mode += "/ignore-case"
	}
	if c.SortByComment {
		return "sort-by-comment " + mode
	}
	if c.Key != "" {
		return fmt.Sprintf("key=%q %s", c.Key, mode)
	}
	return mode
}

// Document returns the configuration as plain values for YAML or TOML output.
func (c SortConfig) Document() map[string]any {
	doc := map[string]any{
		"type":                  c.Type.String(),
		"order":                 c.Order.String(),
		"ignore-case":           c.IgnoreCase,
		"partition-by-comment":  c.PartitionByComment.Value(),
		"partition-by-new-line": c.PartitionByNewLine,
		"groups":                c.Groups.Value(),
		"custom-groups":         c.CustomGroups.Value(),
		"pattern-syntax":        c.PatternSyntax.String(),
		"deprecated-at-end":     c.DeprecatedAtEnd,
		"sort-by-comment":       c.SortByComment,
	}
	if c.Key != "" {
		doc["key"] = c.Key
	}
	return doc
}
