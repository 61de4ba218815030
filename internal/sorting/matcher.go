package sorting

import (
	"regexp"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/evanrichards/tsorder/internal/config"
)

// Matcher decides whether an element name matches a custom group pattern.
type Matcher interface {
	Match(pattern, name string) bool
}

// GlobMatcher matches with doublestar glob syntax.
type GlobMatcher struct{}

func (GlobMatcher) Match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// RegexpMatcher matches with RE2 syntax. Compiled patterns are cached and the
// matcher is safe for concurrent use.
type RegexpMatcher struct {
	cache sync.Map // pattern -> *regexp.Regexp, nil when invalid
}

func (m *RegexpMatcher) Match(pattern, name string) bool {
	v, ok := m.cache.Load(pattern)
	if !ok {
		re, err := regexp.Compile(pattern)
		if err != nil {
			re = nil
		}
		v, _ = m.cache.LoadOrStore(pattern, re)
	}
	re := v.(*regexp.Regexp)
	return re != nil && re.MatchString(name)
}

// MatcherSet holds one matcher per pattern syntax.
type MatcherSet struct {
	Glob   Matcher
	Regexp Matcher
}

// NewMatcherSet returns the default matchers.
func NewMatcherSet() *MatcherSet {
	return &MatcherSet{Glob: GlobMatcher{}, Regexp: &RegexpMatcher{}}
}

// For returns the matcher for a pattern syntax.
func (s *MatcherSet) For(syntax config.PatternSyntax) Matcher {
	if syntax == config.SyntaxRegexp {
		return s.Regexp
	}
	return s.Glob
}
