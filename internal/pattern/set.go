package pattern

import "fmt"

// Set is an ordered collection of compiled patterns with any-match
// semantics. A nil or empty Set matches nothing.
type Set struct {
	sources  []string
	matchers []*Matcher
}

// NewSet compiles every pattern into a Set. Insertion order is preserved
// for display purposes only; matching is order-independent.
func NewSet(patterns []string) (*Set, error) {
	s := &Set{
		sources:  make([]string, 0, len(patterns)),
		matchers: make([]*Matcher, 0, len(patterns)),
	}
	for i, p := range patterns {
		m, err := Compile(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %d of %d: %w", i+1, len(patterns), err)
		}
		s.sources = append(s.sources, p)
		s.matchers = append(s.matchers, m)
	}
	return s, nil
}

// Any reports whether at least one pattern in the set matches the
// relative path or the basename.
func (s *Set) Any(relPath, base string) bool {
	if s == nil {
		return false
	}
	for _, m := range s.matchers {
		if m.Matches(relPath, base) {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.matchers)
}

// Patterns returns the original pattern strings in insertion order.
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}
	return s.sources
}
