package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher is a single compiled pattern, usable against both a relative
// path and a basename.
type Matcher struct {
	source string
	glob   *regexp.Regexp
	raw    *regexp.Regexp
}

// Compile builds a Matcher from a user-supplied pattern string.
//
// The glob form always compiles. The raw regex form is optional: a
// pattern like "*.py" is a valid glob but an invalid regex, so failure
// to compile the raw form is not an error and leaves glob matching only.
func Compile(source string) (*Matcher, error) {
	if source == "" {
		return nil, fmt.Errorf("pattern must not be empty")
	}

	glob, err := regexp.Compile(globToRegex(source))
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", source, err)
	}

	m := &Matcher{
		source: source,
		glob:   glob,
	}

	if raw, err := regexp.Compile(source); err == nil {
		m.raw = raw
	}

	return m, nil
}

// Matches reports whether the pattern matches the relative path or the
// basename under either interpretation.
func (m *Matcher) Matches(relPath, base string) bool {
	if m.raw != nil {
		if m.raw.MatchString(relPath) || m.raw.MatchString(base) {
			return true
		}
	}
	return m.glob.MatchString(relPath) || m.glob.MatchString(base)
}

// Source returns the original pattern string.
func (m *Matcher) Source() string {
	return m.source
}

// globToRegex translates a glob into an anchored regex string. "*"
// matches any sequence including path separators, "?" matches a single
// character, and "**" is equivalent to "*".
func globToRegex(pattern string) string {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*\*`, `.*`)
	escaped = strings.ReplaceAll(escaped, `\*`, `.*`)
	escaped = strings.ReplaceAll(escaped, `\?`, `.`)
	return "^" + escaped + "$"
}
