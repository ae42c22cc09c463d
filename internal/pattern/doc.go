// Package pattern implements the dual glob/regex matching used to select
// files during a scan.
//
// Every user-supplied pattern is compiled into two forms:
//
//   - A glob form: regex metacharacters are escaped, "*" becomes ".*",
//     "?" becomes ".", and the result is anchored to the full string.
//   - A raw regex form: the pattern compiled verbatim as a regular
//     expression, unanchored. Patterns that are not valid regexes simply
//     lack this form.
//
// A pattern matches a file when either form matches either the file's
// relative path or its basename. Both styles work without a mode switch:
// "*.py" behaves as a glob, ".*\.py$" behaves as a regex, and a bare
// filename pattern like "Makefile" matches at any directory depth.
//
// Sets group patterns with any-match semantics: a file matches a set when
// at least one contained pattern matches. A nil or empty Set matches
// nothing; whether a filter is active at all is the caller's decision.
package pattern
