// Package filter decides, per discovered path, whether the file is part
// of the report. It combines hidden-file policy, include and exclude
// pattern sets, and optional .gitignore rules into a single fixed-order
// decision.
package filter

import (
	"path"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/tomhall/dirsummary/internal/pattern"
)

// Reason explains why a path was rejected. Accepted paths carry an
// empty Reason.
type Reason string

const (
	ReasonHidden      Reason = "hidden file or directory"
	ReasonExcluded    Reason = "matched exclude pattern"
	ReasonNotIncluded Reason = "no include pattern matched"
	ReasonIgnored     Reason = "matched gitignore rule"
)

// Decision is the outcome of evaluating a single path against a Policy.
type Decision struct {
	Accept bool
	Reason Reason
}

// Policy holds the selection rules applied to every discovered file.
// The zero value accepts every path.
type Policy struct {
	// ExcludeHidden rejects paths containing a dot-prefixed segment
	// unless an include pattern matches them.
	ExcludeHidden bool
	// Include, when non-empty, restricts acceptance to matching paths.
	Include *pattern.Set
	// Exclude, when non-empty, rejects matching paths.
	Exclude *pattern.Set
	// Ignore, when set, applies .gitignore rules after the pattern
	// checks.
	Ignore *ignore.GitIgnore
}

// Decide evaluates relPath against the policy.
//
// The step order is behaviorally significant. A hidden path survives
// step 1 only when an active include pattern matches it, and that
// override does not bypass the exclude check in step 2. Running with
// hidden files included and an exclude pattern of ".git/*" therefore
// keeps .git out while other dotfiles pass.
func (p Policy) Decide(relPath string) Decision {
	base := path.Base(relPath)

	if p.ExcludeHidden && IsHidden(relPath) {
		if !p.Include.Any(relPath, base) {
			return Decision{Reason: ReasonHidden}
		}
	}

	if p.Exclude.Any(relPath, base) {
		return Decision{Reason: ReasonExcluded}
	}

	if p.Include.Len() > 0 && !p.Include.Any(relPath, base) {
		return Decision{Reason: ReasonNotIncluded}
	}

	if p.Ignore != nil && p.Ignore.MatchesPath(relPath) {
		return Decision{Reason: ReasonIgnored}
	}

	return Decision{Accept: true}
}

// IsHidden reports whether any slash-separated segment of relPath
// begins with a dot.
func IsHidden(relPath string) bool {
	for _, seg := range strings.Split(relPath, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
