// Package pattern implements the wildcard matching used for file admission
// and rule applicability.
//
// A pattern is a comma-separated list of glob tokens. A candidate matches the
// pattern when it matches any one token in full (no substring matching):
//
//   - `*` matches any run of characters except the path separator
//   - `**` matches any run of characters including path separators
//   - `?` matches exactly one character
//
// Matching is case-sensitive. An empty or blank pattern carries no tokens and
// answers with the configured default, so inclusion patterns can default to
// "match everything" while exclusion patterns default to "match nothing".
package pattern

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/srclint/pkg/errors"
)

// Pattern is an immutable compiled wildcard pattern list.
type Pattern struct {
	tokens           []string
	matchesWhenEmpty bool
}

// New compiles a comma-separated pattern list. matchesWhenEmpty is the answer
// Matches gives when spec contains no tokens after trimming.
func New(spec string, matchesWhenEmpty bool) *Pattern {
	var tokens []string
	for _, raw := range strings.Split(spec, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return &Pattern{tokens: tokens, matchesWhenEmpty: matchesWhenEmpty}
}

// Empty reports whether the pattern carries no tokens.
func (p *Pattern) Empty() bool {
	return len(p.tokens) == 0
}

// Tokens returns the compiled token list.
func (p *Pattern) Tokens() []string {
	return p.tokens
}

// Validate checks every token for glob syntax errors. A malformed token is a
// configuration error, not a runtime matching failure.
func (p *Pattern) Validate() error {
	for _, token := range p.tokens {
		if !doublestar.ValidatePattern(token) {
			return errors.Newf(errors.ErrConfigInvalid, "malformed pattern token %q", token)
		}
	}
	return nil
}

// Matches reports whether candidate matches any token in full.
func (p *Pattern) Matches(candidate string) bool {
	if p.Empty() {
		return p.matchesWhenEmpty
	}
	for _, token := range p.tokens {
		if matchToken(token, candidate) {
			return true
		}
	}
	return false
}

// MatchesPathOrName matches each token against the candidate it is written
// for: a token containing a path separator is tested against the full path,
// all other tokens are tested against the bare file name.
func (p *Pattern) MatchesPathOrName(path, name string) bool {
	if p.Empty() {
		return p.matchesWhenEmpty
	}
	for _, token := range p.tokens {
		candidate := name
		if strings.Contains(token, "/") {
			candidate = path
		}
		if matchToken(token, candidate) {
			return true
		}
	}
	return false
}

func matchToken(token, candidate string) bool {
	matched, err := doublestar.Match(token, candidate)
	return err == nil && matched
}
