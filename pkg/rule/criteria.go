package rule

import "github.com/arthur-debert/srclint/pkg/pattern"

// Criteria is the pattern-based admission filter deciding whether a rule
// applies to a given source file. All four patterns are optional; four unset
// patterns admit every file. Exclusion always wins over inclusion.
type Criteria struct {
	applyToPaths          *pattern.Pattern
	doNotApplyToPaths     *pattern.Pattern
	applyToFileNames      *pattern.Pattern
	doNotApplyToFileNames *pattern.Pattern
}

// NewCriteria compiles the four pattern strings. Empty strings mean "no
// constraint": inclusion patterns default to matching everything, exclusion
// patterns to matching nothing.
func NewCriteria(applyToPaths, doNotApplyToPaths, applyToFileNames, doNotApplyToFileNames string) *Criteria {
	return &Criteria{
		applyToPaths:          pattern.New(applyToPaths, true),
		doNotApplyToPaths:     pattern.New(doNotApplyToPaths, false),
		applyToFileNames:      pattern.New(applyToFileNames, true),
		doNotApplyToFileNames: pattern.New(doNotApplyToFileNames, false),
	}
}

// Matches reports whether a file with the given path and bare name is
// admitted. Path patterns are tested against the path; name patterns are
// tested against the bare name unless a token itself contains a separator.
func (c *Criteria) Matches(path, name string) bool {
	if !c.applyToPaths.Matches(path) {
		return false
	}
	if !c.applyToFileNames.MatchesPathOrName(path, name) {
		return false
	}
	if c.doNotApplyToPaths.Matches(path) {
		return false
	}
	if c.doNotApplyToFileNames.MatchesPathOrName(path, name) {
		return false
	}
	return true
}

// Validate surfaces malformed pattern tokens as configuration errors.
func (c *Criteria) Validate() error {
	for _, p := range []*pattern.Pattern{
		c.applyToPaths, c.doNotApplyToPaths, c.applyToFileNames, c.doNotApplyToFileNames,
	} {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
