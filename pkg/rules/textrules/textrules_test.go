// pkg/rules/textrules/textrules_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the bundled line-oriented rules

package textrules_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/rules/textrules"
	"github.com/arthur-debert/srclint/pkg/source"
)

func apply(t *testing.T, r rule.Rule, text string) []rule.Violation {
	t.Helper()
	violations, err := rule.Apply(r, source.NewTextUnit("test.txt", text), zerolog.Nop())
	require.NoError(t, err)
	return violations
}

func TestLineLengthRule(t *testing.T) {
	r := textrules.NewLineLengthRule()
	r.MaxLength = 10

	violations := apply(t, r, "short\nthis line is too long\nok\n")
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].LineNumber)
	assert.Equal(t, "this line is too long", violations[0].SourceLine)
	assert.Contains(t, violations[0].Message, "maximum is 10")
}

func TestLineLengthRuleCountsRunes(t *testing.T) {
	r := textrules.NewLineLengthRule()
	r.MaxLength = 4

	// Five runes but more than five bytes
	violations := apply(t, r, "ααααα\n")
	require.Len(t, violations, 1)

	assert.Empty(t, apply(t, r, "αααα\n"))
}

func TestLineLengthSetProperty(t *testing.T) {
	r := textrules.NewLineLengthRule()

	require.NoError(t, r.SetProperty("maxLength", "80"))
	assert.Equal(t, 80, r.MaxLength)

	assert.Error(t, r.SetProperty("maxLength", "not-a-number"))
	assert.Error(t, r.SetProperty("maxLength", "0"))
	assert.Error(t, r.SetProperty("unknown", "x"))
}

func TestTrailingWhitespaceRule(t *testing.T) {
	r := textrules.NewTrailingWhitespaceRule()

	violations := apply(t, r, "clean\ntrailing \nalso\t\n")
	require.Len(t, violations, 2)
	assert.Equal(t, 2, violations[0].LineNumber)
	assert.Equal(t, 3, violations[1].LineNumber)
}

func TestNoTabsRule(t *testing.T) {
	r := textrules.NewNoTabsRule()

	violations := apply(t, r, "spaces only\n\tindented with tab\n")
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].LineNumber)
}

func TestFileEndsWithoutNewlineRule(t *testing.T) {
	r := textrules.NewFileEndsWithoutNewlineRule()

	assert.Empty(t, apply(t, r, "ends with newline\n"))
	assert.Empty(t, apply(t, r, ""))

	violations := apply(t, r, "no newline at end")
	require.Len(t, violations, 1)
	assert.Equal(t, 1, violations[0].LineNumber)
}

func TestAllTextRulesAreRegistered(t *testing.T) {
	for _, name := range []string{
		"LineLength", "TrailingWhitespace", "NoTabs", "FileEndsWithoutNewline",
	} {
		assert.True(t, rule.Registered(name), "rule %s should be registered", name)

		r, err := rule.Create(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.Name())
		assert.NoError(t, r.Validate())
		assert.True(t, r.Enabled())
		assert.NotEmpty(t, r.Description())
	}
}
