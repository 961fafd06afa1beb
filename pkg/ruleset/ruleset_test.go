// pkg/ruleset/ruleset_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Registered textrules
// PURPOSE: Test rule set assembly, freezing, and the XML ruleset loader

package ruleset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/rules/textrules"
	"github.com/arthur-debert/srclint/pkg/ruleset"
)

func TestFreezeValidatesAndLocks(t *testing.T) {
	rs := ruleset.New(textrules.NewLineLengthRule())
	require.NoError(t, rs.Freeze())
	assert.True(t, rs.Frozen())

	err := rs.Add(textrules.NewNoTabsRule())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSetFrozen))

	// Freeze is idempotent
	require.NoError(t, rs.Freeze())
}

func TestFreezeRejectsInvalidRule(t *testing.T) {
	bad := textrules.NewLineLengthRule()
	bad.SetPriority(9)

	rs := ruleset.New(bad)
	err := rs.Freeze()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
	assert.False(t, rs.Frozen(), "a failed freeze leaves the set mutable")
}

func TestFreezeRejectsDuplicateNames(t *testing.T) {
	rs := ruleset.New(textrules.NewNoTabsRule(), textrules.NewNoTabsRule())
	err := rs.Freeze()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestFromRegistry(t *testing.T) {
	rs, err := ruleset.FromRegistry("NoTabs", "LineLength")
	require.NoError(t, err)
	require.Equal(t, 2, rs.Len())

	// Iteration order follows the requested name order
	assert.Equal(t, "NoTabs", rs.Rules()[0].Name())
	assert.Equal(t, "LineLength", rs.Rules()[1].Name())

	_, err = ruleset.FromRegistry("NoSuchRule")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleNotFound))
}

func TestLoadXML(t *testing.T) {
	doc := `<ruleset>
    <rule name="LineLength" priority="1">
        <property name="maxLength" value="80"/>
        <property name="applyToFileNames" value="*.groovy"/>
    </rule>
    <rule name="NoTabs" enabled="false"/>
    <rule name="TrailingWhitespace">
        <property name="violationMessage" value="trailing whitespace is banned"/>
    </rule>
</ruleset>`

	rs, err := ruleset.LoadXML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())

	lineLength := rs.Get("LineLength").(*textrules.LineLengthRule)
	assert.Equal(t, rule.PriorityHigh, lineLength.Priority())
	assert.Equal(t, 80, lineLength.MaxLength)
	assert.True(t, lineLength.AppliesTo("src/Foo.groovy", "Foo.groovy"))
	assert.False(t, lineLength.AppliesTo("src/main.go", "main.go"))

	assert.False(t, rs.Get("NoTabs").Enabled())

	message, ok := rs.Get("TrailingWhitespace").ViolationMessage()
	assert.True(t, ok)
	assert.Equal(t, "trailing whitespace is banned", message)

	require.NoError(t, rs.Freeze())
}

func TestLoadXMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
	}{
		{"malformed_xml", "<ruleset><rule", errors.ErrRuleSetLoad},
		{"wrong_root", "<rules/>", errors.ErrRuleSetLoad},
		{"missing_rule_name", `<ruleset><rule/></ruleset>`, errors.ErrRuleSetLoad},
		{"unknown_rule", `<ruleset><rule name="Bogus"/></ruleset>`, errors.ErrRuleNotFound},
		{
			"unknown_property",
			`<ruleset><rule name="NoTabs"><property name="bogus" value="1"/></rule></ruleset>`,
			errors.ErrRuleSetLoad,
		},
		{
			"bad_priority",
			`<ruleset><rule name="NoTabs" priority="high"/></ruleset>`,
			errors.ErrRuleSetLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ruleset.LoadXML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}
