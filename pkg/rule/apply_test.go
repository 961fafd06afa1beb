// pkg/rule/apply_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the rule execution template: phase checking, readiness,
// validation, enablement, message override, and failure reporting

package rule_test

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/source"
)

// stubRule is a configurable rule for exercising the template.
type stubRule struct {
	rule.Base
	ready bool
	check func(unit source.Unit, c *rule.Collector) error
}

func newStubRule(name string, check func(source.Unit, *rule.Collector) error) *stubRule {
	return &stubRule{
		Base:  rule.NewBase(name, rule.PriorityMedium),
		ready: true,
		check: check,
	}
}

func (r *stubRule) Ready() bool { return r.ready }

func (r *stubRule) Check(unit source.Unit, c *rule.Collector) error {
	if r.check == nil {
		return nil
	}
	return r.check(unit, c)
}

func unit(path, text string) source.Unit {
	return source.NewTextUnit(path, text)
}

func TestApplyCollectsViolations(t *testing.T) {
	r := newStubRule("TwoHits", func(u source.Unit, c *rule.Collector) error {
		c.Add(1, "first")
		c.Add(2, "second")
		return nil
	})

	violations, err := rule.Apply(r, unit("a.txt", "line one\nline two\n"), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, violations, 2)

	assert.Equal(t, 1, violations[0].LineNumber)
	assert.Equal(t, "line one", violations[0].SourceLine)
	assert.Equal(t, "first", violations[0].Message)
	assert.Same(t, rule.Rule(r), violations[0].Rule)
}

func TestApplyPhaseMismatchIsFatal(t *testing.T) {
	r := newStubRule("NeedsTypes", nil)
	r.SetRequiredPhase(source.PhaseTypeChecked)

	_, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPhaseMismatch))
}

func TestApplyNotReadyProducesNothing(t *testing.T) {
	called := false
	r := newStubRule("NotReady", func(u source.Unit, c *rule.Collector) error {
		called = true
		return nil
	})
	r.ready = false

	violations, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.False(t, called, "rule body must not run when not ready")
}

func TestApplyValidationFailureIsFatal(t *testing.T) {
	r := newStubRule("", nil) // missing name

	_, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
}

func TestApplyDisabledRuleSkipsSilently(t *testing.T) {
	called := false
	r := newStubRule("Disabled", func(u source.Unit, c *rule.Collector) error {
		called = true
		return nil
	})
	r.SetEnabled(false)

	violations, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.False(t, called)
}

func TestApplyCriteriaSkipIsSilent(t *testing.T) {
	r := newStubRule("OnlyGroovy", func(u source.Unit, c *rule.Collector) error {
		c.Add(0, "hit")
		return nil
	})
	r.SetApplyToFileNames("*.groovy")

	violations, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, violations)

	violations, err = rule.Apply(r, unit("Foo.groovy", "x"), zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, violations, 1)
}

func TestApplyMessageOverrideIsUniform(t *testing.T) {
	r := newStubRule("Override", func(u source.Unit, c *rule.Collector) error {
		c.Add(1, "distinct message one")
		c.Add(2, "distinct message two")
		return nil
	})
	r.SetViolationMessage("X")

	violations, err := rule.Apply(r, unit("a.txt", "one\ntwo\n"), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, violations, 2)
	for _, v := range violations {
		assert.Equal(t, "X", v.Message)
	}
}

func TestApplyEmptyOverrideHidesMessages(t *testing.T) {
	r := newStubRule("Hide", func(u source.Unit, c *rule.Collector) error {
		c.Add(1, "something")
		return nil
	})
	r.SetViolationMessage("")

	violations, err := rule.Apply(r, unit("a.txt", "one\n"), zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "", violations[0].Message)
}

func TestApplyCheckErrorIsWrapped(t *testing.T) {
	r := newStubRule("Broken", func(u source.Unit, c *rule.Collector) error {
		return fmt.Errorf("internal bug")
	})

	_, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleExecution))
	assert.Contains(t, err.Error(), "Broken")
	assert.Contains(t, err.Error(), "a.txt")
}

func TestApplyRecoversPanics(t *testing.T) {
	r := newStubRule("Panics", func(u source.Unit, c *rule.Collector) error {
		panic("boom")
	})

	violations, err := rule.Apply(r, unit("a.txt", "x"), zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, violations)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleExecution))
}

func TestBaseValidate(t *testing.T) {
	tests := []struct {
		name     string
		ruleName string
		priority int
		wantErr  bool
	}{
		{"valid", "Ok", 2, false},
		{"missing_name", "", 2, true},
		{"priority_too_low", "Low", 0, true},
		{"priority_too_high", "High", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := rule.NewBase(tt.ruleName, tt.priority)
			err := b.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
