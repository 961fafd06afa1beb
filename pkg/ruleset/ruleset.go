// Package ruleset assembles ordered collections of configured rules and
// makes them effectively immutable before analysis begins, so concurrently
// analyzed files can never observe half-configured rules.
package ruleset

import (
	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/rule"
)

// RuleSet is an ordered, named collection of configured rules. Configure
// rules, Add them, then Freeze the set before handing it to the analyzer.
type RuleSet struct {
	rules  []rule.Rule
	frozen bool
}

// New builds a rule set from the given rules, in order.
func New(rules ...rule.Rule) *RuleSet {
	return &RuleSet{rules: rules}
}

// FromRegistry builds a rule set from registered rule factories, in the
// given name order.
func FromRegistry(names ...string) (*RuleSet, error) {
	rs := New()
	for _, name := range names {
		r, err := rule.Create(name)
		if err != nil {
			return nil, err
		}
		rs.rules = append(rs.rules, r)
	}
	return rs, nil
}

// AllRegistered builds a rule set containing every registered rule, in
// sorted name order.
func AllRegistered() (*RuleSet, error) {
	return FromRegistry(rule.Names()...)
}

// Add appends a rule. Adding to a frozen set is an error.
func (rs *RuleSet) Add(r rule.Rule) error {
	if rs.frozen {
		return errors.New(errors.ErrRuleSetFrozen, "cannot add rules to a frozen rule set")
	}
	rs.rules = append(rs.rules, r)
	return nil
}

// Freeze validates every rule and marks the set immutable. Validation
// failures are configuration errors; the set stays mutable when Freeze
// fails. Freeze is idempotent.
func (rs *RuleSet) Freeze() error {
	if rs.frozen {
		return nil
	}

	seen := make(map[string]bool, len(rs.rules))
	for _, r := range rs.rules {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.Name()] {
			return errors.Newf(errors.ErrConfigInvalid, "duplicate rule name %q in rule set", r.Name())
		}
		seen[r.Name()] = true
	}

	rs.frozen = true
	return nil
}

// Frozen reports whether the set has been frozen.
func (rs *RuleSet) Frozen() bool { return rs.frozen }

// Rules returns the rules in iteration order. Callers must treat the slice
// and the rules as read-only once the set is frozen.
func (rs *RuleSet) Rules() []rule.Rule { return rs.rules }

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Get returns the rule with the given name, or nil.
func (rs *RuleSet) Get(name string) rule.Rule {
	for _, r := range rs.rules {
		if r.Name() == name {
			return r
		}
	}
	return nil
}
