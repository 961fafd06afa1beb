// Package rule defines the contract every analysis rule satisfies and the
// execution template that applies a rule to one parsed source file.
//
// A rule carries identity (unique name, priority 1..3), an enablement flag,
// applicability criteria, and optional message/description overrides. New
// rules are added by embedding Base and implementing Check; the core is
// never modified.
package rule

import (
	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/source"
)

// Rule priorities; 1 is the highest.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Rule is the polymorphic unit of analysis. Base implements everything
// except Check, so a concrete rule is Base plus one method.
//
// Configuration (name, priority, patterns, enablement) must be treated as
// read-only during analysis; a rule instance is reused across every file in
// a run and may be shared across concurrently analyzed files.
type Rule interface {
	Name() string
	Priority() int
	Enabled() bool
	Description() string

	// RequiredPhase is the compiler phase the rule needs its source units
	// produced at.
	RequiredPhase() source.Phase

	// Ready lets a rule short-circuit to zero violations when an optional
	// external precondition is unmet. Base returns true.
	Ready() bool

	// Validate reports configuration errors. Base enforces the name and
	// priority invariants.
	Validate() error

	// AppliesTo reports whether this rule's criteria admit the file.
	AppliesTo(path, name string) bool

	// ViolationMessage returns the global message override, when set.
	ViolationMessage() (string, bool)

	// Check is the rule body: inspect the unit and report violations into
	// the call-scoped collector. Returning an error marks this (rule, file)
	// application as failed; it never aborts other rules or files unless
	// the analyzer is configured to fail fast.
	Check(unit source.Unit, violations *Collector) error
}

// Base carries the configurable attributes shared by all rules and
// implements the whole Rule contract except Check. Configure it through the
// setters, then freeze the owning rule set before analysis begins.
type Base struct {
	name                  string
	priority              int
	enabled               bool
	description           string
	requiredPhase         source.Phase
	applyToPaths          string
	doNotApplyToPaths     string
	applyToFileNames      string
	doNotApplyToFileNames string
	violationMessage      string
	hasViolationMessage   bool

	criteria *Criteria // compiled lazily, reset by pattern setters
}

// NewBase returns a Base with the given identity, enabled, at the default
// parse phase.
func NewBase(name string, priority int) Base {
	return Base{
		name:          name,
		priority:      priority,
		enabled:       true,
		requiredPhase: source.PhaseParsed,
	}
}

func (b *Base) Name() string                { return b.name }
func (b *Base) Priority() int               { return b.priority }
func (b *Base) Enabled() bool               { return b.enabled }
func (b *Base) Description() string         { return b.description }
func (b *Base) RequiredPhase() source.Phase { return b.requiredPhase }
func (b *Base) Ready() bool                 { return true }

func (b *Base) SetName(name string)     { b.name = name }
func (b *Base) SetPriority(p int)       { b.priority = p }
func (b *Base) SetEnabled(on bool)      { b.enabled = on }
func (b *Base) SetDescription(d string) { b.description = d }

func (b *Base) SetRequiredPhase(p source.Phase) { b.requiredPhase = p }

func (b *Base) SetApplyToPaths(spec string) {
	b.applyToPaths = spec
	b.criteria = nil
}

func (b *Base) SetDoNotApplyToPaths(spec string) {
	b.doNotApplyToPaths = spec
	b.criteria = nil
}

func (b *Base) SetApplyToFileNames(spec string) {
	b.applyToFileNames = spec
	b.criteria = nil
}

func (b *Base) SetDoNotApplyToFileNames(spec string) {
	b.doNotApplyToFileNames = spec
	b.criteria = nil
}

// SetViolationMessage installs a global message override. Every violation
// the rule produces gets this message, replacing per-instance messages.
// Setting an empty string hides messages entirely.
func (b *Base) SetViolationMessage(message string) {
	b.violationMessage = message
	b.hasViolationMessage = true
}

func (b *Base) ViolationMessage() (string, bool) {
	return b.violationMessage, b.hasViolationMessage
}

// Validate enforces the identity invariants: name set, priority in 1..3.
func (b *Base) Validate() error {
	if b.name == "" {
		return errors.New(errors.ErrRuleInvalid, "rule name must be set before use")
	}
	if b.priority < PriorityHigh || b.priority > PriorityLow {
		return errors.Newf(errors.ErrRuleInvalid,
			"rule %s has priority %d, must be between %d and %d",
			b.name, b.priority, PriorityHigh, PriorityLow)
	}
	return b.Criteria().Validate()
}

// Criteria returns the compiled applicability criteria.
func (b *Base) Criteria() *Criteria {
	if b.criteria == nil {
		b.criteria = NewCriteria(
			b.applyToPaths, b.doNotApplyToPaths,
			b.applyToFileNames, b.doNotApplyToFileNames)
	}
	return b.criteria
}

func (b *Base) AppliesTo(path, name string) bool {
	return b.Criteria().Matches(path, name)
}
