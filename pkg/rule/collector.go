package rule

import "github.com/arthur-debert/srclint/pkg/source"

// Collector accumulates the violations of one rule application. It is
// created fresh for every (rule, file) pair and must never be shared across
// files.
type Collector struct {
	rule       Rule
	unit       source.Unit
	violations []Violation
}

// NewCollector returns a collector scoped to one rule application.
func NewCollector(r Rule, unit source.Unit) *Collector {
	return &Collector{rule: r, unit: unit}
}

// Add reports a violation at the given 1-based line, capturing the raw
// source line from the unit. Pass line 0 for file-level violations.
func (c *Collector) Add(line int, message string) {
	sourceLine := ""
	if text, ok := c.unit.Line(line); ok {
		sourceLine = text
	}
	c.AddViolation(Violation{
		Rule:       c.rule,
		LineNumber: line,
		SourceLine: sourceLine,
		Message:    message,
	})
}

// AddAtNode reports a violation at a syntax node's location.
func (c *Collector) AddAtNode(node source.Node, message string) {
	c.Add(node.Line(), message)
}

// AddViolation appends a fully built violation. The rule reference is filled
// in when unset.
func (c *Collector) AddViolation(v Violation) {
	if v.Rule == nil {
		v.Rule = c.rule
	}
	c.violations = append(c.violations, v)
}

// Violations returns everything collected so far.
func (c *Collector) Violations() []Violation {
	return c.violations
}
