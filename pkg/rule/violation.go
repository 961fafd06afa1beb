package rule

// Violation is one reported rule infraction. It is immutable once attached
// to a file result; the Rule reference is shared, not owned.
type Violation struct {
	// Rule is the rule that produced this violation.
	Rule Rule
	// LineNumber is the 1-based line of the infraction; 0 when unknown.
	LineNumber int
	// SourceLine is the raw text of the offending line; empty when unknown.
	SourceLine string
	// Message is the human-readable description of the infraction.
	Message string
}
