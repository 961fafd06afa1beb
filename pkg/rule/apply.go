package rule

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/source"
)

// Apply runs the rule execution template against one parsed source file:
//
//  1. verify the unit's compiler phase matches what the rule requires
//  2. short-circuit to zero violations when the rule is not Ready
//  3. surface Validate failures as fatal configuration errors
//  4. silently skip when the rule is disabled or the file fails its criteria
//  5. run the rule body into a fresh call-local collector
//  6. apply the global message override uniformly, when configured
//
// Any failure is logged with the rule name and file path, then returned.
// Isolating a failed (rule, file) pair from the rest of the run is the
// analyzer's job, not Apply's.
func Apply(r Rule, unit source.Unit, logger zerolog.Logger) (violations []Violation, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Newf(errors.ErrRuleExecution,
				"rule %s panicked on %s: %v", r.Name(), unit.Path(), recovered)
			violations = nil
		}
		if err != nil {
			logger.Error().
				Err(err).
				Str("rule", r.Name()).
				Str("path", unit.Path()).
				Msg("Rule application failed")
		}
	}()

	if unit.Phase() != r.RequiredPhase() {
		return nil, errors.Newf(errors.ErrPhaseMismatch,
			"rule %s requires source at phase %d, got phase %d for %s",
			r.Name(), r.RequiredPhase(), unit.Phase(), unit.Path())
	}

	if !r.Ready() {
		return nil, nil
	}

	if validateErr := r.Validate(); validateErr != nil {
		return nil, errors.Wrapf(validateErr, errors.ErrRuleInvalid,
			"rule %s failed validation", r.Name())
	}

	if !r.Enabled() || !r.AppliesTo(unit.Path(), unit.Name()) {
		return nil, nil
	}

	collector := NewCollector(r, unit)
	if checkErr := r.Check(unit, collector); checkErr != nil {
		return nil, errors.Wrapf(checkErr, errors.ErrRuleExecution,
			"rule %s failed on %s", r.Name(), unit.Path())
	}

	violations = collector.Violations()
	if message, ok := r.ViolationMessage(); ok {
		for i := range violations {
			violations[i].Message = message
		}
	}
	return violations, nil
}

// String-ish identity used in log and report output.
func Describe(r Rule) string {
	return fmt.Sprintf("%s[priority=%d]", r.Name(), r.Priority())
}
