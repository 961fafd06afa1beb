package textrules

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/source"
)

// DefaultMaxLineLength is the line length limit when none is configured.
const DefaultMaxLineLength = 120

func init() {
	rule.MustRegister("LineLength", func() rule.Rule { return NewLineLengthRule() })
}

// LineLengthRule reports lines longer than a configurable maximum.
type LineLengthRule struct {
	rule.Base
	MaxLength int
}

func NewLineLengthRule() *LineLengthRule {
	r := &LineLengthRule{
		Base:      rule.NewBase("LineLength", rule.PriorityLow),
		MaxLength: DefaultMaxLineLength,
	}
	r.SetDescription("Reports lines longer than the configured maximum length.")
	return r
}

func (r *LineLengthRule) Check(unit source.Unit, violations *rule.Collector) error {
	for n := 1; n <= unit.LineCount(); n++ {
		line, _ := unit.Line(n)
		if length := utf8.RuneCountInString(line); length > r.MaxLength {
			violations.Add(n, fmt.Sprintf("line is %d characters long, maximum is %d", length, r.MaxLength))
		}
	}
	return nil
}

// SetProperty accepts the maxLength configuration property.
func (r *LineLengthRule) SetProperty(name, value string) error {
	switch name {
	case "maxLength":
		max, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigInvalid, "maxLength %q is not an integer", value)
		}
		if max < 1 {
			return errors.Newf(errors.ErrConfigInvalid, "maxLength must be positive, got %d", max)
		}
		r.MaxLength = max
		return nil
	default:
		return errors.Newf(errors.ErrConfigInvalid, "unknown property %q", name)
	}
}
