package textrules

import (
	"strings"

	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/source"
)

func init() {
	rule.MustRegister("TrailingWhitespace", func() rule.Rule { return NewTrailingWhitespaceRule() })
	rule.MustRegister("NoTabs", func() rule.Rule { return NewNoTabsRule() })
	rule.MustRegister("FileEndsWithoutNewline", func() rule.Rule { return NewFileEndsWithoutNewlineRule() })
}

// TrailingWhitespaceRule reports lines ending in spaces or tabs.
type TrailingWhitespaceRule struct {
	rule.Base
}

func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	r := &TrailingWhitespaceRule{Base: rule.NewBase("TrailingWhitespace", rule.PriorityLow)}
	r.SetDescription("Reports lines that end with spaces or tabs.")
	return r
}

func (r *TrailingWhitespaceRule) Check(unit source.Unit, violations *rule.Collector) error {
	for n := 1; n <= unit.LineCount(); n++ {
		line, _ := unit.Line(n)
		if line != strings.TrimRight(line, " \t") {
			violations.Add(n, "line ends with whitespace")
		}
	}
	return nil
}

// NoTabsRule reports lines containing tab characters.
type NoTabsRule struct {
	rule.Base
}

func NewNoTabsRule() *NoTabsRule {
	r := &NoTabsRule{Base: rule.NewBase("NoTabs", rule.PriorityLow)}
	r.SetDescription("Reports lines that contain tab characters.")
	return r
}

func (r *NoTabsRule) Check(unit source.Unit, violations *rule.Collector) error {
	for n := 1; n <= unit.LineCount(); n++ {
		line, _ := unit.Line(n)
		if strings.Contains(line, "\t") {
			violations.Add(n, "line contains a tab character")
		}
	}
	return nil
}

// FileEndsWithoutNewlineRule reports files whose last line has no trailing
// newline.
type FileEndsWithoutNewlineRule struct {
	rule.Base
}

func NewFileEndsWithoutNewlineRule() *FileEndsWithoutNewlineRule {
	r := &FileEndsWithoutNewlineRule{Base: rule.NewBase("FileEndsWithoutNewline", rule.PriorityMedium)}
	r.SetDescription("Reports files that do not end with a newline character.")
	return r
}

func (r *FileEndsWithoutNewlineRule) Check(unit source.Unit, violations *rule.Collector) error {
	text := unit.Text()
	if text != "" && !strings.HasSuffix(text, "\n") {
		violations.Add(unit.LineCount(), "file does not end with a newline")
	}
	return nil
}
