// Package testutil provides in-memory fixtures for analyzer and rule tests:
// a populated afero memory filesystem and scripted parser/rule collaborators.
package testutil

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/source"
)

// NewMemFS builds an in-memory filesystem from a path -> content map,
// creating parent directories as needed.
func NewMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
	return fs
}

// ErrorParser parses like source.TextParser except for the listed paths,
// which fail with a parse error.
type ErrorParser struct {
	FailPaths map[string]bool
}

func (p *ErrorParser) Parse(path string, src []byte) (source.Unit, error) {
	if p.FailPaths[path] {
		return nil, fmt.Errorf("scripted parse failure for %s", path)
	}
	return source.NewTextUnit(path, string(src)), nil
}

// ScriptedRule is a rule whose body is supplied by the test.
type ScriptedRule struct {
	rule.Base
	IsReady bool
	Body    func(unit source.Unit, violations *rule.Collector) error
}

// NewScriptedRule returns an enabled medium-priority rule running the given
// body. A nil body produces no violations.
func NewScriptedRule(name string, body func(source.Unit, *rule.Collector) error) *ScriptedRule {
	return &ScriptedRule{
		Base:    rule.NewBase(name, rule.PriorityMedium),
		IsReady: true,
		Body:    body,
	}
}

// NewViolationAtLine returns a rule that reports one violation at the given
// line of every file it applies to.
func NewViolationAtLine(name string, line int, message string) *ScriptedRule {
	return NewScriptedRule(name, func(unit source.Unit, violations *rule.Collector) error {
		violations.Add(line, message)
		return nil
	})
}

func (r *ScriptedRule) Ready() bool { return r.IsReady }

func (r *ScriptedRule) Check(unit source.Unit, violations *rule.Collector) error {
	if r.Body == nil {
		return nil
	}
	return r.Body(unit, violations)
}
