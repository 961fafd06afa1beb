// pkg/results/results_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test results tree aggregation queries

package results_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/srclint/pkg/results"
	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/source"
)

type countRule struct {
	rule.Base
}

func (r *countRule) Check(unit source.Unit, c *rule.Collector) error { return nil }

func newCountRule(name string, priority int) *countRule {
	return &countRule{Base: rule.NewBase(name, priority)}
}

func violation(r rule.Rule, line int, msg string) rule.Violation {
	return rule.Violation{Rule: r, LineNumber: line, Message: msg}
}

func TestFileResultQueries(t *testing.T) {
	high := newCountRule("High", rule.PriorityHigh)
	low := newCountRule("Low", rule.PriorityLow)

	f := results.NewFileResult("src/Foo.groovy", []rule.Violation{
		violation(high, 3, "bad"),
		violation(low, 7, "meh"),
		violation(high, 9, "worse"),
	})

	assert.Equal(t, 1, f.NumberOfFiles())
	assert.Equal(t, 3, f.NumberOfViolations())
	assert.Len(t, f.ViolationsWithPriority(rule.PriorityHigh), 2)
	assert.Len(t, f.ViolationsWithPriority(rule.PriorityMedium), 0)
	assert.True(t, f.Parsed())
}

func TestFailedFileResultCountsAsAnalyzed(t *testing.T) {
	f := results.NewFailedFileResult("src/Broken.groovy")

	assert.False(t, f.Parsed())
	assert.Equal(t, 1, f.NumberOfFiles())
	assert.Equal(t, 0, f.NumberOfViolations())
}

func TestDirectoryResultAggregation(t *testing.T) {
	r := newCountRule("R", rule.PriorityMedium)

	sub := results.NewDirectoryResult("src/sub")
	sub.AddChild(results.NewFileResult("src/sub/Bar.groovy", nil))

	root := results.NewDirectoryResult("src")
	root.AddChild(results.NewFileResult("src/Foo.groovy", []rule.Violation{
		violation(r, 3, "hit"),
	}))
	root.AddChild(sub)

	assert.Equal(t, 2, root.NumberOfFiles())
	assert.Equal(t, 1, root.NumberOfFilesInThisDirectory())
	assert.Equal(t, 1, root.NumberOfViolations())
	assert.Len(t, root.ViolationsWithPriority(rule.PriorityMedium), 1)
	assert.Len(t, root.Children(), 2)
}

func TestAggregatesStayCorrectAcrossAdditions(t *testing.T) {
	r := newCountRule("R", rule.PriorityHigh)
	root := results.NewDirectoryResult(".")

	assert.Equal(t, 0, root.NumberOfFiles())

	root.AddChild(results.NewFileResult("a.txt", []rule.Violation{violation(r, 1, "x")}))
	assert.Equal(t, 1, root.NumberOfFiles())
	assert.Equal(t, 1, root.NumberOfViolations())

	root.AddChild(results.NewFileResult("b.txt", []rule.Violation{violation(r, 1, "y")}))
	assert.Equal(t, 2, root.NumberOfFiles())
	assert.Equal(t, 2, root.NumberOfViolations())
}

func TestWalkVisitsParentsBeforeChildren(t *testing.T) {
	sub := results.NewDirectoryResult("src/sub")
	sub.AddChild(results.NewFileResult("src/sub/Bar.groovy", nil))

	root := results.NewDirectoryResult("src")
	root.AddChild(sub)

	var order []string
	results.Walk(root, func(node results.Result) {
		order = append(order, node.Path())
	})

	assert.Equal(t, []string{"src", "src/sub", "src/sub/Bar.groovy"}, order)
}
