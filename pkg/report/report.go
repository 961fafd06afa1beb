// Package report renders an analysis results tree for human or machine
// consumption. All renderers consume the tree read-only through a flattened
// document model, so every format reports identical numbers.
package report

import (
	"io"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/results"
	"github.com/arthur-debert/srclint/pkg/rule"
)

// Renderer writes one report format.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
}

// New returns the renderer for the given format name.
func New(format string) (Renderer, error) {
	switch format {
	case "text":
		return NewTextRenderer(), nil
	case "json":
		return JSONRenderer{}, nil
	case "yaml":
		return YAMLRenderer{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown report format %q", format)
	}
}

// Document is the flattened, format-independent view of a results tree.
type Document struct {
	Root           string      `json:"root" yaml:"root"`
	Files          int         `json:"files" yaml:"files"`
	Violations     int         `json:"violations" yaml:"violations"`
	HighPriority   int         `json:"highPriority" yaml:"highPriority"`
	MediumPriority int         `json:"mediumPriority" yaml:"mediumPriority"`
	LowPriority    int         `json:"lowPriority" yaml:"lowPriority"`
	Entries        []FileEntry `json:"entries" yaml:"entries"`
}

// FileEntry reports one analyzed file that either failed to parse or has
// violations. Clean files contribute to the counts only.
type FileEntry struct {
	Path       string           `json:"path" yaml:"path"`
	Parsed     bool             `json:"parsed" yaml:"parsed"`
	Violations []ViolationEntry `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// ViolationEntry is one rule violation in report form.
type ViolationEntry struct {
	Rule     string `json:"rule" yaml:"rule"`
	Priority int    `json:"priority" yaml:"priority"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Build flattens a results tree into a document. Files are visited in tree
// order, so the document is deterministic for a given tree.
func Build(root string, tree *results.DirectoryResult) *Document {
	doc := &Document{
		Root:           root,
		Files:          tree.NumberOfFiles(),
		Violations:     tree.NumberOfViolations(),
		HighPriority:   len(tree.ViolationsWithPriority(rule.PriorityHigh)),
		MediumPriority: len(tree.ViolationsWithPriority(rule.PriorityMedium)),
		LowPriority:    len(tree.ViolationsWithPriority(rule.PriorityLow)),
	}

	results.Walk(tree, func(node results.Result) {
		file, ok := node.(*results.FileResult)
		if !ok {
			return
		}
		if file.Parsed() && len(file.Violations()) == 0 {
			return
		}
		entry := FileEntry{Path: file.Path(), Parsed: file.Parsed()}
		for _, v := range file.Violations() {
			entry.Violations = append(entry.Violations, ViolationEntry{
				Rule:     v.Rule.Name(),
				Priority: v.Rule.Priority(),
				Line:     v.LineNumber,
				Source:   v.SourceLine,
				Message:  v.Message,
			})
		}
		doc.Entries = append(doc.Entries, entry)
	})

	return doc
}
