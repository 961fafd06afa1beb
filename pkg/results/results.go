// Package results holds the hierarchical aggregation of per-file violations.
// The tree mirrors the analyzed directory structure: FileResult leaves under
// DirectoryResult nodes, with directories containing no analyzed files
// pruned by the analyzer. Aggregate queries recompute by recursive summation
// so they stay correct as children are attached.
package results

import "github.com/arthur-debert/srclint/pkg/rule"

// Result is one node of the results tree, queryable for summarized counts
// at or below it.
type Result interface {
	// Path is the node's path relative to the analysis root.
	Path() string
	// NumberOfFiles returns the count of analyzed files at or below this
	// node. Files whose parse failed count as analyzed.
	NumberOfFiles() int
	// NumberOfViolations returns the total violation count at or below
	// this node.
	NumberOfViolations() int
	// ViolationsWithPriority returns all violations of the given priority
	// at or below this node, in traversal order.
	ViolationsWithPriority(priority int) []rule.Violation
}

// FileResult is the leaf node: one analyzed file and its violations.
type FileResult struct {
	path       string
	violations []rule.Violation
	parsed     bool
}

// NewFileResult builds the result of one successfully parsed file.
func NewFileResult(path string, violations []rule.Violation) *FileResult {
	return &FileResult{path: path, violations: violations, parsed: true}
}

// NewFailedFileResult records a file that was admitted for analysis but
// could not be parsed. It contributes zero violations and still counts as
// an analyzed file for pruning purposes.
func NewFailedFileResult(path string) *FileResult {
	return &FileResult{path: path}
}

func (f *FileResult) Path() string { return f.path }

// Parsed reports whether the external parser produced a usable unit.
func (f *FileResult) Parsed() bool { return f.parsed }

// Violations returns the ordered violations recorded for this file.
func (f *FileResult) Violations() []rule.Violation { return f.violations }

func (f *FileResult) NumberOfFiles() int { return 1 }

func (f *FileResult) NumberOfViolations() int { return len(f.violations) }

func (f *FileResult) ViolationsWithPriority(priority int) []rule.Violation {
	var matched []rule.Violation
	for _, v := range f.violations {
		if v.Rule != nil && v.Rule.Priority() == priority {
			matched = append(matched, v)
		}
	}
	return matched
}

// DirectoryResult is an internal node aggregating its children bottom-up.
type DirectoryResult struct {
	path     string
	children []Result
	numFiles int
}

// NewDirectoryResult builds an empty directory node.
func NewDirectoryResult(path string) *DirectoryResult {
	return &DirectoryResult{path: path}
}

func (d *DirectoryResult) Path() string { return d.path }

// AddChild attaches a finished child node. Attach subdirectory results only
// after they are fully assembled, and only when they contain at least one
// analyzed file; the analyzer prunes empty subtrees before attaching.
func (d *DirectoryResult) AddChild(child Result) {
	d.children = append(d.children, child)
	if _, isFile := child.(*FileResult); isFile {
		d.numFiles++
	}
}

// Children returns the ordered child nodes.
func (d *DirectoryResult) Children() []Result { return d.children }

// NumberOfFilesInThisDirectory returns the count of files analyzed directly
// in this directory, excluding subdirectories.
func (d *DirectoryResult) NumberOfFilesInThisDirectory() int { return d.numFiles }

func (d *DirectoryResult) NumberOfFiles() int {
	total := 0
	for _, child := range d.children {
		total += child.NumberOfFiles()
	}
	return total
}

func (d *DirectoryResult) NumberOfViolations() int {
	total := 0
	for _, child := range d.children {
		total += child.NumberOfViolations()
	}
	return total
}

func (d *DirectoryResult) ViolationsWithPriority(priority int) []rule.Violation {
	var matched []rule.Violation
	for _, child := range d.children {
		matched = append(matched, child.ViolationsWithPriority(priority)...)
	}
	return matched
}

// Walk visits every node in the tree depth-first, parents before children.
// Renderers use Walk to traverse the tree read-only.
func Walk(root Result, visit func(Result)) {
	visit(root)
	if dir, ok := root.(*DirectoryResult); ok {
		for _, child := range dir.children {
			Walk(child, visit)
		}
	}
}
