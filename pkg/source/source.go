// Package source defines the boundary to the external language parser: the
// parsed representation of one source file that rules are applied to. The
// analyzer never builds syntax trees itself; it hands file contents to a
// Parser and passes the resulting Unit to each rule.
package source

import "path/filepath"

// Phase tags how far the external compiler front end processed a Unit.
// Rules declare the phase they require; handing a rule a Unit from a
// different phase is a wiring bug, not a source-code defect.
type Phase int

const (
	// PhaseParsed is the default phase: a syntax tree with no name
	// resolution applied.
	PhaseParsed Phase = iota + 1
	// PhaseResolved has imports and identifiers resolved.
	PhaseResolved
	// PhaseTypeChecked carries full type information.
	PhaseTypeChecked
)

// Node is one node of the external syntax tree. Line and Column are 1-based;
// zero means unknown.
type Node interface {
	Line() int
	Column() int
}

// Unit is one parsed source file.
type Unit interface {
	// Path returns the path of the file, relative to the analysis root.
	Path() string
	// Name returns the bare file name.
	Name() string
	// Text returns the full source text.
	Text() string
	// Line returns the raw text of the given 1-based line. ok is false
	// when the line number is out of range.
	Line(n int) (line string, ok bool)
	// LineCount returns the number of lines in the file.
	LineCount() int
	// Phase reports the compiler phase this unit was produced at.
	Phase() Phase
	// Root returns the root syntax node, or nil when the parser does not
	// produce a tree (line-oriented analysis only).
	Root() Node
}

// Parser produces a Unit from raw file contents. Implementations are
// external; TextParser in this package is the degenerate line-oriented one.
type Parser interface {
	Parse(path string, src []byte) (Unit, error)
}

// Name returns the bare file name for a source path.
func Name(path string) string {
	return filepath.Base(path)
}
