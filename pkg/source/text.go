package source

import "strings"

// TextUnit is a line-oriented Unit with no syntax tree. It backs the bundled
// text rules and serves as the parse result for any file a language-specific
// parser is not wired for.
type TextUnit struct {
	path  string
	text  string
	lines []string
	phase Phase
}

// NewTextUnit builds a TextUnit from raw source text.
func NewTextUnit(path, text string) *TextUnit {
	return &TextUnit{
		path:  path,
		text:  text,
		lines: splitLines(text),
		phase: PhaseParsed,
	}
}

func (u *TextUnit) Path() string { return u.path }
func (u *TextUnit) Name() string { return Name(u.path) }
func (u *TextUnit) Text() string { return u.text }

func (u *TextUnit) Line(n int) (string, bool) {
	if n < 1 || n > len(u.lines) {
		return "", false
	}
	return u.lines[n-1], true
}

func (u *TextUnit) LineCount() int { return len(u.lines) }
func (u *TextUnit) Phase() Phase   { return u.phase }
func (u *TextUnit) Root() Node     { return nil }

// splitLines splits on \n, tolerating \r\n endings. A trailing newline does
// not produce a phantom empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	trimmed := strings.TrimSuffix(text, "\n")
	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// TextParser is the degenerate Parser producing TextUnits. It never fails.
type TextParser struct{}

func (TextParser) Parse(path string, src []byte) (Unit, error) {
	return NewTextUnit(path, string(src)), nil
}
