package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Semantic styles with adaptive colors for light and dark terminals.
var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	stylePath   = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
	styleHigh = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "196"})
	styleMedium = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
	styleLow = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "44"})
	styleFailed = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	styleSource = lipgloss.NewStyle().Faint(true)
	styleClean  = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "40"})
)

// TextRenderer writes a styled, human-oriented report. Styling is dropped
// when the output is not a terminal or NO_COLOR is set.
type TextRenderer struct {
	// NoColor forces plain output regardless of terminal detection.
	NoColor bool
}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(w io.Writer, doc *Document) error {
	style := r.styler(w)

	fmt.Fprintln(w, style(styleHeader, fmt.Sprintf("srclint: %s", doc.Root)))
	fmt.Fprintln(w)

	for _, entry := range doc.Entries {
		fmt.Fprintln(w, style(stylePath, entry.Path))
		if !entry.Parsed {
			fmt.Fprintf(w, "  %s\n", style(styleFailed, "could not be analyzed"))
		}
		for _, v := range entry.Violations {
			name := style(r.priorityStyle(v.Priority), fmt.Sprintf("%s (P%d)", v.Rule, v.Priority))
			if v.Line > 0 {
				fmt.Fprintf(w, "  %s line %d", name, v.Line)
			} else {
				fmt.Fprintf(w, "  %s", name)
			}
			if v.Message != "" {
				fmt.Fprintf(w, ": %s", v.Message)
			}
			fmt.Fprintln(w)
			if v.Source != "" {
				fmt.Fprintf(w, "      %s\n", style(styleSource, v.Source))
			}
		}
		fmt.Fprintln(w)
	}

	summary := fmt.Sprintf("%d file(s) analyzed, %d violation(s) (P1: %d, P2: %d, P3: %d)",
		doc.Files, doc.Violations, doc.HighPriority, doc.MediumPriority, doc.LowPriority)
	if doc.Violations == 0 && len(doc.Entries) == 0 {
		fmt.Fprintln(w, style(styleClean, summary))
	} else {
		fmt.Fprintln(w, style(styleHeader, summary))
	}
	return nil
}

func (r *TextRenderer) priorityStyle(priority int) lipgloss.Style {
	switch priority {
	case 1:
		return styleHigh
	case 2:
		return styleMedium
	default:
		return styleLow
	}
}

// styler returns a render function that applies styles only when the writer
// is a color-capable terminal.
func (r *TextRenderer) styler(w io.Writer) func(lipgloss.Style, string) string {
	if r.NoColor || os.Getenv("NO_COLOR") != "" || !writerIsTerminal(w) {
		return func(_ lipgloss.Style, s string) string { return s }
	}
	return func(style lipgloss.Style, s string) string { return style.Render(s) }
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
