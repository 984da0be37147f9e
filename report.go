package tokengraph

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleCount is used for per-tier token counts.
	StyleCount = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleWarn is used for warnings.
	StyleWarn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// Reporter writes human-readable generation summaries.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter returns a reporter writing to w. When useColors is false all
// styles render as plain text.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// PrintSummary writes the per-tier counts and any warnings from a
// generation pass.
func (r *Reporter) PrintSummary(result *GenerateResult) {
	fmt.Fprintf(r.w, "%s\n", r.render(StyleHeader, "Token graph generated"))
	fmt.Fprintf(r.w, "  Primitive tokens: %s\n", r.render(StyleCount, fmt.Sprintf("%d", result.PrimitiveCount)))
	fmt.Fprintf(r.w, "  Semantic tokens:  %s\n", r.render(StyleCount, fmt.Sprintf("%d", result.SemanticCount)))
	fmt.Fprintf(r.w, "  Component tokens: %s\n", r.render(StyleCount, fmt.Sprintf("%d", result.ComponentCount)))

	if result.SeededHues > 0 {
		fmt.Fprintf(r.w, "  Hues seeded from stylesheet: %d\n", result.SeededHues)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(r.w, "\n%s\n", r.render(StyleWarn, "Warnings:"))
		for _, w := range result.Warnings {
			fmt.Fprintf(r.w, "  - %s\n", w)
		}
	}
}

func (r *Reporter) render(style lipgloss.Style, text string) string {
	if !r.useColors {
		return text
	}
	return style.Render(text)
}
