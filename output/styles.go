// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

func (s *Styles) color(text, ansi string) termenv.Style {
	return s.output.String(text).Foreground(s.output.Color(ansi))
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.color(text, "2").Bold().String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.color(text, "1").Bold().String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.color(text, "3").Bold().String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.color(text, "6").String()
}

// Category returns a styled expense category (yellow).
func (s *Styles) Category(text string) string {
	return s.color(text, "3").String()
}

// Date returns a styled date heading (blue).
func (s *Styles) Date(text string) string {
	return s.color(text, "4").String()
}

// Amount returns a styled amount (magenta).
func (s *Styles) Amount(text string) string {
	return s.color(text, "5").String()
}

// Balance colors text by the sign of value: red when overspent, green otherwise.
func (s *Styles) Balance(text string, value decimal.Decimal) string {
	if value.IsNegative() {
		return s.Error(text)
	}
	return s.Success(text)
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// Timing returns a timing string, red when slow and dimmed otherwise.
func (s *Styles) Timing(text string, slow bool) string {
	if slow {
		return s.color(text, "1").String()
	}
	return s.Dim(text)
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
