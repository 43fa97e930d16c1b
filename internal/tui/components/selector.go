package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Selector is a single-choice input cycled with left/right keys,
// the terminal equivalent of a dropdown.
type Selector struct {
	label    string
	options  []string
	selected int
	focused  bool
}

// NewSelector creates a selector with the given options.
func NewSelector(label string, options []string) *Selector {
	return &Selector{
		label:   label,
		options: options,
	}
}

// SetSelected sets the selected index if in range.
func (s *Selector) SetSelected(idx int) *Selector {
	if idx >= 0 && idx < len(s.options) {
		s.selected = idx
	}
	return s
}

// Focus sets the focus state.
func (s *Selector) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Selector) IsFocused() bool {
	return s.focused
}

// Value returns the selected option text.
func (s *Selector) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected]
	}
	return ""
}

// SelectedIndex returns the selected index.
func (s *Selector) SelectedIndex() int {
	return s.selected
}

// HandleKey handles a key press while focused.
func (s *Selector) HandleKey(key string) {
	if !s.focused {
		return
	}

	switch key {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < len(s.options)-1 {
			s.selected++
		}
	}
}

// Render renders the selector with the chosen option highlighted.
func (s *Selector) Render() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#AA7700")).Width(22)
	selStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000")).Bold(true)
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")).Bold(true)

	var b strings.Builder
	b.WriteString(labelStyle.Render(s.label + ":"))
	b.WriteString(" ")

	if s.focused {
		b.WriteString(focusStyle.Render("◂ " + s.Value() + " ▸"))
	} else {
		b.WriteString(selStyle.Render("  " + s.Value()))
	}

	return b.String()
}
