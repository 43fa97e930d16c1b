// Package components provides reusable TUI input components.
package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stepper is a bounded numeric input adjusted in fixed increments,
// the terminal equivalent of a slider or number spinner.
type Stepper struct {
	label   string
	value   float64
	min     float64
	max     float64
	step    float64
	format  string
	focused bool
}

// NewStepper creates a stepper with the given label, bounds and step size.
func NewStepper(label string, min, max, step float64) *Stepper {
	return &Stepper{
		label:  label,
		value:  min,
		min:    min,
		max:    max,
		step:   step,
		format: "%.2f",
	}
}

// SetValue sets the current value, clamped to the bounds.
func (s *Stepper) SetValue(v float64) *Stepper {
	s.value = clamp(v, s.min, s.max)
	return s
}

// SetFormat sets the printf format used to display the value.
func (s *Stepper) SetFormat(format string) *Stepper {
	s.format = format
	return s
}

// Value returns the current value.
func (s *Stepper) Value() float64 {
	return s.value
}

// Focus sets the focus state.
func (s *Stepper) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Stepper) IsFocused() bool {
	return s.focused
}

// Increment steps the value up, clamped to the maximum.
func (s *Stepper) Increment() {
	s.value = clamp(roundToStep(s.value+s.step, s.step), s.min, s.max)
}

// Decrement steps the value down, clamped to the minimum.
func (s *Stepper) Decrement() {
	s.value = clamp(roundToStep(s.value-s.step, s.step), s.min, s.max)
}

// HandleKey handles a key press while focused.
func (s *Stepper) HandleKey(key string) {
	if !s.focused {
		return
	}

	switch key {
	case "left", "h", "-":
		s.Decrement()
	case "right", "l", "+", "=":
		s.Increment()
	case "home":
		s.value = s.min
	case "end":
		s.value = s.max
	}
}

// Render renders the stepper as "label: ◂ value ▸" with a gauge.
func (s *Stepper) Render() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#AA7700")).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000"))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#664400"))

	value := fmt.Sprintf(s.format, s.value)
	var display string
	if s.focused {
		display = focusStyle.Render("◂ " + value + " ▸")
	} else {
		display = valueStyle.Render("  " + value)
	}

	return labelStyle.Render(s.label+":") + " " + display + "  " + mutedStyle.Render(s.gauge(16))
}

// gauge renders a proportional fill bar for the current value.
func (s *Stepper) gauge(width int) string {
	if s.max <= s.min {
		return ""
	}
	filled := int(math.Round((s.value - s.min) / (s.max - s.min) * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("■", filled) + strings.Repeat("·", width-filled) + "]"
}

// clamp bounds v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// roundToStep snaps v to the nearest multiple of step to keep repeated
// float additions from drifting (0.1 is not exact in binary).
func roundToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
