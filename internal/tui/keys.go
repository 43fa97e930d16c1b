package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Navigation
	Up    Key
	Down  Key
	Left  Key
	Right Key

	// Actions
	Back   Key
	Quit   Key
	Record Key
	Apply  Key
	Tab    Key

	// Function keys for module navigation
	F1 Key
	F2 Key
	F3 Key
	F4 Key
}

// Key represents a key binding.
type Key struct {
	Keys []string
	Help string
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    Key{Keys: []string{"up", "k"}, Help: "up"},
		Down:  Key{Keys: []string{"down", "j"}, Help: "down"},
		Left:  Key{Keys: []string{"left", "h"}, Help: "decrease"},
		Right: Key{Keys: []string{"right", "l"}, Help: "increase"},

		Back:   Key{Keys: []string{"esc"}, Help: "back"},
		Quit:   Key{Keys: []string{"q", "ctrl+c", "f10"}, Help: "quit"},
		Record: Key{Keys: []string{"r"}, Help: "record session"},
		Apply:  Key{Keys: []string{"a"}, Help: "apply suggestion"},
		Tab:    Key{Keys: []string{"tab"}, Help: "next field"},

		F1: Key{Keys: []string{"f1", "?"}, Help: "Help"},
		F2: Key{Keys: []string{"f2"}, Help: "Calculator"},
		F3: Key{Keys: []string{"f3"}, Help: "History"},
		F4: Key{Keys: []string{"f4"}, Help: "Guidance"},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg)
}

// ModuleFor returns the module a function key navigates to, or "" when
// the key is not a module key.
func (km KeyMap) ModuleFor(msg tea.KeyMsg) Module {
	switch {
	case km.F1.Matches(msg):
		return ModuleHelp
	case km.F2.Matches(msg):
		return ModuleCalculator
	case km.F3.Matches(msg):
		return ModuleHistory
	case km.F4.Matches(msg):
		return ModuleGuidance
	default:
		return ""
	}
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[F1]Help [F2]Calculator [F3]History [F4]Guidance [←/→]Adjust [Tab]Field [R]ecord [F10]Quit"
}
