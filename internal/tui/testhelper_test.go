package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arnaudbellemare/sunexposure/internal/config"
	"github.com/arnaudbellemare/sunexposure/internal/database"
	"github.com/arnaudbellemare/sunexposure/internal/services/history"
	"github.com/arnaudbellemare/sunexposure/internal/services/synthesis"
	"github.com/arnaudbellemare/sunexposure/internal/util"
)

// testInstant is a summer noon: peak quality window, outside the winter
// supplement months.
var testInstant = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

// newTestApp builds an app against an in-memory journal and a clock
// frozen at testInstant.
func newTestApp(t *testing.T) (*App, *util.FixedClock) {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clock := util.NewFixedClock(testInstant)
	cfg := config.Default()
	app := NewApp(cfg, clock, synthesis.NewEngine(cfg.Profile), history.NewService(db))

	// Simulate the initial window size message.
	m, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(*App), clock
}

// key builds the key message for a named key or a plain character.
func key(s string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"up":    tea.KeyUp,
		"down":  tea.KeyDown,
		"left":  tea.KeyLeft,
		"right": tea.KeyRight,
		"tab":   tea.KeyTab,
		"esc":   tea.KeyEsc,
		"enter": tea.KeyEnter,
		"home":  tea.KeyHome,
		"end":   tea.KeyEnd,
		"f1":    tea.KeyF1,
		"f2":    tea.KeyF2,
		"f3":    tea.KeyF3,
		"f4":    tea.KeyF4,
		"f10":   tea.KeyF10,
	}

	if kt, ok := special[s]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds one key and returns the updated app and any command.
func press(t *testing.T, app *App, s string) (*App, tea.Cmd) {
	t.Helper()

	m, cmd := app.Update(key(s))
	return m.(*App), cmd
}
