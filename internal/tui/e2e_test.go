package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/arnaudbellemare/sunexposure/internal/config"
	"github.com/arnaudbellemare/sunexposure/internal/database"
	"github.com/arnaudbellemare/sunexposure/internal/services/history"
	"github.com/arnaudbellemare/sunexposure/internal/services/synthesis"
	"github.com/arnaudbellemare/sunexposure/internal/util"
)

// newE2EApp creates an App for end-to-end testing via teatest.
// Unlike newTestApp, this does NOT pre-set the window size since teatest
// sends WindowSizeMsg via WithInitialTermSize.
func newE2EApp(t *testing.T) *App {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("creating test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	clock := util.NewFixedClock(testInstant)

	return NewApp(cfg, clock, synthesis.NewEngine(cfg.Profile), history.NewService(db))
}

// waitFor is a convenience wrapper around teatest.WaitFor with a standard timeout.
func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte(text))
	}, teatest.WithDuration(5*time.Second))
}

// --- End-to-end tests ---
// These launch the real Bubble Tea program in a headless virtual terminal,
// send actual keystrokes, and assert on the rendered screen output.

func TestE2E_CalculatorOnStartup(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "EXPOSURE CONDITIONS")
}

func TestE2E_NavigateToHistory(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "EXPOSURE CONDITIONS")

	tm.Send(tea.KeyMsg{Type: tea.KeyF3})
	waitFor(t, tm, "EXPOSURE HISTORY")
}

func TestE2E_NavigateToGuidance(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	tm.Send(tea.KeyMsg{Type: tea.KeyF4})
	waitFor(t, tm, "ADAPTATION FACTOR")
}

func TestE2E_HelpScreen(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	tm.Send(tea.KeyMsg{Type: tea.KeyF1})
	waitFor(t, tm, "KEY BINDINGS")

	// F2 returns to the calculator
	tm.Send(tea.KeyMsg{Type: tea.KeyF2})
	waitFor(t, tm, "EXPOSURE CONDITIONS")
}

func TestE2E_QuitFlow(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))

	waitFor(t, tm, "EXPOSURE CONDITIONS")

	// Press q → confirm dialog
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	waitFor(t, tm, "Quit?")

	// Press y → quit
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	m := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	app, ok := m.(*App)
	if !ok {
		t.Fatal("expected *App final model")
	}
	if !app.exiting {
		t.Error("expected app to be exiting")
	}
}

func TestE2E_QuitCancel(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "EXPOSURE CONDITIONS")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	waitFor(t, tm, "Quit?")

	// Press n → cancel, then verify the app is still responsive
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	tm.Send(tea.KeyMsg{Type: tea.KeyF3})
	waitFor(t, tm, "EXPOSURE HISTORY")
}

func TestE2E_HistoryEmptyState(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	tm.Send(tea.KeyMsg{Type: tea.KeyF3})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("EXPOSURE HISTORY")) &&
			bytes.Contains(bts, []byte("No sessions recorded yet"))
	}, teatest.WithDuration(5*time.Second))
}

func TestE2E_RecordSessionShowsInHistory(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "EXPOSURE CONDITIONS")

	// Record the current conditions, then check the journal
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	waitFor(t, tm, "Session recorded")

	tm.Send(tea.KeyMsg{Type: tea.KeyF3})
	waitFor(t, tm, "Nude (100%)")
}

func TestE2E_AdjustUVIndex(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "9.0")

	// UV stepper starts focused; one step left lands on 8.9
	tm.Send(tea.KeyMsg{Type: tea.KeyLeft})
	waitFor(t, tm, "8.9")
}

func TestE2E_StatusBarShowsKeyBindings(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() { tm.Quit() })

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("[F1]Help")) &&
			bytes.Contains(bts, []byte("[F3]History"))
	}, teatest.WithDuration(5*time.Second))
}

func TestE2E_NarrowTerminal(t *testing.T) {
	tm := teatest.NewTestModel(t, newE2EApp(t),
		teatest.WithInitialTermSize(60, 24))
	t.Cleanup(func() { tm.Quit() })

	waitFor(t, tm, "EXPOSURE CONDITIONS")

	tm.Send(tea.KeyMsg{Type: tea.KeyF4})
	waitFor(t, tm, "QUALITY FACTOR")
}
