package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arnaudbellemare/sunexposure/internal/config"
	"github.com/arnaudbellemare/sunexposure/internal/models"
	"github.com/arnaudbellemare/sunexposure/internal/services/history"
	"github.com/arnaudbellemare/sunexposure/internal/services/synthesis"
	"github.com/arnaudbellemare/sunexposure/internal/tui/components"
	"github.com/arnaudbellemare/sunexposure/internal/util"
)

// Module identifies a top-level screen reachable via function keys.
type Module string

const (
	ModuleCalculator Module = "calculator"
	ModuleHistory    Module = "history"
	ModuleGuidance   Module = "guidance"
	ModuleHelp       Module = "help"
)

// Input focus order on the calculator screen.
const (
	focusUV = iota
	focusClothing
	focusAdaptation
	focusCount
)

// historyViewLimit caps how many sessions the history table loads.
const historyViewLimit = 100

type tickMsg time.Time

type sessionRecordedMsg struct {
	err error
}

type historyLoadedMsg struct {
	sessions   []*models.ExposureSession
	suggestion *history.Suggestion
	err        error
}

// App is the root Bubble Tea model.
type App struct {
	cfg     *config.Config
	clock   util.Clock
	engine  *synthesis.Engine
	journal *history.Service // nil when history is disabled

	theme *Theme
	keys  KeyMap

	width   int
	height  int
	ready   bool
	exiting bool

	currentModule   Module
	showQuitConfirm bool

	// Calculator inputs
	uvInput         *components.Stepper
	adaptationInput *components.Stepper
	clothingInput   *components.Selector
	focusIndex      int

	now    time.Time
	report *synthesis.Report

	// History screen state
	sessionTable *components.Table
	suggestion   *history.Suggestion

	statusMsg   string
	statusIsErr bool
}

// NewApp creates the application model from loaded configuration and
// wired services. The journal may be nil when history is disabled.
func NewApp(cfg *config.Config, clock util.Clock, engine *synthesis.Engine, journal *history.Service) *App {
	theme := NewTheme(cfg.Display.ColorScheme)

	uv := components.NewStepper("UV Index", 0, 20, cfg.Exposure.UVIndexStep).
		SetValue(cfg.Exposure.DefaultUVIndex).
		SetFormat("%.1f")
	adaptation := components.NewStepper("Adaptation Factor", history.AdaptationNone, history.AdaptationRegular, cfg.Exposure.AdaptationStep).
		SetValue(cfg.Exposure.DefaultAdaptation)

	options := make([]string, len(models.AllClothingLevels))
	defaultIdx := 0
	for i, level := range models.AllClothingLevels {
		options[i] = level.String()
		if level == models.ClothingLevel(cfg.Exposure.DefaultClothing) {
			defaultIdx = i
		}
	}
	clothing := components.NewSelector("Clothing Coverage", options).SetSelected(defaultIdx)

	table := components.NewTable([]components.Column{
		{Title: "Recorded", Width: 19},
		{Title: "UV", Width: 5},
		{Title: "Clothing", Width: 16},
		{Title: "Adapt", Width: 6},
		{Title: "IU/hour", Width: 10},
	})
	table.SetStyles(theme.Accent.Bold(true), theme.Primary, theme.Secondary, theme.Selected)

	app := &App{
		cfg:             cfg,
		clock:           clock,
		engine:          engine,
		journal:         journal,
		theme:           theme,
		keys:            DefaultKeyMap(),
		currentModule:   ModuleCalculator,
		uvInput:         uv,
		adaptationInput: adaptation,
		clothingInput:   clothing,
		sessionTable:    table,
		now:             clock.Now(),
	}
	app.applyFocus()
	app.recompute()

	return app
}

// Init starts the clock tick and the initial history load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tickCmd(), a.loadHistoryCmd())
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tickMsg:
		a.now = a.clock.Now()
		a.recompute()
		return a, tickCmd()

	case sessionRecordedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("record failed: %v", msg.err), true)
			return a, nil
		}
		a.setStatus("Session recorded", false)
		return a, a.loadHistoryCmd()

	case historyLoadedMsg:
		if msg.err != nil {
			a.setStatus(fmt.Sprintf("history load failed: %v", msg.err), true)
			return a, nil
		}
		a.suggestion = msg.suggestion
		a.sessionTable.SetRows(sessionRows(msg.sessions))
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showQuitConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			a.exiting = true
			return a, tea.Quit
		case "n", "N", "esc":
			a.showQuitConfirm = false
		}
		return a, nil
	}

	if a.keys.IsQuit(msg) {
		a.showQuitConfirm = true
		return a, nil
	}

	if module := a.keys.ModuleFor(msg); module != "" {
		a.currentModule = module
		a.statusMsg = ""
		return a, nil
	}

	switch a.currentModule {
	case ModuleCalculator:
		return a.handleCalculatorKey(msg)
	case ModuleHistory:
		return a.handleHistoryKey(msg)
	}

	return a, nil
}

func (a *App) handleCalculatorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Tab.Matches(msg), a.keys.Down.Matches(msg):
		a.focusIndex = (a.focusIndex + 1) % focusCount
		a.applyFocus()
		return a, nil

	case a.keys.Up.Matches(msg):
		a.focusIndex = (a.focusIndex + focusCount - 1) % focusCount
		a.applyFocus()
		return a, nil

	case a.keys.Record.Matches(msg):
		return a, a.recordSessionCmd()

	case a.keys.Apply.Matches(msg):
		if a.suggestion != nil {
			a.adaptationInput.SetValue(a.suggestion.Adaptation)
			a.recompute()
			a.setStatus(a.suggestion.Note, false)
		}
		return a, nil
	}

	key := msg.String()
	a.uvInput.HandleKey(key)
	a.adaptationInput.HandleKey(key)
	a.clothingInput.HandleKey(key)
	a.recompute()

	return a, nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.keys.Up.Matches(msg):
		a.sessionTable.MoveUp()
	case a.keys.Down.Matches(msg):
		a.sessionTable.MoveDown()
	case a.keys.Apply.Matches(msg):
		if a.suggestion != nil {
			a.adaptationInput.SetValue(a.suggestion.Adaptation)
			a.recompute()
			a.currentModule = ModuleCalculator
			a.setStatus(a.suggestion.Note, false)
		}
	}
	return a, nil
}

// applyFocus syncs the focus flag of each input with the focus index.
func (a *App) applyFocus() {
	a.uvInput.Focus(a.focusIndex == focusUV)
	a.clothingInput.Focus(a.focusIndex == focusClothing)
	a.adaptationInput.Focus(a.focusIndex == focusAdaptation)
}

// selectedClothing maps the selector index back to the enum.
func (a *App) selectedClothing() models.ClothingLevel {
	idx := a.clothingInput.SelectedIndex()
	if idx >= 0 && idx < len(models.AllClothingLevels) {
		return models.AllClothingLevels[idx]
	}
	return models.ClothingNude
}

// recompute reruns the pipeline for the current inputs and clock reading.
// Inputs come from bounded widgets, so a failure here is a programming
// error worth logging rather than surfacing as a broken screen.
func (a *App) recompute() {
	report, err := a.engine.ComputeAt(a.now, a.uvInput.Value(), a.selectedClothing(), a.adaptationInput.Value())
	if err != nil {
		slog.Error("computing report", "error", err)
		return
	}
	a.report = report
}

func (a *App) setStatus(msg string, isErr bool) {
	a.statusMsg = msg
	a.statusIsErr = isErr
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// recordSessionCmd journals the current conditions and computed rate.
func (a *App) recordSessionCmd() tea.Cmd {
	if a.journal == nil {
		a.setStatus("History is disabled in configuration", true)
		return nil
	}
	if a.report == nil {
		return nil
	}

	session := &models.ExposureSession{
		RecordedAt:    a.now,
		UVIndex:       a.report.UVIndex,
		Clothing:      a.report.Clothing,
		Adaptation:    a.report.Adaptation,
		RateIUPerHour: a.report.RateIUPerHour,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.journal.RecordSession(ctx, session); err != nil {
			slog.Error("recording session", "error", err)
			return sessionRecordedMsg{err: err}
		}

		slog.Info("session recorded",
			"id", session.ID,
			"uv_index", session.UVIndex,
			"clothing", session.Clothing,
			"rate_iu_per_hour", session.RateIUPerHour,
		)
		return sessionRecordedMsg{}
	}
}

// loadHistoryCmd fetches recent sessions and the adaptation suggestion.
func (a *App) loadHistoryCmd() tea.Cmd {
	if a.journal == nil {
		return nil
	}

	now := a.clock.Now()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		retention := a.cfg.History.RetentionDays
		if retention <= 0 {
			retention = 365
		}
		sessions, err := a.journal.RecentSessions(ctx, now.AddDate(0, 0, -retention), historyViewLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}

		suggestion, err := a.journal.SuggestAdaptation(ctx, now)
		if err != nil {
			return historyLoadedMsg{err: err}
		}

		return historyLoadedMsg{sessions: sessions, suggestion: suggestion}
	}
}

func sessionRows(sessions []*models.ExposureSession) [][]string {
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			util.FormatDateTime(s.RecordedAt.Local()),
			fmt.Sprintf("%.1f", s.UVIndex),
			s.Clothing.String(),
			fmt.Sprintf("%.2f", s.Adaptation),
			fmt.Sprintf("%.0f", s.RateIUPerHour),
		}
	}
	return rows
}

// View renders the full screen.
func (a *App) View() string {
	if a.exiting {
		return ""
	}
	if !a.ready {
		return "Loading..."
	}

	var content string
	switch a.currentModule {
	case ModuleHistory:
		content = a.viewHistory()
	case ModuleGuidance:
		content = a.viewGuidance()
	case ModuleHelp:
		content = a.viewHelp()
	default:
		content = a.viewCalculator()
	}

	if a.showQuitConfirm {
		content = a.viewQuitConfirm()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(),
		content,
		a.viewFooter(),
	)
}

func (a *App) viewHeader() string {
	title := a.theme.Title.Render("SUN EXPOSURE CALCULATOR")
	clock := a.theme.Secondary.Render(util.FormatDateTime(a.now))

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(clock) - 2
	if gap < 1 {
		gap = 1
	}

	line := title + lipgloss.NewStyle().Width(gap).Render("") + clock
	return line + "\n" + a.theme.DrawDoubleLine(max(a.width, 1))
}

func (a *App) viewFooter() string {
	help := a.theme.Footer.Render(a.keys.StatusBarHelp())

	status := ""
	if a.statusMsg != "" {
		if a.statusIsErr {
			status = a.theme.Error.Render(a.statusMsg)
		} else {
			status = a.theme.Success.Render(a.statusMsg)
		}
	}

	return a.theme.DrawHorizontalLine(max(a.width, 1)) + "\n" + help + " " + status
}

func (a *App) viewCalculator() string {
	var inputs string
	inputs += a.uvInput.Render() + "\n"
	inputs += a.clothingInput.Render() + "\n"
	inputs += a.adaptationInput.Render() + "\n"

	if a.suggestion != nil && a.suggestion.Adaptation != a.adaptationInput.Value() {
		inputs += a.theme.Muted.Render(fmt.Sprintf("Suggested adaptation %.1f, press [A] to apply", a.suggestion.Adaptation)) + "\n"
	}

	panel := ""
	if a.report != nil {
		panel = a.renderReportPanel(a.report, a.now)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.theme.Subtitle.Render("EXPOSURE CONDITIONS"),
		a.theme.Box.Render(inputs),
		"",
		panel,
	)
}

func (a *App) viewHistory() string {
	if a.journal == nil {
		return a.theme.Muted.Render("\nHistory is disabled. Enable it in the configuration file to journal sessions.")
	}

	var b string
	b += a.theme.Subtitle.Render("EXPOSURE HISTORY") + "\n\n"

	if a.sessionTable.Len() == 0 {
		b += a.theme.Muted.Render("No sessions recorded yet. Press [R] on the calculator to journal one.") + "\n"
	} else {
		b += a.sessionTable.Render() + "\n"
	}

	if a.suggestion != nil {
		b += "\n" + a.theme.Accent.Render(a.suggestion.Note)
		b += "\n" + a.theme.Muted.Render("Press [A] to apply the suggested adaptation factor.")
	}

	return b
}

func (a *App) viewGuidance() string {
	sections := []struct {
		title string
		body  string
	}{
		{
			"QUALITY FACTOR",
			"UV-B, the wavelength band that drives vitamin D synthesis, is strongest when the\n" +
				"sun is high. Between 10 AM and 3 PM the full rate applies; outside that window\n" +
				"the rate is halved because the atmosphere filters proportionally more UV-B.",
		},
		{
			"ADAPTATION FACTOR",
			"Skin that sees sun regularly synthesizes vitamin D more efficiently.\n" +
				"  0.8  little or no sun exposure in the last two weeks\n" +
				"  1.0  moderate exposure, a few sessions per week\n" +
				"  1.2  regular daily exposure\n" +
				"Journal your sessions with [R] and the calculator suggests a factor from your\n" +
				"actual habits.",
		},
		{
			"BURN THRESHOLDS",
			"The technical burn time is one minimal erythemal dose (MED), the exposure at\n" +
				"which skin visibly reddens. The safety threshold warns at 80% of that. Both\n" +
				"scale inversely with UV index: doubling the UV halves the safe time.",
		},
		{
			"WINTER SUPPLEMENTATION",
			"From November through February, sunlight at northern latitudes carries too\n" +
				"little UV-B for meaningful synthesis regardless of time outdoors. During those\n" +
				"months a daily supplement sized by BMI is recommended: 2000 IU below BMI 25,\n" +
				"3000 IU from 25, 4000 IU from 30.",
		},
	}

	var b string
	for _, s := range sections {
		b += a.theme.Subtitle.Render(s.title) + "\n"
		b += a.theme.Base.Render(s.body) + "\n\n"
	}

	return b
}

func (a *App) viewHelp() string {
	bindings := []struct{ keys, action string }{
		{"F1 / ?", "This help screen"},
		{"F2", "Calculator"},
		{"F3", "Exposure history"},
		{"F4", "Guidance"},
		{"Tab / ↑ / ↓", "Move between input fields"},
		{"← / →", "Adjust the focused input"},
		{"Home / End", "Jump to an input's minimum or maximum"},
		{"R", "Record the current conditions as a session"},
		{"A", "Apply the suggested adaptation factor"},
		{"Q / F10 / Ctrl+C", "Quit"},
	}

	b := a.theme.Subtitle.Render("KEY BINDINGS") + "\n\n"
	for _, kb := range bindings {
		b += "  " + a.theme.Accent.Render(fmt.Sprintf("%-18s", kb.keys)) + a.theme.Base.Render(kb.action) + "\n"
	}

	return b
}

func (a *App) viewQuitConfirm() string {
	box := a.theme.Box.Render(
		a.theme.Warning.Render("Quit?") + "\n\n" +
			a.theme.Base.Render("[Y]es    [N]o"),
	)
	return lipgloss.Place(max(a.width, 20), max(a.height-6, 5), lipgloss.Center, lipgloss.Center, box)
}

// Run starts the interactive application and blocks until it exits.
func Run(ctx context.Context, cfg *config.Config, clock util.Clock, engine *synthesis.Engine, journal *history.Service) error {
	app := NewApp(cfg, clock, engine, journal)

	program := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
