package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Game    config.FlappyConfig
	Store   *storage.Store // Optional; finished runs are saved here
	Source  string         // Recorded with each saved run
	Logger  *log.Logger    // Optional
}

// Model is the Bubble Tea model for one flappy session.
// Key presses are delivered to the engine as taps immediately; each
// TickMsg becomes one frame callback with a measured delta.
type Model struct {
	opts     Options
	engine   *flappy.Engine
	clock    *flappy.Clock
	trace    *flappy.Trace
	taps     *int // Taps delivered since the last frame
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	snapshot flappy.Snapshot
	best     int
	paused   bool
	quitting bool
}

// NewModel creates a session with a fresh engine.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Source == "" {
		opts.Source = "play"
	}

	engine, err := flappy.New(opts.Game, flappy.WithSeed(opts.Runtime.Seed))
	if err != nil {
		return Model{}, err
	}

	best := 0
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			best = high
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		opts:     opts,
		engine:   engine,
		clock:    &flappy.Clock{},
		trace:    &flappy.Trace{Seed: opts.Runtime.Seed},
		taps:     new(int),
		screen:   core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-1, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
		snapshot: engine.Snapshot(),
		best:     best,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Last line is the help footer
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		if !m.paused {
			// The first frame after a pause has nothing to measure against
			m.clock.Reset()
		}

	case core.ActionTap:
		if m.paused {
			return m, nil
		}
		m.engine.Tap()
		*m.taps++
		m.snapshot = m.engine.Snapshot()
	}

	return m, nil
}

// handleTick delivers one frame to the engine.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	dt := m.clock.Frame(now)
	m.trace.Record(*m.taps, dt)
	*m.taps = 0

	res := m.engine.Tick(dt)
	m.snapshot = res.Snapshot
	if res.Snapshot.Score > m.best {
		m.best = res.Snapshot.Score
	}
	if res.Has(flappy.EventCollided) {
		m.saveRun(res.Snapshot)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRun stores the session trace up to the collision that just happened.
// The trace starts at the session seed, so earlier games in the session are
// part of it; replaying it ends on this game's final state.
func (m Model) saveRun(s flappy.Snapshot) {
	if m.opts.Store == nil {
		return
	}

	cfgYAML, err := config.Marshal(m.opts.Game)
	if err != nil {
		m.logError("cannot encode config", err)
		return
	}

	frames := make([]flappy.Frame, len(m.trace.Frames))
	copy(frames, m.trace.Frames)

	id, err := m.opts.Store.SaveRun(storage.Run{
		Source:     m.opts.Source,
		Seed:       m.trace.Seed,
		Score:      s.Score,
		Ticks:      s.Tick,
		ConfigYAML: string(cfgYAML),
		Trace:      flappy.Trace{Seed: m.trace.Seed, Frames: frames},
	})
	if err != nil {
		m.logError("cannot save run", err)
		return
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Debug("run saved", "id", id, "score", s.Score, "source", m.opts.Source)
	}
}

func (m Model) logError(msg string, err error) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// draw renders the latest snapshot and session overlays into the screen buffer.
func (m Model) draw() {
	flappy.Render(m.screen, m.snapshot)
	if m.best > 0 {
		m.screen.DrawText(1, 0, fmt.Sprintf("best %d", m.best), core.ColorGray)
	}
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorCyan)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the state shown by the last update.
func (m Model) Snapshot() flappy.Snapshot {
	return m.snapshot
}

// Paused reports whether frame delivery is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Trace returns the frames recorded so far.
func (m Model) Trace() flappy.Trace {
	return *m.trace
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
