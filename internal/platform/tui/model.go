package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stickhero/internal/audio"
	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/games/stickhero"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

// footerRows is the number of terminal rows used by the help line.
const footerRows = 1

// Options configures a game model.
type Options struct {
	Game    config.StickHeroConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; runs are not recorded without it
	Audio   *audio.Switch  // Optional; silent without it
	Logger  *log.Logger    // Optional; discards without it

	// ScreenshotDir overrides ~/.stickhero/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running stick hero.
//
// It owns the tick scheduler: a tick is scheduled only when a press starts a
// new loop or when the previous tick asked for another. Ticks carry the
// game's epoch and are dropped once the epoch has moved on.
type Model struct {
	game     *stickhero.Game
	screen   *core.Screen
	store    *storage.Store
	audio    *audio.Switch
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	shotDir  string
	start    time.Time
	now      func() time.Time
	lastRun  string // ID of the last recorded run
	runSaved bool   // Whether the current run's journal has been stored
	quitting bool
}

// NewModel creates a model and starts the first run.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sw := opts.Audio
	if sw == nil {
		sw = audio.NewSwitch(nil, false, logger)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    stickhero.New(opts.Game, sw),
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerRows, 0)),
		store:   opts.Store,
		audio:   sw,
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		shotDir: opts.ScreenshotDir,
		start:   time.Now(),
		now:     time.Now,
	}
	m.game.Reset(cfg.Seed)
	m.logger.Debug("run started", "seed", cfg.Seed)
	return m
}

// Init needs no command: nothing moves until the first press.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Action):
		// Terminals report no key-up, so one key toggles press and release
		if m.game.Machine().Phase() == stickhero.PhaseStretching {
			return m.release()
		}
		return m.press()

	case key.Matches(msg, m.keys.Reset):
		return m.reset()

	case key.Matches(msg, m.keys.Mute):
		muted := m.audio.Toggle()
		m.logger.Debug("audio toggled", "muted", muted)
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// handleMouse maps the left button directly to press and release.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		return m.press()
	case tea.MouseActionRelease:
		return m.release()
	}
	return m, nil
}

// press starts a stretch and, if accepted, a fresh tick loop.
func (m Model) press() (tea.Model, tea.Cmd) {
	if !m.game.Press(m.clock()) {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.game.Epoch())
}

// release lets the stick fall. The running loop carries on.
func (m Model) release() (tea.Model, tea.Cmd) {
	m.game.Release(m.clock())
	return m, nil
}

// reset starts a new run with a fresh seed. Any loop in flight goes stale.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.config.Seed = m.now().UnixNano()
	m.game.Reset(m.config.Seed)
	m.runSaved = false
	m.logger.Debug("run started", "seed", m.config.Seed)
	return m, nil
}

// handleResize refits the play field. The canvas scales, so the run survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances one frame if the tick belongs to the current loop.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != m.game.Epoch() {
		return m, nil
	}

	if m.game.Tick(m.clock()) {
		return m, tickCmd(m.config.TickRate, msg.epoch)
	}

	if m.game.State().GameOver && !m.runSaved {
		m.saveRun()
	}
	return m, nil
}

// saveRun records the finished run's journal and tuning (once).
func (m *Model) saveRun() {
	m.runSaved = true
	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(m.game.ID(), m.game.Journal(), m.game.Machine().Config())
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.lastRun = id
	m.logger.Info("run recorded", "id", id, "score", m.game.State().Score)
}

// clock returns milliseconds since the model was created.
func (m Model) clock() float64 {
	return float64(m.now().Sub(m.start)) / float64(time.Millisecond)
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".stickhero", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// draw renders the game and the platform overlays into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	if m.audio.Muted() {
		label := "[muted]"
		m.screen.DrawTextColored((m.screen.Width()-len(label))/2, 0, label, core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// State returns the game summary including the platform's mute flag.
func (m Model) State() core.GameState {
	st := m.game.State()
	st.Muted = m.audio.Muted()
	return st
}

// LastRunID returns the ID of the most recently recorded run, if any.
func (m Model) LastRunID() string {
	return m.lastRun
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
