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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-climber/internal/config"
	"github.com/vovakirdan/sky-climber/internal/core"
	"github.com/vovakirdan/sky-climber/internal/registry"
)

// Spawner is implemented by games that add content on a wall-clock timer.
type Spawner interface {
	Spawn() int
	SpawnInterval() time.Duration
}

// Reloader is implemented by games that accept config changes while running.
type Reloader interface {
	ApplyConfig(cfg config.ClimberConfig)
}

// Options configures a Model.
type Options struct {
	Runtime       core.RuntimeConfig
	Logger        *log.Logger        // nil discards
	Watcher       *config.Watcher    // Optional config hot reload
	ScreenshotDir string             // Defaults to ~/.climber/screenshots
	Renderer      *lipgloss.Renderer // Per-session renderer; nil uses the default
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	fixedSeed     bool
	inputFrame    core.InputFrame
	mapper        *KeyMapper
	renderer      *ScreenRenderer
	help          help.Model
	hold          *Hold
	watcher       *config.Watcher
	logger        *log.Logger
	screenshotDir string
	now           func() time.Time
	width         int
	height        int
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	fixedSeed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".climber", "screenshots")
		}
	}

	m := Model{
		game:          game,
		config:        cfg,
		fixedSeed:     fixedSeed,
		inputFrame:    core.NewInputFrame(),
		mapper:        NewKeyMapper(),
		renderer:      NewScreenRenderer(opts.Renderer),
		help:          help.New(),
		hold:          NewHold(),
		watcher:       opts.Watcher,
		logger:        logger,
		screenshotDir: dir,
		now:           time.Now,
		width:         cfg.ScreenW,
		height:        cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if sp, ok := m.game.(Spawner); ok {
		cmds = append(cmds, spawnCmd(sp.SpawnInterval()))
	}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SpawnMsg:
		return m.handleSpawn()

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg.Path)

	case ConfigErrorMsg:
		m.logger.Error("config watcher", "err", msg.Err)
		return m, watchCmd(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.mapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.playHeight())
		return m, nil
	}

	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now())
	case core.ActionStop:
		m.hold.Clear()
	case core.ActionRestart:
		m.restart()
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playHeight())
	return m, nil
}

// handleTick runs one host frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.hold.Expired(now) {
		m.inputFrame.Set(core.ActionStop)
	}

	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleSpawn runs one spawner cycle and schedules the next.
func (m Model) handleSpawn() (tea.Model, tea.Cmd) {
	sp, ok := m.game.(Spawner)
	if !ok {
		return m, nil
	}
	sp.Spawn()
	return m, spawnCmd(sp.SpawnInterval())
}

// handleConfigChanged reloads config and applies it without restarting.
func (m Model) handleConfigChanged(path string) (tea.Model, tea.Cmd) {
	next := watchCmd(m.watcher)

	rl, ok := m.game.(Reloader)
	if !ok {
		return m, next
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		m.logger.Warn("config reload failed", "path", path, "err", err)
		return m, next
	}
	rl.ApplyConfig(cfg)
	m.logger.Info("config reloaded", "path", path)
	return m, next
}

// restart rebuilds the world, with a fresh seed unless one was given.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.hold.Clear()
	m.inputFrame.Clear()
	m.logger.Info("game restarted", "seed", m.config.Seed)
}

// playHeight is the number of rows left for the game after the help footer.
func (m Model) playHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = len(m.mapper.Keys().FullHelp()[0])
	}
	return core.Max(m.height-footer, 1)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(m.screen),
		m.help.View(m.mapper.Keys()),
	)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
