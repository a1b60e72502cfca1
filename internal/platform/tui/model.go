package tui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const helpHeight = 1 // Footer line below the game screen

// Model is the Bubble Tea model that runs one snake game.
type Model struct {
	game     *snake.Game
	renderer Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig

	// gen identifies the current run; cadence messages carrying an older
	// value are dropped.
	gen      int
	quitting bool
}

// NewModel creates a model around an engine. A nil logger discards output.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, cellWidth int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		renderer: NewRenderer(cellWidth),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		config:   cfg,
	}
}

// Init sets the window title. Cadences start when the player starts a game.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case MoveMsg:
		return m.handleMove(msg)

	case ClockMsg:
		return m.handleClock(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "state", m.game.State(), "score", m.game.Score())
		return m, tea.Quit

	case core.ActionConfirm:
		return m.confirm()
	}

	if dir, ok := DirectionForAction(action); ok {
		m.game.RequestDirection(dir)
	}
	return m, nil
}

// confirm starts a ready game or resets a finished one.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	switch m.game.State() {
	case snake.StateReady:
		m.game.Start()
		m.gen++
		m.logger.Info("game started", "delay", m.game.Delay())
		return m, tea.Batch(moveCmd(m.gen, m.game.Delay()), clockCmd(m.gen))

	case snake.StateGameOver:
		m.game.Restart()
		m.gen++
		m.logger.Info("game reset")
	}
	return m, nil
}

// handleResize processes window resize events. The engine grid is fixed;
// only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleMove advances the snake and schedules the next move using the
// delay that is current after the tick.
func (m Model) handleMove(msg MoveMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.game.State() != snake.StatePlaying {
		return m, nil
	}

	switch m.game.Tick() {
	case snake.EventAte:
		m.logger.Debug("food eaten", "score", m.game.Score(), "delay", m.game.Delay())
	case snake.EventCollided:
		snap := m.game.Snapshot()
		m.logger.Info("game over",
			"score", snap.Score,
			"time", FormatClock(snap.Timer),
			"length", len(snap.Snake),
		)
		return m, nil
	}

	return m, moveCmd(m.gen, m.game.Delay())
}

// handleClock adds a second to the play timer.
func (m Model) handleClock(msg ClockMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.game.State() != snake.StatePlaying {
		return m, nil
	}

	m.game.AdvanceClock()
	return m, clockCmd(m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game.Snapshot())

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the player quits or ctx is cancelled.
func Run(ctx context.Context, game *snake.Game, cfg core.RuntimeConfig, cellWidth int, logger *log.Logger) error {
	model := NewModel(game, cfg, cellWidth, logger)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithFPS(cfg.FrameRate),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
