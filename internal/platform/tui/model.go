package tui

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/anim"
	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/othello"
)

// GameOptions configures the game behind a model.
type GameOptions struct {
	Settings          othello.Settings
	SchedulerInterval time.Duration
	Logger            *log.Logger
}

// StartGame creates a game with its own animation scheduler. The scheduler
// runs until ctx is done, after which the refresher is closed.
func StartGame(ctx context.Context, opts GameOptions) (*othello.Game, *Refresher) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	mgr := anim.NewManager(anim.WithInterval(opts.SchedulerInterval), anim.WithLogger(logger))
	refresher := NewRefresher()
	game := othello.NewGame(mgr, opts.Settings,
		othello.WithLogger(logger),
		othello.WithRefresher(refresher),
	)

	go func() {
		//nolint:errcheck // Run only returns on cancellation
		mgr.Run(ctx)
		refresher.Close()
	}()
	return game, refresher
}

// Model is the Bubble Tea model for one othello game.
type Model struct {
	game      *othello.Game
	refresher *Refresher
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	cursor    othello.Coord
	framing   bool // Whether a frame tick is scheduled
	quitting  bool
}

// NewModel creates a model drawing game. refresher must be the one the game
// was created with.
func NewModel(game *othello.Game, refresher *Refresher, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	snap := game.Snapshot()
	cursor := othello.At(snap.Width/2, snap.Height/2)
	if len(snap.ValidMoves) > 0 {
		cursor = snap.ValidMoves[0]
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		refresher: refresher,
		screen:    core.NewScreen(screenSize(snap)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		cursor:    cursor,
		framing:   true,
	}
}

// screenSize returns the buffer size needed for the board and info panel.
func screenSize(snap othello.Snapshot) (int, int) {
	return panelX(snap) + panelW, boardY + snap.Height*cellH
}

// Init starts listening for refreshes and draws the first frames.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refresher.Wait(), frameCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RefreshMsg:
		cmds := []tea.Cmd{m.refresher.Wait()}
		if !m.framing {
			m.framing = true
			cmds = append(cmds, frameCmd(m.config.TickRate))
		}
		return m, tea.Batch(cmds...)

	case FrameMsg:
		// Keep redrawing only while discs move.
		if busy(m.game.Snapshot()) {
			return m, frameCmd(m.config.TickRate)
		}
		m.framing = false
		return m, nil
	}

	return m, nil
}

// busy reports whether anything on the board is still animating.
func busy(snap othello.Snapshot) bool {
	if snap.MoveInProgress {
		return true
	}
	for _, cv := range snap.Cells {
		if cv.Animating {
			return true
		}
	}
	return false
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.game.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor.Y = core.Clamp(m.cursor.Y-1, 1, snap.Height)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Y = core.Clamp(m.cursor.Y+1, 1, snap.Height)
	case key.Matches(msg, m.keys.Left):
		m.cursor.X = core.Clamp(m.cursor.X-1, 1, snap.Width)
	case key.Matches(msg, m.keys.Right):
		m.cursor.X = core.Clamp(m.cursor.X+1, 1, snap.Width)
	case key.Matches(msg, m.keys.Place):
		m.place(snap)
	case key.Matches(msg, m.keys.Restart):
		m.game.Restart()
	}
	return m, nil
}

// handleMouse places a disc on left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	snap := m.game.Snapshot()
	c, ok := CellAt(snap, msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = c
	m.place(snap)
	return m, nil
}

// place plays the cursor for the human on turn. Once the game is over any
// placement starts a new game.
func (m Model) place(snap othello.Snapshot) {
	if snap.Over {
		m.game.Restart()
		return
	}
	if snap.Turn == snap.AITeam {
		return
	}
	m.game.Move(snap.Turn, m.cursor)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	w, h := screenSize(snap)
	m.screen.Resize(w, h)

	hints := !snap.Over && !snap.MoveInProgress && snap.Turn != snap.AITeam
	DrawBoard(m.screen, snap, m.cursor, hints)

	return RenderScreen(m.screen) + "\n\n" + m.help.View(m.keys)
}

// Run starts a local game and blocks until the player quits or ctx is done.
func Run(ctx context.Context, cfg core.RuntimeConfig, opts GameOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game, refresher := StartGame(ctx, opts)
	p := tea.NewProgram(
		NewModel(game, refresher, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
