package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/ai"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

// searchMsg carries the result of a background move search.
type searchMsg struct {
	dir  game2048.Direction
	err  error
	auto bool
}

// Model is the Bubble Tea model for an interactive game session. The game
// advances on key presses only; there is no tick loop. While a search runs
// the model ignores move input so the recommendation matches the board it
// was computed for.
type Model struct {
	game     *game2048.Game
	searcher *ai.Searcher
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig

	hint     game2048.Direction
	hasHint  bool
	thinking bool
	auto     bool
	winSeen  bool
	quitting bool
	err      error
}

// NewModel creates a session model from the merged runtime config.
func NewModel(cfg core.RuntimeConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := newGame(cfg)
	if err != nil {
		return Model{}, err
	}

	searcher := ai.NewSearcher(cfg.Depth)
	if cfg.Threads > 0 {
		searcher.SetThreads(cfg.Threads)
	}

	return Model{
		game:     game,
		searcher: searcher,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		config:   cfg,
	}, nil
}

// newGame builds a game from the runtime config with a seeded RNG.
func newGame(cfg core.RuntimeConfig) (*game2048.Game, error) {
	return game2048.New(cfg.BoardSize,
		game2048.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		game2048.WithSpawn4Chance(cfg.Spawn4),
	)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case searchMsg:
		return m.handleSearchResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.config.Seed = time.Now().UnixNano()
		game, err := newGame(m.config)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.game = game
		m.hasHint = false
		m.thinking = false
		m.auto = false
		m.winSeen = false
		m.err = nil
		return m, nil
	}

	// Any key acknowledges the victory overlay; the game continues.
	if m.game.IsWon() && !m.winSeen {
		m.winSeen = true
	}

	// Move input is frozen while a search is running.
	if m.thinking {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Hint):
		if m.game.IsTerminal() {
			return m, nil
		}
		m.thinking = true
		return m, m.searchCmd(false)

	case key.Matches(msg, m.keys.Auto):
		if m.auto {
			m.auto = false
			return m, nil
		}
		if m.game.IsTerminal() {
			return m, nil
		}
		m.auto = true
		m.thinking = true
		return m, m.searchCmd(true)

	case key.Matches(msg, m.keys.Left):
		return m.applyMove(game2048.Left)
	case key.Matches(msg, m.keys.Right):
		return m.applyMove(game2048.Right)
	case key.Matches(msg, m.keys.Up):
		return m.applyMove(game2048.Up)
	case key.Matches(msg, m.keys.Down):
		return m.applyMove(game2048.Down)
	}

	return m, nil
}

// applyMove plays one move. Illegal moves are ignored silently; the board
// simply does not change.
func (m Model) applyMove(dir game2048.Direction) (tea.Model, tea.Cmd) {
	if _, err := m.game.Move(dir); err != nil {
		return m, nil
	}
	m.hasHint = false
	return m, nil
}

// searchCmd starts a background search on a snapshot of the current board.
// The command runs on its own goroutine, so it must not touch the live game.
func (m Model) searchCmd(auto bool) tea.Cmd {
	snapshot, err := game2048.NewFromBoard(m.game.Board())
	if err != nil {
		return func() tea.Msg {
			return searchMsg{err: err, auto: auto}
		}
	}
	searcher := m.searcher
	return func() tea.Msg {
		dir, err := searcher.BestMove(snapshot)
		return searchMsg{dir: dir, err: err, auto: auto}
	}
}

// handleSearchResult consumes a finished search: a hint is displayed, an
// autoplay result is applied and chained into the next search.
func (m Model) handleSearchResult(msg searchMsg) (tea.Model, tea.Cmd) {
	m.thinking = false

	if msg.err != nil {
		m.auto = false
		if !errors.Is(msg.err, game2048.ErrNoValidMove) {
			m.err = msg.err
		}
		return m, nil
	}

	if !msg.auto {
		m.hint = msg.dir
		m.hasHint = true
		return m, nil
	}

	if !m.auto {
		// Autoplay was switched off while the search ran; drop the result.
		return m, nil
	}

	if _, err := m.game.Move(msg.dir); err != nil {
		// The recommendation was computed for this exact board, so a
		// rejected move means the snapshot diverged. Stop autoplay.
		m.auto = false
		m.err = err
		return m, nil
	}

	if m.game.IsTerminal() {
		m.auto = false
		return m, nil
	}
	m.thinking = true
	return m, m.searchCmd(true)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// render draws the full frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()

	board := m.game.Board()
	boardW, boardH := boardDims(board)
	hudHeight := 3

	if m.config.ScreenW < boardW || m.config.ScreenH < boardH+hudHeight {
		m.screen.DrawTextCentered(m.config.ScreenH/2, "Window too small")
		m.screen.DrawTextCentered(m.config.ScreenH/2+1, "Please resize terminal")
		return
	}

	boardX := (m.config.ScreenW - boardW) / 2
	boardY := hudHeight

	renderHUD(m.screen, m.game, boardX, boardW)
	m.renderStatus(boardX, boardW)
	renderBoard(m.screen, board, boardX, boardY)

	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case m.err != nil:
		drawOverlay(m.screen, centerX, centerY, "ERROR", m.err.Error())
	case m.game.IsTerminal():
		maxStr := fmt.Sprintf("Max tile: %d", board.MaxTile())
		drawOverlay(m.screen, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	case m.game.IsWon() && !m.winSeen:
		drawOverlay(m.screen, centerX, centerY, "YOU WIN!", "Keep going for a higher score", "Press any key")
	}
}

// renderStatus draws the search status line between the HUD and the board.
func (m Model) renderStatus(boardX, boardW int) {
	var status string
	switch {
	case m.auto:
		status = "Autoplay... (A to stop)"
	case m.thinking:
		status = "Thinking..."
	case m.hasHint:
		status = fmt.Sprintf("Hint: %s", m.hint)
	}
	if status == "" {
		return
	}
	m.screen.DrawTextColored(boardX+(boardW-len(status))/2, 2, status, core.ColorGray)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg core.RuntimeConfig) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
