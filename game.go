package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GameModel drives one sliding-puzzle session: a single puzzle plus the
// cosmetic counters shown under the board. Turn based throughout, one key
// press in, one repaint out.
type GameModel struct {
	puzzle    *Puzzle
	KeyMap    KeyMap
	width     int
	height    int
	moves     int
	startTime time.Time
	solvedAt  time.Duration
}

// NewGameModel builds a session model. When demo is set the board starts on
// the fixed demonstration layout instead of a random shuffle.
func NewGameModel(width, height int, demo bool) GameModel {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	puzzle := NewPuzzle(rng)
	if demo {
		puzzle = NewDemoPuzzle(rng)
	}

	return GameModel{
		puzzle:    puzzle,
		KeyMap:    Keys,
		width:     width,
		height:    height,
		startTime: time.Now(),
	}
}

func (m GameModel) Init() tea.Cmd {
	return nil
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.KeyMap.Restart):
			m.restart()

		case key.Matches(msg, m.KeyMap.Up):
			m.slide(Up)

		case key.Matches(msg, m.KeyMap.Down):
			m.slide(Down)

		case key.Matches(msg, m.KeyMap.Left):
			m.slide(Left)

		case key.Matches(msg, m.KeyMap.Right):
			m.slide(Right)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// slide moves a tile one step in direction d. The tile that moves is the one
// on the far side of the blank, so the blank itself travels the other way.
// Sliding into a wall is ignored.
func (m *GameModel) slide(d Direction) {
	if !m.puzzle.Move(d.Opposite()) {
		return
	}
	m.moves++
	if m.puzzle.Solved() {
		m.solvedAt = time.Since(m.startTime)
	}
}

// restart throws the board away and reshuffles, zeroing the counters.
func (m *GameModel) restart() {
	m.puzzle.Shuffle()
	m.moves = 0
	m.startTime = time.Now()
	m.solvedAt = 0
}

func (m GameModel) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	mainView := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Sliding Puzzle"),
		m.renderBoard(),
		m.renderInfo(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, mainView)
}

func (m GameModel) renderBoard() string {
	grid := m.puzzle.Grid()

	rows := make([]string, 0, gridSize)
	for y := 0; y < gridSize; y++ {
		cells := make([]string, 0, gridSize)
		for x := 0; x < gridSize; x++ {
			cells = append(cells, formatCell(grid[y][x]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	board := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return frameStyle(m.puzzle.Solved()).Render(board)
}

func (m GameModel) renderInfo() string {
	solved := m.puzzle.Solved()

	elapsed := time.Since(m.startTime).Round(time.Second)
	if solved {
		elapsed = m.solvedAt
	}
	counter := fmt.Sprintf("Moves: %d  Time: %02d:%02d",
		m.moves, int(elapsed.Minutes()), int(elapsed.Seconds())%60)

	if solved {
		return lipgloss.JoinVertical(lipgloss.Center,
			infoStyle.Render(counter),
			winStyle.Render("Solved! Press R to play again or Q to quit."),
		)
	}
	return infoStyle.Render(counter + "\nArrows or WASD to move. R to restart. Q to quit.")
}
