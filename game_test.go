package main

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// keyMsg turns a readable key name into the message bubbletea would deliver.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m GameModel, keys ...string) (GameModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(GameModel)
	}
	return m, cmd
}

func modelWithBoard(rows [gridSize][gridSize]int) GameModel {
	m := NewGameModel(80, 24, false)
	m.puzzle = puzzleFromRows(rows)
	return m
}

func TestNewGameModelStartsShuffled(t *testing.T) {
	t.Parallel()
	m := NewGameModel(80, 24, false)
	requireLegalBoard(t, m.puzzle.Grid())
	requireReachable(t, m.puzzle.Grid())
}

func TestDemoWinInOneKey(t *testing.T) {
	t.Parallel()
	m := NewGameModel(80, 24, true)
	require.False(t, m.puzzle.Solved())

	m, _ = press(t, m, "left")
	require.True(t, m.puzzle.Solved())
	require.Equal(t, 1, m.moves)
	require.Contains(t, m.View(), "Solved! Press R to play again or Q to quit.")
}

func TestSlideKeys(t *testing.T) {
	t.Parallel()

	// Blank in the middle so every direction has a tile to slide.
	rows := [gridSize][gridSize]int{
		{1, 2, 3, 4},
		{5, 0, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	}

	// Pressing an arrow slides a tile that way, so the blank steps in the
	// opposite direction.
	testCases := []struct {
		key    string
		bx, by int
	}{
		{"up", 1, 2},
		{"w", 1, 2},
		{"down", 1, 0},
		{"s", 1, 0},
		{"left", 2, 1},
		{"a", 2, 1},
		{"right", 0, 1},
		{"d", 0, 1},
	}
	for _, testCase := range testCases {
		t.Run(testCase.key, func(t *testing.T) {
			t.Parallel()
			m, _ := press(t, modelWithBoard(rows), testCase.key)
			bx, by := m.puzzle.blank()
			require.Equal(t, testCase.bx, bx)
			require.Equal(t, testCase.by, by)
			require.Equal(t, 1, m.moves)
		})
	}
}

func TestSlideIntoWallIgnored(t *testing.T) {
	t.Parallel()

	// On the solved board the blank sits bottom right, so no tile can slide
	// up or left into it from off the board.
	for _, k := range []string{"up", "left"} {
		t.Run(k, func(t *testing.T) {
			m := modelWithBoard([gridSize][gridSize]int{
				{1, 2, 3, 4},
				{5, 6, 7, 8},
				{9, 10, 11, 12},
				{13, 14, 15, 0},
			})
			before := m.puzzle.Grid()
			m, _ = press(t, m, k)
			require.Equal(t, before, m.puzzle.Grid())
			require.Equal(t, 0, m.moves)
		})
	}
}

func TestRestartKey(t *testing.T) {
	t.Parallel()
	m := NewGameModel(80, 24, true)
	m, _ = press(t, m, "left")
	require.Equal(t, 1, m.moves)

	m, _ = press(t, m, "r")
	require.Equal(t, 0, m.moves)
	requireLegalBoard(t, m.puzzle.Grid())
	requireReachable(t, m.puzzle.Grid())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()
	for _, k := range []string{"q", "Q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			t.Parallel()
			_, cmd := press(t, NewGameModel(80, 24, true), k)
			require.NotNil(t, cmd)
			require.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	t.Parallel()
	m := NewGameModel(80, 24, true)
	before := m.puzzle.Grid()

	m, cmd := press(t, m, "x", "1", "z")
	require.Nil(t, cmd)
	require.Equal(t, before, m.puzzle.Grid())
	require.Equal(t, 0, m.moves)
}

func TestWindowSizeResizesView(t *testing.T) {
	t.Parallel()
	m := NewGameModel(0, 0, true)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 42})
	m = next.(GameModel)
	require.Equal(t, 100, m.width)
	require.Equal(t, 42, m.height)
}

func TestViewShowsWholeBoard(t *testing.T) {
	t.Parallel()
	m := modelWithBoard([gridSize][gridSize]int{
		{1, 2, 3, 4},
		{5, 0, 6, 7},
		{8, 9, 10, 11},
		{12, 13, 14, 15},
	})
	view := m.View()

	require.Contains(t, view, "Sliding Puzzle")
	for n := 1; n <= tileCount; n++ {
		require.Contains(t, view, fmt.Sprintf("%02d", n))
	}
	require.Contains(t, view, "Moves: 0")
	require.Contains(t, view, "R to restart")
	require.NotContains(t, view, "Solved!")
}

func TestViewFallsBackToDefaultSize(t *testing.T) {
	t.Parallel()
	m := NewGameModel(0, 0, true)
	view := m.View()
	require.NotEmpty(t, view)
	require.Contains(t, view, "Sliding Puzzle")

	// An 80x24 canvas means 24 lines exactly.
	require.Len(t, strings.Split(view, "\n"), 24)
}
