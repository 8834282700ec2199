package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Tile cells are 6x3 on screen, border included.
const (
	tileWidth  = 6
	tileHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	// Dim info block under the board for counters and key help.
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Margin(1, 0, 0, 0)

	winStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	// Tile borders classify tiles by parity: gray for even numbers, blue for
	// odd. Purely cosmetic.
	evenTileStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("7")).
			Padding(0, 1)

	oddTileStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 1)

	// The blank keeps a full tile footprint so the board never shifts.
	blankCellStyle = lipgloss.NewStyle().Width(tileWidth).Height(tileHeight)

	// The outer frame announces the win: green once the board is in order,
	// red while it is not.
	frameStyle = func(solved bool) lipgloss.Style {
		color := lipgloss.Color("9")
		if solved {
			color = lipgloss.Color("10")
		}
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(color).
			Padding(0, 2)
	}

	formatCell = func(c Cell) string {
		if c.IsBlank() {
			return blankCellStyle.Render("")
		}
		s := oddTileStyle
		if c.Value()%2 == 0 {
			s = evenTileStyle
		}
		return s.Render(fmt.Sprintf("%02d", c.Value()))
	}
)
