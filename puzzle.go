package main

import (
	"fmt"
	"math/rand"
)

const (
	gridSize  = 4
	slotCount = gridSize * gridSize
	tileCount = slotCount - 1
)

// Cell is one slot of the board: either the blank or a tile numbered 1..15.
type Cell uint8

// Blank is the single empty slot tiles slide into.
const Blank Cell = 0

// Tile returns the cell holding tile number n.
func Tile(n int) Cell {
	if n < 1 || n > tileCount {
		panic(fmt.Sprintf("slider: tile number out of range: %d", n))
	}
	return Cell(n)
}

// IsBlank reports whether the cell is the empty slot.
func (c Cell) IsBlank() bool { return c == Blank }

// Value returns the tile number, or 0 for the blank.
func (c Cell) Value() int { return int(c) }

// Grid is the 4x4 board, indexed [y][x] with (0, 0) at the top left.
type Grid [gridSize][gridSize]Cell

// Direction is the direction the blank moves during a move; equivalently, a
// tile slides from that direction into the blank's old slot.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step. Up decreases y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Puzzle owns the board and every operation that mutates it. Nothing else
// holds a reference to the grid; Grid hands out copies.
type Puzzle struct {
	grid Grid
	rng  *rand.Rand
}

// NewPuzzle returns a puzzle on a fresh random, solvable arrangement.
func NewPuzzle(rng *rand.Rand) *Puzzle {
	p := &Puzzle{rng: rng}
	p.Shuffle()
	return p
}

// NewDemoPuzzle returns a puzzle on the fixed demonstration grid: the solved
// board with the 15 tile pulled one slot out of its corner, so a single slide
// to the left wins. Restarting reshuffles randomly with rng as usual.
func NewDemoPuzzle(rng *rand.Rand) *Puzzle {
	return &Puzzle{grid: gridOf(demoSlots()), rng: rng}
}

// Move slides the tile next to the blank in direction d into the blank,
// moving the blank one slot toward d. A move off the board is not an error:
// the grid stays untouched and Move reports false.
func (p *Puzzle) Move(d Direction) bool {
	bx, by := p.blank()
	dx, dy := d.Delta()
	tx, ty := bx+dx, by+dy
	if tx < 0 || tx >= gridSize || ty < 0 || ty >= gridSize {
		return false
	}
	p.grid[by][bx], p.grid[ty][tx] = p.grid[ty][tx], Blank
	return true
}

// Solved reports whether the board reads 1..15 then the blank, row major.
func (p *Puzzle) Solved() bool {
	return p.grid == solvedGrid()
}

// Grid returns a copy of the current board.
func (p *Puzzle) Grid() Grid {
	return p.grid
}

// blank returns the blank's coordinates. Exactly one blank exists on any
// legally constructed board; a board without one is corrupt.
func (p *Puzzle) blank() (int, int) {
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			if p.grid[y][x].IsBlank() {
				return x, y
			}
		}
	}
	panic("slider: grid has no blank cell")
}
