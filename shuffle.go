package main

// shuffleSwaps is how many random slot transpositions a shuffle performs.
// The exact count only matters through its parity, which Shuffle repairs
// afterward anyway.
const shuffleSwaps = 50

// Shuffle replaces the board with a fresh random, solvable arrangement,
// discarding whatever was there. Restarting mid-game is just another shuffle.
//
// It scrambles the flat solved sequence with 50 transpositions of two
// uniformly chosen slots. The two indices may coincide (a harmless no-op
// swap) and the blank takes part like any other slot, so it ends up at a
// random position. Either of those can leave the arrangement on the wrong
// side of the 15-puzzle parity invariant, so the shuffle finishes by checking
// solvability and, if needed, swapping one pair of tiles: that flips the
// permutation parity without moving the blank.
func (p *Puzzle) Shuffle() {
	slots := solvedSlots()
	for i := 0; i < shuffleSwaps; i++ {
		a := p.rng.Intn(slotCount)
		b := p.rng.Intn(slotCount)
		slots[a], slots[b] = slots[b], slots[a]
	}
	if !solvable(slots) {
		i, j := firstTwoTiles(slots)
		slots[i], slots[j] = slots[j], slots[i]
	}
	p.grid = gridOf(slots)
}

// solvable implements the standard parity test for a width-4 board: the
// arrangement is reachable from the solved grid iff the number of inversions
// among the tiles (read row major, blank skipped) plus the blank's row
// counted 1-based from the bottom is odd.
func solvable(slots [slotCount]Cell) bool {
	inversions := 0
	blankRow := 0
	for i := 0; i < slotCount; i++ {
		if slots[i].IsBlank() {
			blankRow = i / gridSize
			continue
		}
		for j := i + 1; j < slotCount; j++ {
			if !slots[j].IsBlank() && slots[i] > slots[j] {
				inversions++
			}
		}
	}
	return (inversions+gridSize-blankRow)%2 == 1
}

// firstTwoTiles returns the indices of the first two non-blank slots.
func firstTwoTiles(slots [slotCount]Cell) (int, int) {
	first := -1
	for i, c := range slots {
		if c.IsBlank() {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		return first, i
	}
	panic("slider: fewer than two tiles in grid")
}

// solvedSlots returns the canonical winning arrangement as a flat row-major
// sequence: tiles 1..15 followed by the blank.
func solvedSlots() [slotCount]Cell {
	var slots [slotCount]Cell
	for i := 0; i < tileCount; i++ {
		slots[i] = Cell(i + 1)
	}
	slots[slotCount-1] = Blank
	return slots
}

// demoSlots is solvedSlots with the last two slots exchanged: one legal move
// away from winning.
func demoSlots() [slotCount]Cell {
	slots := solvedSlots()
	slots[slotCount-2], slots[slotCount-1] = slots[slotCount-1], slots[slotCount-2]
	return slots
}

// gridOf arranges a flat row-major sequence into a 4x4 grid.
func gridOf(slots [slotCount]Cell) Grid {
	var g Grid
	for i, c := range slots {
		g[i/gridSize][i%gridSize] = c
	}
	return g
}

func solvedGrid() Grid {
	return gridOf(solvedSlots())
}
