package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-life/cell"
)

// Patterns are laid out [row][col] and clipped at the grid edges

var (
	gliderPattern = [][]cell.State{
		{cell.Dead, cell.Live, cell.Dead},
		{cell.Dead, cell.Dead, cell.Live},
		{cell.Live, cell.Live, cell.Live},
	}
	blinkerPattern = [][]cell.State{
		{cell.Live, cell.Live, cell.Live},
	}
	blockPattern = [][]cell.State{
		{cell.Live, cell.Live},
		{cell.Live, cell.Live},
	}
)

// NewRand returns a deterministic source for Randomize
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func (g *Grid) stamp(startRow, startCol int, pattern [][]cell.State) {
	for dr, line := range pattern {
		for dc, state := range line {
			row, col := startRow+dr, startCol+dc
			if row < 0 || row >= g.height || col < 0 || col >= g.width {
				continue
			}
			g.cur.cells[row][col] = state
		}
	}
	g.cur.touch()
	g.repeated = false
}

// AddGlider adds a glider with its top-left corner at (row, col)
func (g *Grid) AddGlider(row, col int) {
	g.stamp(row, col, gliderPattern)
}

// AddBlinker adds a horizontal period-2 blinker starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.stamp(row, col, blinkerPattern)
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, blockPattern)
}

// Randomize makes each cell live with probability density. Existing live cells
// are overwritten.
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for row := range g.height {
		for col := range g.width {
			state := cell.Dead
			if rng.Float64() < density {
				state = cell.Live
			}
			g.cur.cells[row][col] = state
		}
	}
	g.cur.touch()
	g.repeated = false
}

// SeedPatterns clears the grid, sprinkles random life at density, then lays a
// few gliders and blinkers on top when the board is large enough
func (g *Grid) SeedPatterns(density float64, rng *rand.Rand) {
	g.Clear()
	g.Randomize(density, rng)

	if g.width < 10 || g.height < 10 {
		return
	}
	g.AddGlider(5, 5)
	if g.width >= 20 && g.height >= 15 {
		g.AddGlider(5, g.width-8)
	}
	g.AddBlinker(g.height/4, g.width/4)
	if g.width >= 30 {
		g.AddBlinker(3*g.height/4, 3*g.width/4)
	}
}
