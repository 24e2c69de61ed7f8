package rules

import "github.com/sheikhrachel/go-life/cell"

/*
Conway returns the next state of a cell given its current state and the number
of live cells in its Moore neighborhood.

A dead cell with exactly 3 live neighbors is born, a live cell with anything
other than 2 or 3 live neighbors dies, every other cell keeps its state.
*/
func Conway(current cell.State, liveNeighbors int) cell.State {
	switch {
	case current == cell.Dead && liveNeighbors == 3:
		return cell.Live
	case current == cell.Live && liveNeighbors != 2 && liveNeighbors != 3:
		return cell.Dead
	default:
		return current
	}
}
