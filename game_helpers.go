package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-life/board"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame sets up the grid, seeds it and wraps it in a session
func initializeGame(config utils.Config) (*session.Session, *board.TerminalRenderer, error) {
	grid, err := session.NewGrid(config)
	if err != nil {
		return nil, nil, err
	}
	if err = session.Seed(grid, config); err != nil {
		return nil, nil, err
	}
	return session.New(grid, config), &board.TerminalRenderer{}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.Parallel)
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		grid.Width(), grid.Height(), config.Pattern, grid.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(config.StartDelay)
}

// displayGameStatus shows the current game status
func displayGameStatus(s *session.Session, config utils.Config, runStart int) {
	var (
		grid    = s.Grid()
		stats   = s.Stats()
		living  = grid.Population()
		density = float64(living) / float64(grid.Width()*grid.Height()) * 100
	)

	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", grid.BoundingBoxSize())
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | History: %d%s\n",
		stats.TotalGenerations, living, density, status(grid), grid.HistoryLen(), boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if stats.TotalGenerations > runStart {
		fmt.Printf("Generations since restart: %d\n", stats.TotalGenerations-runStart)
	}
	fmt.Println()
}

func status(grid *model.Grid) string {
	switch grid.Termination() {
	case model.Extinct:
		return "Extinct"
	case model.Repeated:
		return "Repeating"
	default:
		return "Active"
	}
}

// restartGame reseeds the grid with a fresh seed and resumes the run
func restartGame(s *session.Session, config utils.Config) error {
	fmt.Printf("\n🔄 Restarting...\n")

	config.Seed += int64(s.Stats().Runs)
	if config.Pattern == utils.PatternEmpty {
		config.Pattern = utils.PatternPatterns
	}
	if err := session.Seed(s.Grid(), config); err != nil {
		return err
	}

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", s.Grid().Population())
	time.Sleep(config.StartDelay)
	s.Start()
	return nil
}
