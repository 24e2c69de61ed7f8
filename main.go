package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a json, yaml or toml config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	s, renderer, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to start: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, s.Grid())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(s.Interval())
	defer ticker.Stop()

	runStart := 0
	s.Start()

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			printFinalStats(s.Stats())
			return
		case <-ticker.C:
		}

		cause := s.Tick()

		renderer.Clear()
		displayGameStatus(s, config, runStart)
		renderer.Display(s.Grid())

		if config.MaxGenerations > 0 && s.Stats().TotalGenerations >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		if cause == model.NotTerminated {
			continue
		}

		fmt.Printf("⏹  Halted after %d generations: %s\n", s.Grid().Generation(), cause)
		if !config.AutoRestart {
			break
		}
		if err = restartGame(s, config); err != nil {
			fmt.Printf("Failed to restart: %+v\n", err)
			break
		}
		runStart = s.Stats().TotalGenerations
	}
	printFinalStats(s.Stats())
}

func printFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds, %d finished runs %v\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.Runs, stats.Halts)
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
