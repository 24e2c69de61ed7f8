//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/gui"
	"github.com/sheikhrachel/go-life/session"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a json, yaml or toml config file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		cfg = utils.DefaultConfig()
	}

	grid, err := session.NewGrid(cfg)
	if err != nil {
		log.Fatalf("create grid: %+v", err)
	}
	if err = session.Seed(grid, cfg); err != nil {
		log.Fatalf("seed grid: %+v", err)
	}

	s := session.New(grid, cfg)
	w, h := s.RenderableSize()

	ebiten.SetWindowTitle("go-life")
	ebiten.SetTPS(s.TPS())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(gui.New(s)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
