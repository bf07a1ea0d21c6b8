package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"chosenoffset.com/proximity/internal/game"
	ebitenrender "chosenoffset.com/proximity/internal/render/ebiten"
	"chosenoffset.com/proximity/internal/simulation"
)

func main() {
	// Failures are reported on stdout
	log.SetOutput(os.Stdout)

	if err := run(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

func run() error {
	cfg := simulation.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	clock := ebitenrender.NewClock()
	engine := ebitenrender.NewEngine()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(cfg, renderer, inputMgr, clock, rng)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Printf("Starting game (%dx%d)...", cfg.Window.Width, cfg.Window.Height)
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	log.Println("Window closed")
	return nil
}
