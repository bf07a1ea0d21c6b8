package game

import (
	"log"
	"math/rand"

	"chosenoffset.com/proximity/internal/core/geom"
	"chosenoffset.com/proximity/internal/entity"
	"chosenoffset.com/proximity/internal/input"
	"chosenoffset.com/proximity/internal/render"
	"chosenoffset.com/proximity/internal/simulation"
)

// Game holds all game state and logic.
type Game struct {
	Config   *simulation.Config
	Renderer render.Renderer
	InputMgr render.InputManager
	Clock    render.Clock

	Input  *input.State
	Player *entity.Entity
	Target *entity.Entity

	// Tick of the previous update, used to derive the frame delta.
	// Unset until the first Update so window creation is not counted.
	lastTick uint64
	started  bool
}

// New creates a game with the player and target placed at random positions
// inside the padded screen area.
func New(cfg *simulation.Config, r render.Renderer, inputMgr render.InputManager, clock render.Clock, rng *rand.Rand) *Game {
	size := geom.Vec2{X: cfg.Player.BlockSize, Y: cfg.Player.BlockSize}

	g := &Game{
		Config:   cfg,
		Renderer: r,
		InputMgr: inputMgr,
		Clock:    clock,
		Input:    input.NewState(),
		Player:   entity.New(SpawnPosition(rng, cfg), size),
		Target:   entity.New(SpawnPosition(rng, cfg), size),
	}
	g.Target.SetColor(cfg.Colors.Target)

	log.Printf("Player spawned at (%.1f, %.1f)", g.Player.Position().X, g.Player.Position().Y)
	log.Printf("Target spawned at (%.1f, %.1f)", g.Target.Position().X, g.Target.Position().Y)

	return g
}

// Update runs one frame: reset per-frame input, recolor the player from
// last frame's positions, poll key events and move the player by the time
// elapsed since the previous frame. The first frame has a delta of zero.
func (g *Game) Update() error {
	g.Input.Reset()

	g.UpdatePlayerColor()

	current := g.Clock.Ticks()
	if !g.started {
		g.lastTick = current
		g.started = true
	}
	delta := float64(current - g.lastTick)

	g.Input.Poll(g.InputMgr)

	g.UpdatePlayer(delta)

	g.lastTick = current
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

// Bounds returns the logical screen extents entities must stay inside.
func (g *Game) Bounds() geom.Vec2 {
	return geom.Vec2{X: float64(g.Config.Window.Width), Y: float64(g.Config.Window.Height)}
}

// SpawnPosition picks a random top-left corner at least Padding pixels away
// from the left and top edges, and never so close to the right or bottom edge
// that a block would stick out.
func SpawnPosition(rng *rand.Rand, cfg *simulation.Config) geom.Vec2 {
	pad := float64(cfg.Window.Padding)
	return geom.Vec2{
		X: randomRange(rng, pad, spawnMax(float64(cfg.Window.Width), pad, cfg.Player.BlockSize)),
		Y: randomRange(rng, pad, spawnMax(float64(cfg.Window.Height), pad, cfg.Player.BlockSize)),
	}
}

func spawnMax(extent, pad, block float64) float64 {
	hi := extent - pad
	if hi > extent-block {
		hi = extent - block
	}
	return hi
}

func randomRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
