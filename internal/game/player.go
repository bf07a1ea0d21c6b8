package game

import (
	"chosenoffset.com/proximity/internal/core/geom"
	"chosenoffset.com/proximity/internal/entity"
	"chosenoffset.com/proximity/internal/input"
	"chosenoffset.com/proximity/internal/render"
)

// Movement keys. WASD and the arrow keys are interchangeable.
var (
	upKeys    = []render.Key{render.KeyW, render.KeyUp}
	downKeys  = []render.Key{render.KeyS, render.KeyDown}
	leftKeys  = []render.Key{render.KeyA, render.KeyLeft}
	rightKeys = []render.Key{render.KeyD, render.KeyRight}
)

// Direction derives the raw movement direction from the keys held right now.
// Nothing carries over from earlier frames: once a key is released its axis
// drops back to zero. When opposite keys are both held, left and up win.
func Direction(s *input.State) geom.Vec2 {
	var dir geom.Vec2

	switch {
	case s.HeldAny(leftKeys...):
		dir.X = -1
	case s.HeldAny(rightKeys...):
		dir.X = 1
	}

	switch {
	case s.HeldAny(upKeys...):
		dir.Y = -1
	case s.HeldAny(downKeys...):
		dir.Y = 1
	}

	return dir
}

// UpdatePlayer moves the player for a frame lasting delta milliseconds.
func (g *Game) UpdatePlayer(delta float64) {
	MovePlayer(g.Player, Direction(g.Input), g.Config.Player.Velocity, delta, g.Bounds())
}

// MovePlayer moves e along the normalized dir at velocity pixels per
// millisecond. Each axis is checked on its own: a step that would put the
// box outside [0, bounds] on that axis is dropped, the other axis still moves.
func MovePlayer(e *entity.Entity, dir geom.Vec2, velocity, delta float64, bounds geom.Vec2) {
	dir = dir.Normalized()
	size := e.Size()

	if dir.X != 0 {
		x := e.Position().X + dir.X*velocity*delta
		if x >= 0 && x+size.X <= bounds.X {
			e.Move(delta, geom.Vec2{X: dir.X * velocity})
		}
	}

	if dir.Y != 0 {
		y := e.Position().Y + dir.Y*velocity*delta
		if y >= 0 && y+size.Y <= bounds.Y {
			e.Move(delta, geom.Vec2{Y: dir.Y * velocity})
		}
	}
}
