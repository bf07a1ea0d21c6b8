package render

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game logic only ever draws through it, so tests can
// record draw calls without opening a window.
type Renderer interface {
	// FillRect fills the rectangle r on dst with clr, blending with whatever
	// is already there according to clr's alpha.
	FillRect(dst Image, r image.Rectangle, clr color.Color)
}

// Image represents a renderable surface that can be drawn to.
type Image interface {
	// Size returns the width and height of the surface.
	Size() (width, height int)

	// Fill replaces every pixel with clr.
	Fill(clr color.Color)
}

// Key represents a keyboard key the demo understands.
type Key int

// Key constants for the movement keys
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key transition reported by the backend.
type KeyEvent struct {
	Key  Key
	Down bool
}

// InputManager handles input from the user.
type InputManager interface {
	// AppendKeyEvents appends the key transitions that happened since the
	// previous call to events and returns the extended slice. Keys the demo
	// does not know about are never reported.
	AppendKeyEvents(events []KeyEvent) []KeyEvent
}

// Clock is a monotonic millisecond tick counter.
type Clock interface {
	Ticks() uint64
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The engine letterboxes the logical screen into the window.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that returns nil when the window is closed
	// and an error if the window or graphics context cannot be created.
	RunGame(game Game) error
}
