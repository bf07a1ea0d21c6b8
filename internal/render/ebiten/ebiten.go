package ebiten

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/proximity/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// FillRect draws a filled, axis-aligned rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, rect image.Rectangle, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.FillRect(ebitenImg,
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		clr, false)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// AppendKeyEvents reports this tick's key-down events followed by its key-up events.
func (m *EbitenInputManager) AppendKeyEvents(events []render.KeyEvent) []render.KeyEvent {
	m.pressed = inpututil.AppendJustPressedKeys(m.pressed[:0])
	m.released = inpututil.AppendJustReleasedKeys(m.released[:0])

	for _, k := range m.pressed {
		if key, ok := ebitenKeyToKey(k); ok {
			events = append(events, render.KeyEvent{Key: key, Down: true})
		}
	}
	for _, k := range m.released {
		if key, ok := ebitenKeyToKey(k); ok {
			events = append(events, render.KeyEvent{Key: key, Down: false})
		}
	}
	return events
}

// ebitenKeyToKey converts an ebiten.Key to a render.Key.
// Keys without a mapping are reported as not ok.
func ebitenKeyToKey(key ebiten.Key) (render.Key, bool) {
	switch key {
	case ebiten.KeyW:
		return render.KeyW, true
	case ebiten.KeyA:
		return render.KeyA, true
	case ebiten.KeyS:
		return render.KeyS, true
	case ebiten.KeyD:
		return render.KeyD, true
	case ebiten.KeyArrowUp:
		return render.KeyUp, true
	case ebiten.KeyArrowDown:
		return render.KeyDown, true
	case ebiten.KeyArrowLeft:
		return render.KeyLeft, true
	case ebiten.KeyArrowRight:
		return render.KeyRight, true
	default:
		return 0, false
	}
}

// MonotonicClock implements render.Clock on top of the runtime's monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewClock creates a clock whose tick zero is now.
func NewClock() render.Clock {
	return &MonotonicClock{start: time.Now()}
}

// Ticks returns the milliseconds elapsed since the clock was created.
func (c *MonotonicClock) Ticks() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
// Returning a fixed logical size makes Ebiten scale and letterbox the screen
// into the window.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
