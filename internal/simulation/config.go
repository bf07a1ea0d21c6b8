// Package simulation provides configuration for the demo's window, movement
// and colors. Values are compiled in; nothing is read from disk.
package simulation

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrInvalidWindow   = errors.New("invalid window size")
	ErrInvalidPadding  = errors.New("padding leaves no spawn area")
	ErrInvalidBlock    = errors.New("invalid block size")
	ErrInvalidVelocity = errors.New("invalid player velocity")
)

// Config holds all tunables for the demo.
type Config struct {
	// Window and logical screen
	Window WindowConfig `json:"window"`

	// Player movement and entity sizes
	Player PlayerConfig `json:"player"`

	// Colors used when drawing
	Colors ColorConfig `json:"colors"`
}

// WindowConfig defines the window and the logical screen it letterboxes.
type WindowConfig struct {
	Title     string `json:"title"`
	Width     int    `json:"width"`     // Logical width in pixels (also the initial window width)
	Height    int    `json:"height"`    // Logical height in pixels
	Resizable bool   `json:"resizable"` // Allow the user to resize the window
	Padding   int    `json:"padding"`   // Distance from every edge that spawn positions keep
}

// PlayerConfig defines entity size and movement speed.
type PlayerConfig struct {
	BlockSize float64 `json:"block_size"` // Width and height of both squares
	Velocity  float64 `json:"velocity"`   // Pixels per millisecond
}

// ColorConfig defines the fixed colors of the scene.
type ColorConfig struct {
	Background color.NRGBA `json:"background"`
	Player     color.NRGBA `json:"player"` // Alpha is replaced every frame
	Target     color.NRGBA `json:"target"`
}

// DefaultConfig returns the values the demo ships with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Game",
			Width:     1280,
			Height:    720,
			Resizable: true,
			Padding:   200,
		},
		Player: PlayerConfig{
			BlockSize: 50,
			Velocity:  0.5,
		},
		Colors: ColorConfig{
			Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
			Player:     color.NRGBA{R: 245, G: 66, B: 78, A: 255},
			Target:     color.NRGBA{R: 78, G: 255, B: 45, A: 255},
		},
	}
}

// Validate checks that the configuration describes a playable scene.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Player.BlockSize <= 0 ||
		c.Player.BlockSize > float64(c.Window.Width) ||
		c.Player.BlockSize > float64(c.Window.Height) {
		return fmt.Errorf("%w: %g", ErrInvalidBlock, c.Player.BlockSize)
	}
	// Spawn range is [padding, extent-padding] and the block has to fit after it
	pad := float64(c.Window.Padding)
	if pad < 0 || 2*pad+c.Player.BlockSize > float64(c.Window.Width) || 2*pad+c.Player.BlockSize > float64(c.Window.Height) {
		return fmt.Errorf("%w: padding %d in %dx%d", ErrInvalidPadding, c.Window.Padding, c.Window.Width, c.Window.Height)
	}
	if c.Player.Velocity <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidVelocity, c.Player.Velocity)
	}
	return nil
}
