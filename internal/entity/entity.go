// Package entity provides the rectangular on-screen objects the demo moves and draws.
package entity

import (
	"image"
	"image/color"

	"chosenoffset.com/proximity/internal/core/geom"
	"chosenoffset.com/proximity/internal/render"
)

// Entity is a filled rectangle with a float position and size.
// RenderRect always holds the integer-truncated position and size.
type Entity struct {
	position geom.Vec2
	size     geom.Vec2
	color    color.NRGBA

	renderRect image.Rectangle
}

// New creates an entity at position with the given size. Its color starts
// fully transparent black.
func New(position, size geom.Vec2) *Entity {
	e := &Entity{position: position, size: size}
	e.syncRect()
	return e
}

// Position returns the top-left corner of the entity.
func (e *Entity) Position() geom.Vec2 { return e.position }

// Size returns the width and height of the entity.
func (e *Entity) Size() geom.Vec2 { return e.size }

// Color returns the entity's non-premultiplied color.
func (e *Entity) Color() color.NRGBA { return e.color }

// RenderRect returns the rectangle used for drawing.
func (e *Entity) RenderRect() image.Rectangle { return e.renderRect }

// SetColor replaces the entity's color.
func (e *Entity) SetColor(c color.NRGBA) {
	e.color = c
}

// SetPosition moves the entity to position.
func (e *Entity) SetPosition(position geom.Vec2) {
	e.position = position
	e.syncRect()
}

// SetSize changes the entity's width and height.
func (e *Entity) SetSize(size geom.Vec2) {
	e.size = size
	e.syncRect()
}

// Move displaces the entity by offset scaled by delta.
func (e *Entity) Move(delta float64, offset geom.Vec2) {
	e.SetPosition(e.position.Add(offset.Scale(delta)))
}

// Render fills the entity's render rectangle with its color.
func (e *Entity) Render(r render.Renderer, dst render.Image) {
	r.FillRect(dst, e.renderRect, e.color)
}

func (e *Entity) syncRect() {
	x, y := int(e.position.X), int(e.position.Y)
	e.renderRect = image.Rect(x, y, x+int(e.size.X), y+int(e.size.Y))
}
