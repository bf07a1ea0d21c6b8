package game

import "chosenoffset.com/proximity/internal/render"

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Config.Colors.Background)

	// Player first so the target is drawn over it when they overlap
	g.Player.Render(g.Renderer, screen)
	g.Target.Render(g.Renderer, screen)
}
