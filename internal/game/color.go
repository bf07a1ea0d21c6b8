package game

import "chosenoffset.com/proximity/internal/core/geom"

// ProximityAlpha maps the distance between two top-left corners to an alpha
// value: the truncated distance while it is within [0, 255], opaque beyond.
func ProximityAlpha(player, target geom.Vec2) uint8 {
	d := geom.Distance(player, target)
	if d >= 0 && d <= 255 {
		return uint8(d)
	}
	return 255
}

// UpdatePlayerColor fades the player according to its distance from the target.
func (g *Game) UpdatePlayerColor() {
	c := g.Config.Colors.Player
	c.A = ProximityAlpha(g.Player.Position(), g.Target.Position())
	g.Player.SetColor(c)
}
