package game

import "drift/internal/sim"

// DrawTrack draws the faint lane grid and the walls. The rect program must be
// bound with the world camera.
func (rend *Renderer) DrawTrack(t sim.Track) {
	lane := Palette.Lane.F32(LaneLineAlpha)
	for y := LaneMargin; y < t.Height-LaneMargin; y += LaneSpacingY {
		rend.DrawBox(LaneMargin, y-LaneWidth/2, t.Width-2*LaneMargin, LaneWidth, lane)
	}
	for x := LaneMargin; x < t.Width-LaneMargin; x += LaneSpacingX {
		rend.DrawBox(x-LaneWidth/2, LaneMargin, LaneWidth, t.Height-2*LaneMargin, lane)
	}

	edge := Palette.WallEdge.F32(1)
	fill := Palette.Wall.F32(1)
	for _, w := range t.Walls {
		rend.DrawBox(w.X, w.Y, w.W, w.H, edge)
		rend.DrawBox(w.X+1.5, w.Y+1.5, w.W-3, w.H-3, fill)
	}
}
