package render

import (
	"github.com/automoto/spriteplay/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Replay draws the display list onto screen in recording order. Calls
// made with the camera on go through the transform they were recorded
// with; backgrounds always cover the whole screen.
func (c *Canvas) Replay(screen *ebiten.Image) {
	for _, cmd := range c.commands {
		if cmd.Kind == BackgroundCmd {
			screen.Fill(cmd.Fill)
			continue
		}

		x, y := cmd.ToScreen(cmd.X, cmd.Y)
		zoom := cmd.Scale()
		weight := float32(cmd.StrokeWeight * zoom)

		switch cmd.Kind {
		case RectCmd:
			w, h := float32(cmd.W*zoom), float32(cmd.H*zoom)
			if !cmd.NoFill {
				vector.FillRect(screen, float32(x), float32(y), w, h, cmd.Fill, false)
			}
			if !cmd.NoStroke && cmd.StrokeWeight > 0 {
				vector.StrokeRect(screen, float32(x), float32(y), w, h, weight, cmd.Stroke, false)
			}
		case CircleCmd:
			r := float32(cmd.W / 2 * zoom)
			if !cmd.NoFill {
				vector.DrawFilledCircle(screen, float32(x), float32(y), r, cmd.Fill, true)
			}
			if !cmd.NoStroke && cmd.StrokeWeight > 0 {
				vector.StrokeCircle(screen, float32(x), float32(y), r, weight, cmd.Stroke, true)
			}
		case LineCmd:
			if !cmd.NoStroke {
				x2, y2 := cmd.ToScreen(cmd.X2, cmd.Y2)
				vector.StrokeLine(screen, float32(x), float32(y), float32(x2), float32(y2), weight, cmd.Stroke, true)
			}
		case TextCmd:
			if !cmd.NoFill {
				text.Draw(screen, cmd.Text, fonts.Regular.Sized(cmd.TextSize*zoom), int(x), int(y), cmd.Fill)
			}
		}
	}
}
