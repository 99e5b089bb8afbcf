package climber

import (
	"math"

	"github.com/vovakirdan/sky-climber/internal/core"
)

// PlayerColor is the fill color of the player rectangle.
const PlayerColor = core.ColorRed

// Glyphs used by the terminal sink.
const (
	FillChar       = '█'
	BackgroundChar = '·'
)

// RectSink receives draw calls for one frame. Coordinates are world units.
type RectSink interface {
	Clear()
	DrawRect(b core.Box, c core.Color)
}

// Render draws one frame: clear, every obstacle colored by kind, then the player.
func (s *Simulation) Render(sink RectSink) {
	RenderSnapshot(s.Snapshot(), sink)
}

// RenderSnapshot draws a previously captured world.
func RenderSnapshot(snap Snapshot, sink RectSink) {
	sink.Clear()
	for _, o := range snap.Obstacles {
		sink.DrawRect(o.Box, o.Kind.Color())
	}
	sink.DrawRect(snap.Player.Box, PlayerColor)
}

// ScreenSink projects world rectangles onto a character screen.
// The bottom row is left free for a status line.
type ScreenSink struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewScreenSink creates a sink over dst for a world of the given size.
func NewScreenSink(dst *core.Screen, worldW, worldH float64) *ScreenSink {
	return &ScreenSink{screen: dst, worldW: worldW, worldH: worldH}
}

// PlayHeight is the number of rows available to the world.
func (s *ScreenSink) PlayHeight() int {
	return core.Max(s.screen.Height()-1, 1)
}

// Clear blanks the whole screen.
func (s *ScreenSink) Clear() {
	s.screen.Clear()
}

// Project converts a world box to cells, rounding outward so every
// rectangle covers at least one cell.
func (s *ScreenSink) Project(b core.Box) core.Rect {
	const eps = 1e-9

	sx := float64(s.screen.Width()) / s.worldW
	sy := float64(s.PlayHeight()) / s.worldH

	x0 := int(math.Floor(b.X*sx + eps))
	x1 := int(math.Ceil(b.Right()*sx - eps))
	y0 := int(math.Floor(b.Y*sy + eps))
	y1 := int(math.Ceil(b.Bottom()*sy - eps))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// DrawRect fills the projected rectangle, clipped to the play area.
func (s *ScreenSink) DrawRect(b core.Box, c core.Color) {
	r := s.Project(b)

	playH := s.PlayHeight()
	if r.Y >= playH {
		return
	}
	if r.Bottom() > playH {
		r.H = playH - r.Y
	}

	fill := FillChar
	if c == KindEmpty.Color() {
		fill = BackgroundChar
	}
	s.screen.FillRect(r, core.Cell{Rune: fill, Color: c})
}

// DrawStatus writes text on the reserved bottom row.
func (s *ScreenSink) DrawStatus(text string) {
	s.screen.DrawTextColor(0, s.screen.Height()-1, text, core.ColorGray)
}
