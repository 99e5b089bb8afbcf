package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sky-climber/internal/core"
)

// Background is the window clear color.
var Background = color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff}

// palette maps core.Color to window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:  {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorRed:      {R: 0xe0, G: 0x3c, B: 0x31, A: 0xff},
	core.ColorGreen:    {R: 0x3c, G: 0xb3, B: 0x4a, A: 0xff},
	core.ColorBlue:     {R: 0x2f, G: 0x6f, B: 0xde, A: 0xff},
	core.ColorGray:     {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorDarkGray: {R: 0x22, G: 0x26, B: 0x30, A: 0xff},
}

// ColorOf returns the window color for c.
func ColorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// ImageSink draws world rectangles onto an ebiten image, scaling the
// world to the image bounds.
type ImageSink struct {
	dst    *ebiten.Image
	scaleX float32
	scaleY float32
}

// NewImageSink creates a sink over dst for a world of the given size.
func NewImageSink(dst *ebiten.Image, worldW, worldH float64) *ImageSink {
	b := dst.Bounds()
	sx, sy := Scale(b.Dx(), b.Dy(), worldW, worldH)
	return &ImageSink{dst: dst, scaleX: sx, scaleY: sy}
}

// Scale returns the world-to-pixel factors for an image of w x h pixels.
func Scale(w, h int, worldW, worldH float64) (sx, sy float32) {
	sx, sy = 1, 1
	if worldW > 0 {
		sx = float32(float64(w) / worldW)
	}
	if worldH > 0 {
		sy = float32(float64(h) / worldH)
	}
	return sx, sy
}

// Project converts a world box to pixel coordinates.
func (s *ImageSink) Project(b core.Box) (x, y, w, h float32) {
	return float32(b.X) * s.scaleX, float32(b.Y) * s.scaleY,
		float32(b.W) * s.scaleX, float32(b.H) * s.scaleY
}

// Clear fills the image with the background color.
func (s *ImageSink) Clear() {
	s.dst.Fill(Background)
}

// DrawRect fills the projected box.
func (s *ImageSink) DrawRect(b core.Box, c core.Color) {
	x, y, w, h := s.Project(b)
	vector.FillRect(s.dst, x, y, w, h, ColorOf(c), false)
}
