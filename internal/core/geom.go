// Package core provides fundamental types and utilities for the climber platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// Y grows downward, matching screen space.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Separation describes how two boxes relate along each axis.
// Dist is the center-to-center distance (this minus other), Sum the sum of half extents.
type Separation struct {
	DistX, DistY float64
	SumW, SumH   float64
}

// Overlaps reports whether the boxes overlap. Touching edges do not count.
func (s Separation) Overlaps() bool {
	return math.Abs(s.DistX) < s.SumW && math.Abs(s.DistY) < s.SumH
}

// Penetration returns the overlap depth along each axis.
// Values are only meaningful when Overlaps is true.
func (s Separation) Penetration() (overX, overY float64) {
	return s.SumW - math.Abs(s.DistX), s.SumH - math.Abs(s.DistY)
}

// SeparationFrom measures b against other using center distances.
func (b Box) SeparationFrom(other Box) Separation {
	bx, by := b.Center()
	ox, oy := other.Center()
	return Separation{
		DistX: bx - ox,
		DistY: by - oy,
		SumW:  (b.W + other.W) / 2,
		SumH:  (b.H + other.H) / 2,
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
