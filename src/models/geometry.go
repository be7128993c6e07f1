package models

import "math"

// Point2D is a position on the field, in yards relative to the ball.
type Point2D struct {
	X float64
	Y float64
}

// Origin is the zero point.
var Origin = Point2D{}

// DistanceTo returns the Euclidean distance to other.
func (p Point2D) DistanceTo(other Point2D) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// DistanceSquared avoids the square root when only comparing distances.
func (p Point2D) DistanceSquared(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Color is an RGB color. The zero value is black.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// ContrastColor picks black or white text for readability on c.
func (c Color) ContrastColor() Color {
	luminance := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luminance > 128 {
		return Black
	}
	return White
}
