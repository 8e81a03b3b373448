package rain

import "math"

// Projector maps 1-D ray positions onto 2-D screen coordinates along an
// Archimedean spiral anchored at the terminal center. Radius shrinks as the
// position grows (radius = coef/p), so low positions sit far out and the ray
// winds inward toward the center.
type Projector struct {
	Coef    float64
	CenterX int
	CenterY int
}

// At returns the absolute screen cell for ray position p (p >= 1). Offsets
// are truncated toward negative infinity before being added to the center,
// so cells land on stable grid positions on both sides of the axes.
func (s Projector) At(p int) (x, y int) {
	angle := float64(p)
	radius := s.Coef / angle
	x = s.CenterX + int(math.Floor(radius*math.Cos(angle)))
	y = s.CenterY + int(math.Floor(radius*math.Sin(angle)))
	return x, y
}

// RayLength returns the spiral ray capacity for a terminal of the given
// size: one cell per position, 2*(w+h) in total.
func RayLength(width, height int) int {
	return 2 * (width + height)
}
