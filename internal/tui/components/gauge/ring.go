package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

// ring is a circular band of braille dots. Progress runs clockwise from
// 12 o'clock.
type ring struct {
	size      int // diameter in dots
	thickness int
}

func (r ring) center() float64 { return float64(r.size-1) / 2 }

// at reports whether dot (x, y) lies on the band and, if so, how far around
// the ring it is as a fraction in [0, 1).
func (r ring) at(x, y int) (float64, bool) {
	c := r.center()
	dx, dy := float64(x)-c, float64(y)-c
	dist := math.Hypot(dx, dy)
	outer := float64(r.size) / 2
	if dist > outer || dist <= outer-float64(r.thickness) {
		return 0, false
	}

	// screen y grows downward; atan2(dx, -dy) is 0 at 12 o'clock and grows clockwise
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi), true
}

// plot sets every band dot whose position is below fraction. A fraction of
// 1 or more draws the whole ring.
func (r ring) plot(c *drawille.Canvas, fraction float64) {
	if fraction <= 0 {
		return
	}
	for y := range r.size {
		for x := range r.size {
			if pos, ok := r.at(x, y); ok && (fraction >= 1 || pos < fraction) {
				c.Set(x, y)
			}
		}
	}
}
