// Package gamemath provides the pure geometry helpers the simulation
// systems share. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Normalize scales (x, y) to unit length. The zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RectsOverlap reports whether two axis-aligned rectangles intersect.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// CircleRectOverlap reports whether a circle intersects an axis-aligned
// rectangle, by clamping the circle center onto the rectangle and
// comparing the remaining distance against the radius.
func CircleRectOverlap(cx, cy, r, rx, ry, rw, rh float64) bool {
	nx := Clamp(cx, rx, rx+rw)
	ny := Clamp(cy, ry, ry+rh)
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy <= r*r
}

// RectFromAnchor converts a foot-center anchor (x at the horizontal
// center, y at the bottom edge) into a top-left rectangle origin. All
// lane entities anchor at their feet so depth sorting works on y.
func RectFromAnchor(x, y, w, h float64) (rx, ry float64) {
	return x - w*0.5, y - h
}
