package components

import "github.com/yohamta/donburi"

// AnimationData is the frame cursor the simulation owns and the renderer
// reads. Columns/Rows mirror the fixed sprite-grid shape for the entity's
// visual kind; the simulation never touches pixel data.
type AnimationData struct {
	Frame     int
	Row       int
	Columns   int
	Rows      int
	Timer     float64
	FrameTime float64
}

// Advance steps the frame cursor by dt, wrapping at the grid width.
func (a *AnimationData) Advance(dt float64) {
	if a.Columns <= 0 {
		return
	}
	a.Timer += dt
	if a.Timer >= a.FrameTime {
		a.Timer = 0
		a.Frame = (a.Frame + 1) % a.Columns
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
