package components

import "github.com/yohamta/donburi"

// CameraData is the world-space offset the renderer subtracts when
// drawing. It follows the player, clamped to the lane bounds.
type CameraData struct {
	X float64
	Y float64
}

var Camera = donburi.NewComponentType[CameraData]()
