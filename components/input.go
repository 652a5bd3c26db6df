package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the full state of an action for this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the per-frame input snapshot. Current holds the actions
// held this frame; Previous holds last frame's, so edges can be derived
// without polling the platform layer twice.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
