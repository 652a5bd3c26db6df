package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives small cosmetic motion, like the coin bob. Offset is
// the current value applied on top of the entity's anchored position.
type TweenData struct {
	Sequence *gween.Sequence
	Offset   float64
}

var Tween = donburi.NewComponentType[TweenData]()
