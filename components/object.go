package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv collision object that carries an entity's
// position and size. Lane entities anchor at their feet: the bottom edge
// (Y+H) is the point clamped to the walkable band.
type ObjectData struct {
	*resolv.Object
}

// FootX returns the horizontal center of the object.
func (o *ObjectData) FootX() float64 { return o.X + o.W/2 }

// FootY returns the bottom edge of the object.
func (o *ObjectData) FootY() float64 { return o.Y + o.H }

// SetFoot places the object so its foot-center anchor is at (x, y) and
// syncs the collision shape.
func (o *ObjectData) SetFoot(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
