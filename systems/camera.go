package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player centered, clamped to the lane ends so the
// view never shows past the level bounds.
func UpdateCamera(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	s := GetSession(e)
	cam := components.Camera.Get(camEntry)
	pObj := components.Object.Get(playerEntry)

	screenW := float64(cfg.C.Width)
	maxX := s.Lane.Length - screenW
	if maxX < 0 {
		maxX = 0
	}
	cam.X = gamemath.Clamp(pObj.FootX()-screenW/2, 0, maxX)
	cam.Y = 0
}
