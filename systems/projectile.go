package systems

import (
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves ranged shots and retires them when their
// lifetime runs out or they leave the level bounds by the despawn margin.
func UpdateProjectiles(e *ecs.ECS) {
	s := GetSession(e)
	dt := s.Delta

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		pr := components.Projectile.Get(entry)
		if !pr.Active {
			return
		}
		obj := components.Object.Get(entry)

		obj.X += pr.VelX * dt
		obj.Y += pr.VelY * dt
		obj.Update()

		pr.Life -= dt
		if pr.Life <= 0 {
			pr.Active = false
			return
		}

		cx := obj.X + pr.Radius
		if cx < -cfg.Combat.ProjectileMargin || cx > s.Lane.Length+cfg.Combat.ProjectileMargin {
			pr.Active = false
		}
	})
}
