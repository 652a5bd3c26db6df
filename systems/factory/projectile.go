package factory

import (
	"github.com/mowret/lanebrawler/archetypes"
	"github.com/mowret/lanebrawler/components"
	"github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a ranged shot from the owner, aimed in its
// facing direction. Damage is locked in at spawn time from the owner's
// current stats and combo step; later upgrades do not retouch shots
// already in flight.
func CreateProjectile(ecs *ecs.ECS, owner *donburi.Entry, step, id int) *donburi.Entry {
	shot := archetypes.Projectile.Spawn(ecs)

	p := components.Player.Get(owner)
	ownerObj := components.Object.Get(owner)

	idx := comboIndex(step)
	radius := config.Combat.ProjectileRadius[idx]
	speed := config.Combat.ProjectileSpeed[idx]

	dir := 1.0
	if !p.FacingRight {
		dir = -1.0
	}
	cx := ownerObj.FootX() + dir*config.Combat.ProjectileOffsetX
	cy := ownerObj.Y + ownerObj.H/2 + config.Combat.ProjectileOffsetY

	obj := resolv.NewObject(cx-radius, cy-radius, radius*2, radius*2)
	obj.AddTags(tags.ResolvProjectile)
	obj.Data = shot
	components.Object.SetValue(shot, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Projectile.SetValue(shot, components.ProjectileData{
		VelX:   dir * speed,
		Radius: radius,
		Life:   config.Combat.ProjectileLife,
		Damage: config.ComboDamage(p.Class, step, p.BaseDamage),
		ID:     id,
		Active: true,
	})
	components.Visual.SetValue(shot, components.VisualData{Kind: config.VisualProjectile})

	return shot
}
