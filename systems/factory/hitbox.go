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

// CreateHitbox spawns the damage volume for one melee swing. The box sits
// ahead of the owner's facing, widened by the hitbox pad so point-blank
// targets are not missed, and lives for the swing's duration.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, step, attackID int) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(ecs)

	p := components.Player.Get(owner)
	ownerObj := components.Object.Get(owner)
	ms := config.Classes[p.Class].Melee[comboIndex(step)]

	dir := 1.0
	if !p.FacingRight {
		dir = -1.0
	}
	w := ms.Width + config.Combat.HitboxPad
	h := ms.Height
	cx := ownerObj.FootX() + dir*ms.Range*config.Combat.HitboxForwardFactor
	cy := ownerObj.Y + ownerObj.H/2

	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h)
	obj.AddTags(tags.ResolvHitbox)
	obj.Data = hitbox
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(hitbox, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	obj.Update()

	components.Hitbox.SetValue(hitbox, components.HitboxData{
		AttackID:  attackID,
		Damage:    config.ComboDamage(p.Class, step, p.BaseDamage),
		Knockback: ms.Knockback,
		HitStop:   ms.HitStop,
		Life:      ms.Duration,
		Step:      step,
	})

	return hitbox
}

// comboIndex clamps a 1-based combo step to a melee table index.
func comboIndex(step int) int {
	if step < 1 {
		return 0
	}
	if step > 3 {
		return 2
	}
	return step - 1
}
