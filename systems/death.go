package systems

import (
	"github.com/mowret/lanebrawler/components"
	"github.com/mowret/lanebrawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths sweeps retired entities out of the world: dead enemies,
// spent projectiles, collected coins, and expired hitboxes. Entries are
// collected first so removal never mutates a live iteration.
func UpdateDeaths(e *ecs.ECS) {
	var doomed []*donburi.Entry

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !components.Enemy.Get(entry).Alive {
			doomed = append(doomed, entry)
		}
	})
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if !components.Projectile.Get(entry).Active {
			doomed = append(doomed, entry)
		}
	})
	tags.Coin.Each(e.World, func(entry *donburi.Entry) {
		if components.Coin.Get(entry).Collected {
			doomed = append(doomed, entry)
		}
	})
	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		if components.Hitbox.Get(entry).Life <= 0 {
			doomed = append(doomed, entry)
		}
	})

	for _, entry := range doomed {
		removeEntity(e, entry)
	}
}

// removeEntity detaches an entity's collision object from the space and
// removes the entity from the world.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	e.World.Remove(entry.Entity())
}
