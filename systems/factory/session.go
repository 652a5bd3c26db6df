package factory

import (
	"math/rand"
	"time"

	"github.com/mowret/lanebrawler/archetypes"
	"github.com/mowret/lanebrawler/components"
	"github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton plus the ambient singletons
// every run needs: input snapshot, audio queue, camera, and render
// snapshot. Tests can swap the session's Rand for a seeded source.
func CreateSession(ecs *ecs.ECS, class config.PlayerClass, lane *leveldata.Lane) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		Phase:    config.PhasePlaying,
		Class:    class,
		Lane:     lane,
		LastTick: time.Now(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	if _, ok := components.Input.First(ecs.World); !ok {
		archetypes.Input.Spawn(ecs)
	}
	if _, ok := components.Audio.First(ecs.World); !ok {
		audio := archetypes.Audio.Spawn(ecs)
		components.Audio.SetValue(audio, components.AudioData{SFXVolume: 1.0})
	}
	if _, ok := components.Camera.First(ecs.World); !ok {
		archetypes.Camera.Spawn(ecs)
	}
	if _, ok := components.Snapshot.First(ecs.World); !ok {
		archetypes.Snapshot.Spawn(ecs)
	}

	return session
}
