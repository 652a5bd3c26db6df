package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mowret/lanebrawler/assets"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/leveldata"
	"github.com/mowret/lanebrawler/systems"
	"github.com/mowret/lanebrawler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one play session: the lane, the player, and the full
// simulation chain for the chosen class.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	class        cfg.PlayerClass
	once         sync.Once
}

// NewWorldScene creates a play scene for the chosen class.
func NewWorldScene(sc SceneChanger, class cfg.PlayerClass) *WorldScene {
	return &WorldScene{sceneChanger: sc, class: class}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload SFX to avoid decode lag on first play (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Frame clock first, then platform polling, then the simulation.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	systems.RegisterSimulation(e)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	lane, err := leveldata.LoadLane(assets.LevelFS(), "levels/lane.tmx")
	if err != nil {
		log.Printf("Warning: could not load lane level, using built-in lane: %v", err)
		lane = leveldata.DefaultLane()
	}

	factory.CreateSpace(e, int(lane.Length), cfg.C.Height, 16, 16)
	factory.CreateSession(e, ws.class, lane)
	factory.CreatePlayer(e, ws.class, lane.PlayerSpawnX, lane.PlayerSpawnY)
}
