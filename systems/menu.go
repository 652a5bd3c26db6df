package systems

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mowret/lanebrawler/components"
	cfg "github.com/mowret/lanebrawler/config"
	"github.com/mowret/lanebrawler/fonts"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the class-select system. Left/right cycles the
// carousel, confirm locks the class in and starts the run.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(class cfg.PlayerClass) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedClass = (menu.SelectedClass + cfg.ClassCount - 1) % cfg.ClassCount
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedClass = (menu.SelectedClass + 1) % cfg.ClassCount
		}

		if GetAction(input, cfg.ActionConfirm).JustPressed && !menu.Confirmed {
			menu.Confirmed = true
			PlaySFX(e, cfg.SoundMenuSelect)
			sceneChanger.ChangeScene(createWorldScene(menu.SelectedClass))
		}

		if GetAction(input, cfg.ActionCancel).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title and the class carousel.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.DarkBlue, false)

	titleFont := fonts.Title.Get()
	title := "LANE BRAWLER"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), 140, cfg.Gold)

	cc := &cfg.Classes[menu.SelectedClass]

	// Class card: a tinted box standing in for the class portrait.
	cardW, cardH := 120.0, 180.0
	cardX := (width - cardW) / 2
	cardY := height/2 - cardH/2
	vector.DrawFilledRect(screen, float32(cardX), float32(cardY), float32(cardW), float32(cardH), cc.Color, false)

	nameFont := fonts.Bold.Get()
	nameWidth := len(cc.Name) * 12
	text.Draw(screen, cc.Name, nameFont, int((width-float64(nameWidth))/2), int(cardY+cardH)+36, cfg.White)

	stats := fmt.Sprintf("HP %d   SPD %.0f   DMG %d", cc.MaxHP, cc.Speed, cc.BaseDamage)
	smallFont := fonts.Small.Get()
	statsWidth := len(stats) * 7
	text.Draw(screen, stats, smallFont, int((width-float64(statsWidth))/2), int(cardY+cardH)+60, cfg.LightGray)

	ability := classAbilityLabel(menu.SelectedClass)
	abilityWidth := len(ability) * 7
	text.Draw(screen, ability, smallFont, int((width-float64(abilityWidth))/2), int(cardY+cardH)+80, cfg.LightGray)

	hint := "Arrows: Choose   Enter: Start   Esc: Quit"
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, smallFont, int((width-float64(hintWidth))/2), int(height)-24, cfg.Gray)
}

func classAbilityLabel(class cfg.PlayerClass) string {
	switch class {
	case cfg.ClassKnight:
		return "Ability: Block (reduces damage)"
	case cfg.ClassRogue:
		return "Ability: Dodge (invulnerable dash)"
	case cfg.ClassMage:
		return "Ability: Blink (short teleport)"
	}
	return ""
}

// GetOrCreateMenu returns the singleton menu state, creating it if needed.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedClass: cfg.ClassKnight,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
