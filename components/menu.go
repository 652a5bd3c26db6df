package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

// MenuData holds the class-select carousel state.
type MenuData struct {
	SelectedClass config.PlayerClass
	Confirmed     bool
}

var Menu = donburi.NewComponentType[MenuData]()
