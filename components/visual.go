package components

import (
	"github.com/mowret/lanebrawler/config"
	"github.com/yohamta/donburi"
)

// VisualData tags an entity with the sprite sheet the renderer resolves.
// The simulation core never holds texture handles.
type VisualData struct {
	Kind config.VisualKind
}

var Visual = donburi.NewComponentType[VisualData]()
