package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadLane parses a TMX file and returns the lane geometry defined by its
// "lane" object group. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadLane(fsys fs.FS, tmxPath string) (*Lane, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lane := &Lane{}
	var haveGround, haveSpawn, haveBoss, havePlayer bool

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "lane" {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "Ground":
				lane.GroundTop = o.Y
				lane.GroundBottom = o.Y + o.Height
				lane.Length = o.X + o.Width
				haveGround = true
			case "SpawnWindow":
				lane.SpawnMinX = o.X
				lane.SpawnMaxX = o.X + o.Width
				haveSpawn = true
			case "BossGate":
				lane.BossTriggerX = o.X
				lane.BossSpawnX = o.X + o.Width
				haveBoss = true
			case "PlayerSpawn":
				lane.PlayerSpawnX = o.X
				lane.PlayerSpawnY = o.Y
				havePlayer = true
			}
		}
	}

	if !haveGround {
		return nil, fmt.Errorf("lane TMX %s: missing Ground object", tmxPath)
	}
	if !haveSpawn {
		return nil, fmt.Errorf("lane TMX %s: missing SpawnWindow object", tmxPath)
	}
	if !haveBoss {
		return nil, fmt.Errorf("lane TMX %s: missing BossGate object", tmxPath)
	}
	if !havePlayer {
		return nil, fmt.Errorf("lane TMX %s: missing PlayerSpawn object", tmxPath)
	}

	return lane, nil
}
