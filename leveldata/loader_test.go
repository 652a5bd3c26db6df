package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"
)

const laneTMXHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="94" height="23" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="5">
 <objectgroup id="1" name="lane">
`

const laneTMXFooter = ` </objectgroup>
</map>
`

func laneTMX(objects ...string) []byte {
	return []byte(laneTMXHeader + strings.Join(objects, "\n") + "\n" + laneTMXFooter)
}

const (
	objGround      = `  <object id="1" name="Ground" x="0" y="350" width="3000" height="80"/>`
	objSpawnWindow = `  <object id="2" name="SpawnWindow" x="400" y="350" width="2300" height="80"/>`
	objBossGate    = `  <object id="3" name="BossGate" x="2400" y="350" width="400" height="80"/>`
	objPlayerSpawn = `  <object id="4" name="PlayerSpawn" x="100" y="390"/>`
)

func TestLoadLane(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/lane.tmx": &fstest.MapFile{
			Data: laneTMX(objGround, objSpawnWindow, objBossGate, objPlayerSpawn),
		},
	}

	lane, err := LoadLane(fsys, "levels/lane.tmx")
	if err != nil {
		t.Fatalf("LoadLane: %v", err)
	}

	if lane.Length != 3000 {
		t.Errorf("Length = %v, want 3000", lane.Length)
	}
	if lane.GroundTop != 350 || lane.GroundBottom != 430 {
		t.Errorf("ground band = [%v, %v], want [350, 430]", lane.GroundTop, lane.GroundBottom)
	}
	if lane.SpawnMinX != 400 || lane.SpawnMaxX != 2700 {
		t.Errorf("spawn window = [%v, %v], want [400, 2700]", lane.SpawnMinX, lane.SpawnMaxX)
	}
	if lane.BossTriggerX != 2400 || lane.BossSpawnX != 2800 {
		t.Errorf("boss gate = [%v, %v], want [2400, 2800]", lane.BossTriggerX, lane.BossSpawnX)
	}
	if lane.PlayerSpawnX != 100 || lane.PlayerSpawnY != 390 {
		t.Errorf("player spawn = (%v, %v), want (100, 390)", lane.PlayerSpawnX, lane.PlayerSpawnY)
	}
}

func TestLoadLaneMissingObjects(t *testing.T) {
	tests := []struct {
		name    string
		objects []string
		wantErr string
	}{
		{"no ground", []string{objSpawnWindow, objBossGate, objPlayerSpawn}, "Ground"},
		{"no spawn window", []string{objGround, objBossGate, objPlayerSpawn}, "SpawnWindow"},
		{"no boss gate", []string{objGround, objSpawnWindow, objPlayerSpawn}, "BossGate"},
		{"no player spawn", []string{objGround, objSpawnWindow, objBossGate}, "PlayerSpawn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"levels/lane.tmx": &fstest.MapFile{Data: laneTMX(tt.objects...)},
			}
			_, err := LoadLane(fsys, "levels/lane.tmx")
			if err == nil {
				t.Fatal("LoadLane succeeded, want an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not name the missing %s object", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLaneMissingFile(t *testing.T) {
	if _, err := LoadLane(fstest.MapFS{}, "levels/lane.tmx"); err == nil {
		t.Fatal("LoadLane succeeded on a missing file, want an error")
	}
}

func TestDefaultLaneIsPlayable(t *testing.T) {
	lane := DefaultLane()
	if lane.GroundTop >= lane.GroundBottom {
		t.Errorf("ground band [%v, %v] is inverted", lane.GroundTop, lane.GroundBottom)
	}
	if lane.BossTriggerX >= lane.BossSpawnX {
		t.Errorf("boss spawns at %v, before its trigger %v", lane.BossSpawnX, lane.BossTriggerX)
	}
	if lane.PlayerSpawnX <= 0 || lane.PlayerSpawnX >= lane.Length {
		t.Errorf("player spawn x = %v outside the lane", lane.PlayerSpawnX)
	}
	if lane.SpawnMaxX > lane.Length {
		t.Errorf("spawn window end %v past the lane length %v", lane.SpawnMaxX, lane.Length)
	}
}
