package level

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="144" width="320" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Ladders">
  <object id="2" x="64" y="64" width="16" height="80"/>
 </objectgroup>
 <objectgroup id="3" name="Ropes">
  <object id="3" x="128" y="32" width="8" height="96"/>
 </objectgroup>
 <objectgroup id="4" name="Hazards">
  <object id="4" x="160" y="128" width="32" height="16">
   <properties>
    <property name="onSeconds" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="MovingObstacles">
  <object id="5" x="200" y="96" width="16" height="16">
   <properties>
    <property name="distance" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="Win">
  <object id="6" x="288" y="96" width="32" height="48"/>
 </objectgroup>
 <objectgroup id="7" name="Respawn">
  <object id="7" x="0" y="150" width="320" height="10">
   <properties>
    <property name="point" value="checkpoint"/>
   </properties>
  </object>
  <object id="8" x="240" y="0" width="16" height="16"/>
 </objectgroup>
 <objectgroup id="8" name="RespawnPoints">
  <object id="9" name="checkpoint" x="100" y="144">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="9" name="PlayerSpawn">
  <object id="10" x="90" y="144">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="11" x="20" y="144">
   <point/>
  </object>
 </objectgroup>
</map>`

func TestLoadObjectGroups(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	lvl, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if lvl.Name != "test" {
		t.Errorf("expected name test, got %q", lvl.Name)
	}
	if lvl.Width != 320 || lvl.Height != 160 {
		t.Errorf("expected 320x160, got %dx%d", lvl.Width, lvl.Height)
	}
	if len(lvl.Ground) != 1 || lvl.Ground[0] != (Rect{X: 0, Y: 144, W: 320, H: 16}) {
		t.Errorf("unexpected ground %+v", lvl.Ground)
	}
	if len(lvl.Climbables) != 2 || lvl.Climbables[0].Kind != Ladder || lvl.Climbables[1].Kind != Rope {
		t.Errorf("expected a ladder and a rope, got %+v", lvl.Climbables)
	}
	if len(lvl.Win) != 1 {
		t.Errorf("expected one win region, got %d", len(lvl.Win))
	}
}

func TestLoadPropertiesAndDefaults(t *testing.T) {
	fsys := fstest.MapFS{"test.tmx": {Data: []byte(testTMX)}}

	lvl, err := Load(fsys, "test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(lvl.Hazards) != 1 {
		t.Fatalf("expected one hazard, got %d", len(lvl.Hazards))
	}
	h := lvl.Hazards[0]
	if h.OnSeconds != 0.5 {
		t.Errorf("expected onSeconds 0.5, got %v", h.OnSeconds)
	}
	if h.OffSeconds != 1.5 {
		t.Errorf("expected default offSeconds 1.5, got %v", h.OffSeconds)
	}

	if len(lvl.Obstacles) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(lvl.Obstacles))
	}
	// World units scaled to pixels.
	o := lvl.Obstacles[0]
	if o.Distance != 64 || o.Speed != 64 {
		t.Errorf("expected distance 64 and speed 64 pixels, got %v and %v", o.Distance, o.Speed)
	}
}

func TestLoadSpawnsAndRespawnPoints(t *testing.T) {
	fsys := fstest.MapFS{"test.tmx": {Data: []byte(testTMX)}}

	lvl, err := Load(fsys, "test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(lvl.Spawns) != 2 {
		t.Fatalf("expected two spawns, got %d", len(lvl.Spawns))
	}
	if s := lvl.Spawn(); s.X != 20 || s.Y != 144 {
		t.Errorf("expected leftmost spawn (20, 144), got %+v", s)
	}
	if lvl.Spawns[1].Index != 1 {
		t.Errorf("expected spawnIndex 1 on the second spawn, got %d", lvl.Spawns[1].Index)
	}

	if len(lvl.Respawns) != 2 {
		t.Fatalf("expected two respawn zones, got %d", len(lvl.Respawns))
	}
	if z := lvl.Respawns[0]; z.PointX != 100 || z.PointY != 144 {
		t.Errorf("expected named point (100, 144), got (%v, %v)", z.PointX, z.PointY)
	}
	if z := lvl.Respawns[1]; z.PointX != 20 || z.PointY != 144 {
		t.Errorf("expected unnamed zone to use the spawn, got (%v, %v)", z.PointX, z.PointY)
	}
}

func TestLoadUnknownRespawnPoint(t *testing.T) {
	broken := strings.Replace(testTMX, `value="checkpoint"`, `value="nowhere"`, 1)
	fsys := fstest.MapFS{"test.tmx": {Data: []byte(broken)}}

	_, err := Load(fsys, "test.tmx")
	if err == nil || !strings.Contains(err.Error(), "nowhere") {
		t.Errorf("expected error naming the missing point, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "missing.tmx"); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestSpawnWithoutPoints(t *testing.T) {
	if s := (&Level{}).Spawn(); s != (SpawnPoint{}) {
		t.Errorf("expected zero spawn, got %+v", s)
	}
}

func TestLoadAllShippedLevels(t *testing.T) {
	levels, names, err := LoadAll(os.DirFS("../assets"), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) == 0 || names[0] != "level1" {
		t.Fatalf("expected level1 first, got %v", names)
	}
	lvl := levels["level1"]
	if len(lvl.Spawns) == 0 || len(lvl.Climbables) == 0 || len(lvl.Win) == 0 {
		t.Errorf("expected level1 to have spawns, climbables and a win region, got %+v", lvl)
	}
	for i, z := range lvl.Respawns {
		if z.PointX == 0 && z.PointY == 0 {
			t.Errorf("respawn zone %d has no point", i)
		}
	}
}
