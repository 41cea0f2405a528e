// Package level parses TMX maps into plain level data. Everything is in map
// pixels with the origin at the top left; it has no dependencies on
// ebitengine, donburi or the physics backends.
package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/ropewalk/config"
	"github.com/lafriks/go-tiled"
)

// Object group and layer names read from the map.
const (
	GroupGround          = "Ground"
	GroupLadders         = "Ladders"
	GroupRopes           = "Ropes"
	GroupHazards         = "Hazards"
	GroupMovingObstacles = "MovingObstacles"
	GroupWin             = "Win"
	GroupRespawn         = "Respawn"
	GroupRespawnPoints   = "RespawnPoints"
	GroupPlayerSpawn     = "PlayerSpawn"
	LayerSolidTiles      = "wg-tiles"
)

// Rect is an axis-aligned box in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClimbKind tells ladders and ropes apart for drawing.
type ClimbKind string

const (
	Ladder ClimbKind = "ladder"
	Rope   ClimbKind = "rope"
)

// Climbable is a ladder or rope volume. Its climb axis is the vertical
// center line.
type Climbable struct {
	Rect
	Kind ClimbKind
}

// ElectricField damages on a duty cycle. OffSeconds of 0 means always on.
type ElectricField struct {
	Rect
	OnSeconds  float64
	OffSeconds float64
}

// MovingObstacle ping-pongs right from its start by Distance pixels.
type MovingObstacle struct {
	Rect
	Distance float64 // Pixels
	Speed    float64 // Pixels per second
}

// RespawnZone sends the player to Point on contact.
type RespawnZone struct {
	Rect
	PointX, PointY float64
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Level holds everything the game builds a scene from.
type Level struct {
	Name       string
	Width      int
	Height     int
	Ground     []Rect
	Climbables []Climbable
	Hazards    []ElectricField
	Obstacles  []MovingObstacle
	Win        []Rect
	Respawns   []RespawnZone
	Spawns     []SpawnPoint
}

// Spawn returns the leftmost player spawn, or the map's top-left corner
// when there is none.
func (l *Level) Spawn() SpawnPoint {
	if len(l.Spawns) == 0 {
		return SpawnPoint{}
	}
	return l.Spawns[0]
}

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded levels or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	ppu := config.Physics.PixelsPerUnit
	points := map[string][2]float64{}
	type pendingZone struct {
		rect  Rect
		point string
	}
	var zones []pendingZone

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case GroupGround:
				lvl.Ground = append(lvl.Ground, r)
			case GroupLadders:
				lvl.Climbables = append(lvl.Climbables, Climbable{Rect: r, Kind: Ladder})
			case GroupRopes:
				lvl.Climbables = append(lvl.Climbables, Climbable{Rect: r, Kind: Rope})
			case GroupHazards:
				lvl.Hazards = append(lvl.Hazards, ElectricField{
					Rect:       r,
					OnSeconds:  floatOr(o.Properties, "onSeconds", config.Obstacle.ElectricOnSeconds),
					OffSeconds: floatOr(o.Properties, "offSeconds", config.Obstacle.ElectricOffSeconds),
				})
			case GroupMovingObstacles:
				// Distance and speed are authored in world units.
				lvl.Obstacles = append(lvl.Obstacles, MovingObstacle{
					Rect:     r,
					Distance: floatOr(o.Properties, "distance", config.Obstacle.MoveDistance) * ppu,
					Speed:    floatOr(o.Properties, "speed", config.Obstacle.MoveSpeed) * ppu,
				})
			case GroupWin:
				lvl.Win = append(lvl.Win, r)
			case GroupRespawn:
				zones = append(zones, pendingZone{rect: r, point: o.Properties.GetString("point")})
			case GroupRespawnPoints:
				points[o.Name] = [2]float64{o.X, o.Y}
			case GroupPlayerSpawn:
				lvl.Spawns = append(lvl.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns left-to-right for a stable default
	sort.Slice(lvl.Spawns, func(i, j int) bool {
		return lvl.Spawns[i].X < lvl.Spawns[j].X
	})

	for _, z := range zones {
		zone := RespawnZone{Rect: z.rect}
		switch p, ok := points[z.point]; {
		case ok:
			zone.PointX, zone.PointY = p[0], p[1]
		case z.point != "":
			return nil, fmt.Errorf("load TMX %s: respawn point %q not found", tmxPath, z.point)
		default:
			spawn := lvl.Spawn()
			zone.PointX, zone.PointY = spawn.X, spawn.Y
		}
		lvl.Respawns = append(lvl.Respawns, zone)
	}

	lvl.Ground = append(lvl.Ground, solidTiles(levelMap)...)
	return lvl, nil
}

// solidTiles turns every filled cell of the solid tile layer into a box.
func solidTiles(levelMap *tiled.Map) []Rect {
	var out []Rect
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolidTiles {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				out = append(out, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}
	return out
}

func floatOr(props tiled.Properties, name string, fallback float64) float64 {
	if props.GetString(name) == "" {
		return fallback
	}
	return props.GetFloat(name)
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
