// Package render draws the game with flat boxes: level volumes, the player
// figure and a text HUD. Nothing here feeds back into the simulation.
package render

import (
	"image/color"

	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	groundColor    = cfg.Brown
	ladderColor    = cfg.Orange
	ropeColor      = cfg.Purple
	hazardOnColor  = cfg.Yellow
	hazardOffColor = cfg.Gray
	obstacleColor  = cfg.Red
	winColor       = cfg.LightGreen
	respawnColor   = color.RGBA{R: 80, G: 0, B: 0, A: 255}
	playerColor    = cfg.LightBlue
)

// view is the offset that puts the camera at the screen center.
type view struct {
	dx, dy float64
	w, h   float64
}

func cameraView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		dx: w/2 - camera.Position.X,
		dy: h/2 - camera.Position.Y,
		w:  w,
		h:  h,
	}, true
}

// visible culls boxes that are entirely off screen.
func (v view) visible(o *resolv.Object) bool {
	x, y := o.X+v.dx, o.Y+v.dy
	return x+o.W >= 0 && x <= v.w && y+o.H >= 0 && y <= v.h
}

func (v view) fill(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	if !v.visible(o) {
		return
	}
	vector.FillRect(screen, float32(o.X+v.dx), float32(o.Y+v.dy), float32(o.W), float32(o.H), c, false)
}

func (v view) outline(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	if !v.visible(o) {
		return
	}
	vector.StrokeRect(screen, float32(o.X+v.dx), float32(o.Y+v.dy), float32(o.W), float32(o.H), 1, c, false)
}

// DrawLevel draws every level volume in a color by kind.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}

	each := func(tag donburi.IComponentType, c func(*donburi.Entry) color.Color) {
		donburi.NewQuery(filter.Contains(tag)).Each(e.World, func(entry *donburi.Entry) {
			v.fill(screen, components.Object.Get(entry).Object, c(entry))
		})
	}
	solid := func(c color.Color) func(*donburi.Entry) color.Color {
		return func(*donburi.Entry) color.Color { return c }
	}

	each(tags.RespawnZone, solid(respawnColor))
	each(tags.WinRegion, solid(winColor))
	each(tags.Ground, solid(groundColor))
	each(tags.Climbable, func(entry *donburi.Entry) color.Color {
		if components.Climbable.Get(entry).Kind == level.Rope {
			return ropeColor
		}
		return ladderColor
	})
	each(tags.Hazard, func(entry *donburi.Entry) color.Color {
		if components.ElectricField.Get(entry).Damaging {
			return hazardOnColor
		}
		return hazardOffColor
	})
	each(tags.MovingObstacle, solid(obstacleColor))
}

// DrawDebug outlines every object in the trigger space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}
	entry, ok := components.Physics.First(e.World)
	if !ok {
		return
	}
	for _, obj := range components.Physics.Get(entry).Space.Space.Objects() {
		c := color.Color(cfg.White)
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Blue
		}
		v.outline(screen, obj, c)
	}
}
