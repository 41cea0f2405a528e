package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DrawHUD prints the player's motion state in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	s := player.Controller.State()
	state := components.State.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("mode %s (%.1fs)", s.Mode, state.StateTimer),
		fmt.Sprintf("facing %s  grounded %v", s.Facing, s.Grounded),
		fmt.Sprintf("vel %.2f, %.2f", s.Velocity.X, s.Velocity.Y),
		fmt.Sprintf("pos %.2f, %.2f", s.Position.X, s.Position.Y),
	}
	if s.NearClimbable {
		lines = append(lines, fmt.Sprintf("climb axis %.2f", s.ClimbAnchorX))
	}
	if s.KnockbackTimer > 0 {
		lines = append(lines, fmt.Sprintf("knockback %.2fs", s.KnockbackTimer))
	}
	if entry, ok := components.Progress.First(e.World); ok {
		p := components.Progress.Get(entry)
		lines = append(lines, fmt.Sprintf("wins %d  deaths %d", p.Wins, p.Deaths))
	}

	for i, line := range lines {
		drawText(screen, line, hudMargin, float64(hudMargin+i*hudLineHeight), cfg.White)
	}
}

// DrawLevelComplete shows the win banner while it is up.
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.LevelComplete.First(e.World)
	if !ok || !components.LevelComplete.Get(entry).IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, float32(height/2-20), float32(width), 40, cfg.BlackOverlay, false)

	msg := "LEVEL COMPLETE"
	w, _ := text.Measure(msg, hudFace, 0)
	drawText(screen, msg, (width-w)/2, height/2-7, cfg.Yellow)
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, hudFace, op)
}
