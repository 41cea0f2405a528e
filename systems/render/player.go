package render

import (
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/motion"
	"github.com/automoto/ropewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// strideOffsets is the foot swing of the walk cycle, per frame, in pixels.
var strideOffsets = []float32{-3, 0, 3, 0}

// DrawPlayer draws the player as a box with an eye on the facing side. The
// animation flags pick the pose: a lower box while crouching, alternating
// feet while walking or climbing.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(e, screen)
	if !ok {
		return
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.Sprite.Get(entry)
		if !sprite.Visible {
			return
		}
		obj := components.Object.Get(entry)
		anim := components.Animation.Get(entry)

		x := float32(obj.X + v.dx)
		bottom := float32(obj.Y + obj.H + v.dy)
		w := float32(sprite.Width)
		h := float32(sprite.Height)
		if anim.Flags[motion.AnimCrouching] {
			h *= float32(cfg.Player.CrouchHeight)
		}
		top := bottom - h

		body := playerColor
		if anim.Flags[motion.AnimKnockback] {
			body = cfg.Red
		}
		vector.FillRect(screen, x, top, w, h, body, false)

		eyeX := x + w - 5
		if sprite.FlipX {
			eyeX = x + 2
		}
		vector.FillRect(screen, eyeX, top+4, 3, 3, cfg.White, false)

		frame := 0
		if anim.CurrentAnimation != nil {
			frame = anim.CurrentAnimation.Frame()
		}
		if anim.Flags[motion.AnimWalking] || anim.Flags[motion.AnimClimbing] {
			swing := strideOffsets[frame%len(strideOffsets)]
			vector.FillRect(screen, x+w/4-2+swing, bottom-3, 4, 3, cfg.Gray, false)
			vector.FillRect(screen, x+3*w/4-2-swing, bottom-3, 4, 3, cfg.Gray, false)
		}
	})
}
