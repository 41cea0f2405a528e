package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/input"
	"github.com/automoto/ropewalk/motion"
	"github.com/automoto/ropewalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreatePlayer spawns the player with its feet at (x, y) in map pixels.
// src may be nil for a player that only receives scripted input.
func CreatePlayer(ecs *ecs.ECS, x, y float64, src input.Source, log *zap.Logger) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	phys := physicsOf(ecs)
	spawn := feetToCenter(phys, x, y)

	width, height := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	var body motion.Body
	var obj *resolv.Object
	if phys.Rigid != nil {
		body = phys.Rigid.NewBody(spawn, width, height, cfg.Player.Mass, cfg.LayerPlayer)
		// Triggers are found in the resolv space, so the rigid body gets a
		// proxy box there that follows it after every step.
		ppu := phys.Space.PixelsPerUnit
		px, py := phys.Space.ToScreen(spawn)
		obj = phys.Space.AddStatic(px-width*ppu/2, py-height*ppu/2, width*ppu, height*ppu, tags.ResolvPlayer)
	} else {
		b := phys.Space.NewBody(spawn, width, height, cfg.Player.Mass, tags.ResolvPlayer)
		body = b
		obj = b.Object
	}
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Input.SetValue(player, components.InputData{
		Sampler: input.NewSampler(),
		Source:  src,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Visible: true,
		Width:   obj.W,
		Height:  obj.H,
	})
	components.Animation.SetValue(player, GenerateAnimations())

	var sound motion.SoundPlayer
	if session, ok := components.Audio.First(ecs.World); ok {
		sound = components.Audio.Get(session)
	}

	controller := motion.NewController(cfg.Player, cfg.Knockback, motion.Deps{
		Body:     body,
		Ground:   phys.Ground,
		Input:    components.Input.Get(player).Sampler,
		Sound:    sound,
		Sprite:   components.Sprite.Get(player),
		Animator: components.Animation.Get(player),
		Logger:   log,
	})
	components.Player.SetValue(player, components.PlayerData{
		Controller: controller,
		Body:       body,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  controller.Mode(),
		PreviousState: controller.Mode(),
	})

	return player
}

// feetToCenter converts a map point marking the player's feet to the body
// center in world units.
func feetToCenter(phys *components.PhysicsData, x, y float64) motion.Vec2 {
	feet := phys.Space.ToWorld(x, y)
	return feet.Add(motion.Vec2{Y: cfg.Player.CollisionHeight / 2})
}
