package systems

import (
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// poller is a source that reads its device once per frame.
type poller interface {
	Poll()
}

// UpdateInput samples every player's input source. Must run BEFORE
// UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	dt := frameDelta()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		if p, ok := in.Source.(poller); ok {
			p.Poll()
		}
		in.Sampler.Sample(in.Source, dt)
	})
}

// frameDelta is the length of one game loop update in seconds.
func frameDelta() float64 {
	if cfg.C.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.C.TPS)
}
