package systems

import (
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateHazards runs every electric field's duty cycle, then applies its
// contact rules. While damaging, a player inside who has not been hit yet
// is hit once. While idle, a player inside is forgotten so the next
// damaging phase hits them again.
func UpdateHazards(ecs *ecs.ECS, dt float64) {
	phys := physicsData(ecs)
	if phys == nil {
		return
	}

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		field := components.ElectricField.Get(e)
		advanceDutyCycle(field, dt)

		obj := components.Object.Get(e)
		for player := range touching(obj.Object, tags.ResolvPlayer) {
			if !player.HasComponent(components.Player) {
				continue
			}
			_, knocked := field.Knocked[player]
			switch {
			case field.Damaging && !knocked:
				field.Knocked[player] = struct{}{}
				from := phys.Space.Center(obj.Object)
				components.Player.Get(player).Controller.RequestKnockback(from)
				logger.Debug("shocked", zap.Float64("x", from.X), zap.Float64("y", from.Y))
			case !field.Damaging && knocked:
				delete(field.Knocked, player)
			}
		}
	})
}

// advanceDutyCycle flips the field between damaging and idle. A field with
// no idle time stays on; one with no damaging time stays off.
func advanceDutyCycle(field *components.ElectricFieldData, dt float64) {
	switch {
	case field.OffSeconds <= 0:
		if !field.Damaging {
			field.SetDamaging(true)
		}
		return
	case field.OnSeconds <= 0:
		if field.Damaging {
			field.SetDamaging(false)
		}
		return
	}

	field.Timer -= dt
	for field.Timer <= 0 {
		carry := field.Timer
		field.SetDamaging(!field.Damaging)
		field.Timer += carry
	}
}
