package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRespawnZone creates a zone that sends the player to the zone's
// respawn point, given in map pixels at the player's feet.
func CreateRespawnZone(ecs *ecs.ECS, z level.RespawnZone) *donburi.Entry {
	zone := archetypes.RespawnZone.Spawn(ecs)
	phys := physicsOf(ecs)

	obj := phys.Space.AddStatic(z.X, z.Y, z.W, z.H, tags.ResolvRespawn)
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	point := feetToCenter(phys, z.PointX, z.PointY)
	components.RespawnZone.SetValue(zone, components.RespawnZoneData{
		PointX: point.X,
		PointY: point.Y,
	})
	return zone
}
