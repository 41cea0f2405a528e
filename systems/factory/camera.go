package factory

import (
	"github.com/automoto/ropewalk/archetypes"
	"github.com/automoto/ropewalk/components"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates the camera centered on (x, y) in pixels.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(x, y),
	})
}
