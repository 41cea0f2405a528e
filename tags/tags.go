package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Ground         = donburi.NewTag().SetName("Ground")
	Climbable      = donburi.NewTag().SetName("Climbable")
	Hazard         = donburi.NewTag().SetName("Hazard")
	MovingObstacle = donburi.NewTag().SetName("MovingObstacle")
	WinRegion      = donburi.NewTag().SetName("WinRegion")
	RespawnZone    = donburi.NewTag().SetName("RespawnZone")
)

// Resolv tags for physics collision and trigger lookup
const (
	ResolvSolid     = "solid"
	ResolvClimbable = "climbable"
	ResolvHazard    = "hazard"
	ResolvObstacle  = "obstacle"
	ResolvWin       = "win"
	ResolvRespawn   = "respawn"
	ResolvPlayer    = "Player"
)
