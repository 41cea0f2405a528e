package components

import "github.com/yohamta/donburi"

// RespawnZoneData sends the player back to a fixed point on contact.
type RespawnZoneData struct {
	PointX float64 // World units, body center
	PointY float64
	Uses   int
}

var RespawnZone = donburi.NewComponentType[RespawnZoneData]()
