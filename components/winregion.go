package components

import "github.com/yohamta/donburi"

type WinRegionData struct {
	Name     string
	Occupied bool // Player was inside last tick
	Wins     int
}

var WinRegion = donburi.NewComponentType[WinRegionData]()
