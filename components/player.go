package components

import (
	"github.com/automoto/ropewalk/motion"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *motion.Controller
	Body       motion.Body
}

var Player = donburi.NewComponentType[PlayerData]()
