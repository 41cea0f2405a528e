package config

// Collision layers as bit flags. Ground queries take a mask built from these.
const (
	LayerGround uint32 = 1 << iota
	LayerClimbable
	LayerHazard
	LayerPlayer
)
