package config

// AnimationDef describes one clip of the debug figure. Frames index the
// figure's pose table.
type AnimationDef struct {
	First        int
	Last         int
	FrameSeconds float64
}

// PlayerAnimations is keyed by animation parameter name, plus "Idle".
var PlayerAnimations = map[string]AnimationDef{
	"Idle":        {First: 0, Last: 1, FrameSeconds: 0.5},
	"IsWalking":   {First: 0, Last: 3, FrameSeconds: 0.1},
	"IsInAir":     {First: 0, Last: 0},
	"IsCrouching": {First: 0, Last: 0},
	"IsClimbing":  {First: 0, Last: 1, FrameSeconds: 0.2},
	"IsKnockback": {First: 0, Last: 1, FrameSeconds: 0.05},
}
