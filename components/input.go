package components

import (
	"github.com/automoto/ropewalk/input"
	"github.com/yohamta/donburi"
)

// InputData pairs the device being polled with the sampled actions the
// controller reads.
type InputData struct {
	Sampler *input.Sampler
	Source  input.Source
}

var Input = donburi.NewComponentType[InputData]()
