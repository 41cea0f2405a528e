// Package animations times looping clips for the debug renderer. A clip is
// a frame range advanced on wall-clock seconds.
package animations

type Animation struct {
	Name             string
	First            int
	Last             int
	FrameSeconds     float64 // How long each frame shows
	FreezeOnComplete bool    // Stay on the last frame instead of looping
	Looped           bool

	elapsed float64
	frame   int
}

func NewAnimation(name string, first, last int, frameSeconds float64) *Animation {
	return &Animation{
		Name:         name,
		First:        first,
		Last:         last,
		FrameSeconds: frameSeconds,
		frame:        first,
	}
}

// Update advances the clip by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FrameSeconds <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameSeconds {
		a.elapsed -= a.FrameSeconds
		a.frame++
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
				a.elapsed = 0
				return
			}
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}
