package components

// FixedStep turns variable frame times into a whole number of physics
// ticks. Leftover time carries into the next frame.
type FixedStep struct {
	Step     float64
	MaxSteps int

	acc   float64
	Ticks int // Total ticks run
}

// Advance adds dt and returns how many ticks are due, never more than
// MaxSteps. Time beyond the cap is dropped.
func (f *FixedStep) Advance(dt float64) int {
	if f.Step <= 0 {
		return 0
	}
	f.acc += dt
	n := 0
	for f.acc >= f.Step && n < f.MaxSteps {
		f.acc -= f.Step
		n++
	}
	if n == f.MaxSteps && f.acc >= f.Step {
		f.acc = 0
	}
	f.Ticks += n
	return n
}
