package motion

import "math"

// FlickerPhase is the lifecycle of one flicker run.
type FlickerPhase int

const (
	FlickerIdle FlickerPhase = iota
	FlickerRunning
	FlickerDone
)

// flickerEpsilon absorbs drift from summing frame deltas.
const flickerEpsilon = 1e-9

// Flicker toggles sprite visibility every Interval seconds for Duration
// seconds and always finishes visible. It is advanced by the frame tick.
type Flicker struct {
	Interval float64
	Duration float64

	phase    FlickerPhase
	elapsed  float64
	toggles  int
	total    int
	visible  bool
	onChange func(visible bool)
}

// NewFlicker returns an idle, visible flicker. onChange is called whenever
// visibility actually changes and may be nil.
func NewFlicker(interval, duration float64, onChange func(visible bool)) *Flicker {
	return &Flicker{
		Interval: interval,
		Duration: duration,
		visible:  true,
		onChange: onChange,
	}
}

// Start cancels any run in progress, which makes the sprite visible, then
// begins a new run with the first toggle at time zero.
func (f *Flicker) Start() {
	f.Cancel()
	f.phase = FlickerRunning
	f.elapsed = 0
	f.toggles = 0
	f.total = 0
	if f.Interval > 0 {
		f.total = int(math.Round(f.Duration / f.Interval))
	}
	f.step()
}

// Advance moves the run forward by dt seconds.
func (f *Flicker) Advance(dt float64) {
	if f.phase != FlickerRunning {
		return
	}
	f.elapsed += dt
	f.step()
}

// Cancel stops the run and forces the sprite visible.
func (f *Flicker) Cancel() {
	if f.phase == FlickerRunning {
		f.phase = FlickerIdle
	}
	f.setVisible(true)
}

func (f *Flicker) step() {
	for f.phase == FlickerRunning {
		if f.toggles >= f.total {
			if f.elapsed+flickerEpsilon < float64(f.total)*f.Interval {
				return
			}
			f.phase = FlickerDone
			f.setVisible(true)
			return
		}
		if f.elapsed+flickerEpsilon < float64(f.toggles)*f.Interval {
			return
		}
		f.setVisible(!f.visible)
		f.toggles++
	}
}

func (f *Flicker) setVisible(v bool) {
	if f.visible == v {
		return
	}
	f.visible = v
	if f.onChange != nil {
		f.onChange(v)
	}
}

func (f *Flicker) Phase() FlickerPhase { return f.phase }
func (f *Flicker) Running() bool       { return f.phase == FlickerRunning }
func (f *Flicker) Visible() bool       { return f.visible }
func (f *Flicker) Toggles() int        { return f.toggles }
