package motion

import "testing"

func TestFlickerToggleCount(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		duration float64
		dt       float64
		toggles  int
	}{
		{"coarse ticks", 0.1, 2, 0.1, 20},
		{"frame ticks", 0.1, 2, 1.0 / 60.0, 20},
		{"short run", 0.25, 1, 0.05, 4},
		{"zero duration", 0.1, 0, 0.1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := 0
			f := NewFlicker(tt.interval, tt.duration, func(bool) { changes++ })
			f.Start()
			for i := 0; i < 1000 && f.Running(); i++ {
				f.Advance(tt.dt)
			}

			if f.Phase() != FlickerDone {
				t.Fatalf("expected flicker done, got phase %v", f.Phase())
			}
			if f.Toggles() != tt.toggles {
				t.Errorf("expected %d toggles, got %d", tt.toggles, f.Toggles())
			}
			if !f.Visible() {
				t.Error("expected flicker to end visible")
			}
			if changes != tt.toggles {
				t.Errorf("expected %d visibility callbacks, got %d", tt.toggles, changes)
			}
		})
	}
}

func TestFlickerLargeStepCatchesUp(t *testing.T) {
	f := NewFlicker(0.1, 2, nil)
	f.Start()
	f.Advance(0.35)
	if f.Toggles() != 4 {
		t.Errorf("expected toggles at 0, 0.1, 0.2, 0.3, got %d", f.Toggles())
	}
	f.Advance(5)
	if f.Phase() != FlickerDone || !f.Visible() {
		t.Errorf("expected done and visible, got %v visible=%v", f.Phase(), f.Visible())
	}
}

func TestFlickerCancelForcesVisible(t *testing.T) {
	var seen []bool
	f := NewFlicker(0.1, 2, func(v bool) { seen = append(seen, v) })
	f.Start()
	if f.Visible() {
		t.Fatal("expected the first toggle to hide")
	}

	f.Cancel()

	if !f.Visible() || f.Running() {
		t.Errorf("expected visible and stopped, got visible=%v running=%v", f.Visible(), f.Running())
	}
	if len(seen) != 2 || seen[1] != true {
		t.Errorf("expected hide then show, got %v", seen)
	}

	// Advancing a cancelled flicker does nothing.
	f.Advance(1)
	if len(seen) != 2 {
		t.Errorf("expected no further changes, got %v", seen)
	}
}
