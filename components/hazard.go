package components

import "github.com/yohamta/donburi"

// ElectricFieldData is a hazard that damages on a duty cycle.
type ElectricFieldData struct {
	Damaging   bool
	OnSeconds  float64
	OffSeconds float64 // 0 keeps the field on permanently
	Timer      float64 // Seconds left in the current phase
	Knocked    map[*donburi.Entry]struct{}
}

// SetDamaging switches phase. Turning damage off forgets who was hit so
// they are knocked back again next time.
func (e *ElectricFieldData) SetDamaging(on bool) {
	e.Damaging = on
	if on {
		e.Timer = e.OnSeconds
		return
	}
	e.Timer = e.OffSeconds
	clear(e.Knocked)
}

var ElectricField = donburi.NewComponentType[ElectricFieldData]()
