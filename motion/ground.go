package motion

// IsGrounded tests a disc of radius around point against the mask layers.
// A nil query never reports ground.
func IsGrounded(q OverlapQuery, point Vec2, radius float64, mask LayerMask) bool {
	if q == nil {
		return false
	}
	return q.QueryOverlap(point, radius, mask)
}

// GroundSensor is a disc at a fixed offset below the body center.
type GroundSensor struct {
	Query  OverlapQuery
	Offset Vec2
	Radius float64
	Mask   LayerMask
}

// Probe runs one ground query for a body centered at origin.
func (s GroundSensor) Probe(origin Vec2) bool {
	return IsGrounded(s.Query, origin.Add(s.Offset), s.Radius, s.Mask)
}
