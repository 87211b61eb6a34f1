package dynamo

// Frame is a snapshot of every particle, indexed by particle id.
type Frame struct {
	Step       int
	Time       float64
	Positions  []Vec2
	Velocities []Vec2
}

// IsValid reports whether every position and velocity is finite.
func (f Frame) IsValid() bool {
	for _, p := range f.Positions {
		if !p.IsValid() {
			return false
		}
	}
	for _, v := range f.Velocities {
		if !v.IsValid() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (f Frame) Clone() Frame {
	c := Frame{Step: f.Step, Time: f.Time}
	c.Positions = append([]Vec2(nil), f.Positions...)
	c.Velocities = append([]Vec2(nil), f.Velocities...)
	return c
}
