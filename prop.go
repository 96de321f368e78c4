package spiral

// ControlLaw defines an enum of control laws.
type ControlLaw uint8

const (
	tangential ControlLaw = iota + 1
	antiTangential
	coast
)

func (cl ControlLaw) String() string {
	switch cl {
	case tangential:
		return "prograde"
	case antiTangential:
		return "retrograde"
	case coast:
		return "coast"
	}
	panic("cannot stringify unknown control law")
}

// ThrustControl defines a thrust control interface. Control returns the unit
// thrust direction for the given state, or ErrDivisionByZero when that
// direction is undefined.
type ThrustControl interface {
	Control(s State) (Vec2, error)
	Type() ControlLaw
	Reason() string
}

/* Let's define some control laws. */

// Coast defines a thrust control law which does not thrust.
type Coast struct {
	reason string
}

// Reason implements the ThrustControl interface.
func (cl Coast) Reason() string {
	return cl.reason
}

// Type implements the ThrustControl interface.
func (cl Coast) Type() ControlLaw {
	return coast
}

// Control implements the ThrustControl interface.
func (cl Coast) Control(s State) (Vec2, error) {
	return Vec2{}, nil
}

// Prograde defines a control law thrusting along the velocity vector. It
// raises the orbit, slowly. A zero velocity leaves the thrust direction
// undefined, hence the error.
type Prograde struct {
	reason string
}

// Reason implements the ThrustControl interface.
func (cl Prograde) Reason() string {
	return cl.reason
}

// Type implements the ThrustControl interface.
func (cl Prograde) Type() ControlLaw {
	return tangential
}

// Control implements the ThrustControl interface.
func (cl Prograde) Control(s State) (Vec2, error) {
	return s.V.Unit()
}

// Retrograde defines a control law thrusting against the velocity vector,
// for inward spirals.
type Retrograde struct {
	reason string
}

// Reason implements the ThrustControl interface.
func (cl Retrograde) Reason() string {
	return cl.reason
}

// Type implements the ThrustControl interface.
func (cl Retrograde) Type() ControlLaw {
	return antiTangential
}

// Control implements the ThrustControl interface.
func (cl Retrograde) Control(s State) (Vec2, error) {
	unitV, err := s.V.Unit()
	if err != nil {
		return Vec2{}, err
	}
	return unitV.Scale(-1), nil
}
