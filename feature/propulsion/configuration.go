package propulsion

import (
	"propulsion-estimator/feature/component"
)

// Configuration is a set of drive components and the operating velocity.
// Every component is optional; an absent one contributes no resistance.
type Configuration struct {
	Battery   *component.Battery   `json:"battery,omitempty"`
	Motor     *component.Motor     `json:"motor,omitempty"`
	ESC       *component.ESC       `json:"esc,omitempty"`
	Propeller *component.Propeller `json:"propeller,omitempty"`
	// Velocity is the cruise velocity in m/s.
	Velocity float64 `json:"velocity"`
}

// NewConfiguration builds a configuration from resolved components.
func NewConfiguration(r *component.Resolved, velocity float64) Configuration {
	if r == nil {
		return Configuration{Velocity: velocity}
	}
	return Configuration{
		Battery:   r.Battery,
		Motor:     r.Motor,
		ESC:       r.ESC,
		Propeller: r.Propeller,
		Velocity:  velocity,
	}
}

// TotalResistance returns R_battery + R_motor + R_esc.
func (c Configuration) TotalResistance() float64 {
	var r float64
	if c.Battery != nil {
		r += c.Battery.Resistance
	}
	if c.Motor != nil {
		r += c.Motor.Resistance
	}
	if c.ESC != nil {
		r += c.ESC.Resistance
	}
	return r
}

// validate checks that the configuration can be solved analytically.
func (c Configuration) validate() error {
	switch {
	case c.Battery == nil:
		return unsolvable("no battery")
	case c.Motor == nil:
		return unsolvable("no motor")
	case c.Propeller == nil:
		return unsolvable("no propeller")
	case c.Motor.Kv <= 0 || c.Motor.Kt <= 0:
		return unsolvable("motor kv must be positive")
	case c.TotalResistance() <= 0:
		return unsolvable("total resistance must be positive")
	case c.Propeller.Blades < 1:
		return unsolvable("propeller needs at least one blade")
	case c.Battery.Voltage <= 0:
		return unsolvable("battery voltage must be positive")
	}
	return nil
}
