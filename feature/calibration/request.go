package calibration

import "propulsion-estimator/feature/component"

// Airframe holds the aircraft parameters the calculator needs besides the
// drive components. Weight is in grams, Wingspan in millimetres, WingArea in
// square decimetres and Elevation in metres.
type Airframe struct {
	Weight    float64 `json:"weight"`
	Wingspan  float64 `json:"wingspan"`
	WingArea  float64 `json:"wing_area"`
	Elevation float64 `json:"elevation"`
}

// NewRequest assembles a calculator request from resolved components.
// Absent components leave their fields empty.
func NewRequest(af Airframe, velocity float64, r *component.Resolved) Request {
	req := Request{
		Weight:    af.Weight,
		Wingspan:  af.Wingspan,
		WingArea:  af.WingArea,
		Elevation: af.Elevation,
		Velocity:  velocity,
	}
	if r == nil {
		return req
	}
	if b := r.Battery; b != nil {
		req.BatteryID = b.Name
		req.SeriesCells = b.SeriesCells
		req.ParallelCells = b.ParallelCells
	}
	if e := r.ESC; e != nil {
		req.ESCID = e.Name
	}
	if m := r.Motor; m != nil {
		req.MotorManufacturer = m.Manufacturer
		req.MotorType = m.Name
	}
	if p := r.Propeller; p != nil {
		req.PropellerID = p.Name
		req.PropellerDiameter = p.Diameter
		req.PropellerPitch = p.Pitch
		req.BladeCount = p.Blades
	}
	return req
}
