// Package propulsion solves the steady-state operating point of a battery,
// motor, speed controller and propeller.
//
// # Model
//
// At a throttle t the equilibrium rpm balances propeller and motor power:
//
//	P_prop(rpm)  = C1 · sqrt(NB-1) · Pc · D⁴ · pitch · rpm³
//	P_motor(rpm) = C2 · rpm · kt · ((V·t - rpm/kv)/R_tot - i0)
//
// The full-throttle root is the model's MaxRPM. Static thrust scales with
// (MaxRPM·t)², dynamic thrust applies a pitch-speed correction, and torque,
// current and endurance follow from the absorbed power.
//
// Thrust is reported in newtons throughout. A Model built with a calculator
// record (calibrated mode) returns the record's values through the same
// accessors, converted to the same units.
//
// # Throttle search
//
// ThrottleForThrust inverts the dynamic thrust by bisection. Targets above
// the full-throttle thrust fail with a *RangeError.
package propulsion
