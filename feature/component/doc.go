// Package component turns user inventory rows into typed propulsion components.
//
// Each resolver (ResolveBattery, ResolveMotor, ResolveESC, ResolvePropeller)
// matches a row against the catalog with core/match and derives the electrical
// or mechanical constants the solver needs:
//   - Battery: series and parallel cell counts, pack voltage and resistance.
//   - Motor: kv, torque constant kt, resistance and no-load current.
//   - ESC: internal resistance.
//   - Propeller: geometry, thrust and power constants, blade efficiency.
//
// A row without a usable match resolves to (nil, false, nil). Only fields that
// were read but cannot be used produce an *InvalidFieldError.
//
// The feature also serves the catalog summary and reload endpoints.
package component
