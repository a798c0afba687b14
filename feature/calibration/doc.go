// Package calibration is the boundary to the external propulsion calculator.
//
// The calculator is treated as an opaque oracle: a Request describing the
// airframe and components goes in, and a Record parsed from the calculator's
// semicolon separated export comes out. HTTPAdapter talks to a bridge service
// that drives the calculator, bounds every call with a timeout and archives
// the raw export in object storage. Every failure is a *RetrievalError.
package calibration
