package propulsion

import (
	"errors"
	"fmt"

	"propulsion-estimator/feature/component"
)

var (
	// ErrEquationUnsolvable means the power balance has no positive root.
	ErrEquationUnsolvable = errors.New("equilibrium equation has no positive solution")
	// ErrNotConverged means the throttle search ran out of iterations.
	ErrNotConverged = errors.New("throttle search did not converge")
	// ErrNotCalibrated means a calibrated value was requested from an analytic model.
	ErrNotCalibrated = errors.New("model has no calibration record")
)

// RangeError reports a thrust target outside the achievable throttle envelope.
type RangeError struct {
	Target   float64
	Min      float64
	Max      float64
	Velocity float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("target thrust %.3f N at %.2f m/s outside achievable range [%.3f, %.3f] N", e.Target, e.Velocity, e.Min, e.Max)
}

func unsolvable(reason string) error {
	return fmt.Errorf("%w: %s", ErrEquationUnsolvable, reason)
}

func checkThrottle(throttle float64) error {
	if throttle < 0 || throttle > 1 || throttle != throttle {
		return &component.InvalidFieldError{
			Domain: "operating_point",
			Field:  "throttle",
			Value:  throttle,
			Reason: "throttle must be between 0 and 1",
		}
	}
	return nil
}
