package propulsion

import (
	"fmt"
	"math"

	"propulsion-estimator/core/metrics"
)

// ThrottleResult is the outcome of a throttle search.
type ThrottleResult struct {
	Throttle   float64 `json:"throttle"`
	Thrust     float64 `json:"thrust"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

// ThrottleForThrust finds the throttle at which the analytic dynamic thrust
// at velocity v matches target (newtons). Targets below the zero-throttle
// thrust give throttle 0; targets above the full-throttle thrust beyond the
// tolerance give a *RangeError. When the iteration budget runs out the last
// midpoint is returned with Converged false.
func (m *Model) ThrottleForThrust(v, target float64) (ThrottleResult, error) {
	tol := m.opts.Tolerance

	lowThrust, err := m.analyticDynamic(v, 0)
	if err != nil {
		return ThrottleResult{}, err
	}
	highThrust, err := m.analyticDynamic(v, 1)
	if err != nil {
		return ThrottleResult{}, err
	}

	switch {
	case target < lowThrust-tol:
		return ThrottleResult{Throttle: 0, Thrust: lowThrust, Converged: true}, nil
	case target > highThrust+tol:
		return ThrottleResult{}, &RangeError{Target: target, Min: lowThrust, Max: highThrust, Velocity: v}
	case math.Abs(target-lowThrust) < tol:
		return ThrottleResult{Throttle: 0, Thrust: lowThrust, Converged: true}, nil
	case math.Abs(target-highThrust) < tol:
		return ThrottleResult{Throttle: 1, Thrust: highThrust, Converged: true}, nil
	}

	low, high := 0.0, 1.0
	for i := 1; i <= m.opts.MaxIterations; i++ {
		mid := (low + high) / 2
		thrust, err := m.analyticDynamic(v, mid)
		if err != nil {
			return ThrottleResult{}, err
		}
		if math.Abs(thrust-target) < tol {
			metrics.ThrottleIterations.Observe(float64(i))
			return ThrottleResult{Throttle: mid, Thrust: thrust, Converged: true, Iterations: i}, nil
		}
		if thrust < target {
			low = mid
		} else {
			high = mid
		}
	}
	metrics.ThrottleIterations.Observe(float64(m.opts.MaxIterations))

	final := (low + high) / 2
	thrust, err := m.analyticDynamic(v, final)
	if err != nil {
		return ThrottleResult{}, err
	}
	return ThrottleResult{
		Throttle:   final,
		Thrust:     thrust,
		Converged:  math.Abs(thrust-target) < tol,
		Iterations: m.opts.MaxIterations,
	}, nil
}

// RequireConverged turns a non-converged search result into ErrNotConverged.
func RequireConverged(res ThrottleResult, err error) (ThrottleResult, error) {
	if err != nil {
		return res, err
	}
	if !res.Converged {
		return res, fmt.Errorf("%w: best throttle %.4f gives %.4f N", ErrNotConverged, res.Throttle, res.Thrust)
	}
	return res, nil
}
