package propulsion

// Report bundles the outputs of one operating point.
type Report struct {
	Mode            string  `json:"mode"`
	Velocity        float64 `json:"velocity"`
	Throttle        float64 `json:"throttle"`
	MaxRPM          float64 `json:"max_rpm,omitempty"`
	StaticThrust    float64 `json:"static_thrust_n"`
	DynamicThrust   float64 `json:"dynamic_thrust_n"`
	MechanicalPower float64 `json:"mechanical_power_w"`
	Torque          float64 `json:"torque_nm"`
	Current         float64 `json:"current_a"`
	Endurance       float64 `json:"endurance_min"`
	Resistance      float64 `json:"total_resistance"`

	ThrustToWeight     *float64 `json:"thrust_to_weight,omitempty"`
	CalibratedThrottle *float64 `json:"calibrated_throttle,omitempty"`

	TargetThrust     *float64        `json:"target_thrust_n,omitempty"`
	RequiredThrottle *ThrottleResult `json:"required_throttle,omitempty"`
}

// Analyze evaluates every output at op. When target is set the throttle
// search runs at op's velocity as well.
func (m *Model) Analyze(op OperatingPoint, target *float64) (*Report, error) {
	if err := checkThrottle(op.Throttle); err != nil {
		return nil, err
	}

	r := &Report{
		Mode:       m.Mode(),
		Velocity:   op.Velocity,
		Throttle:   op.Throttle,
		Resistance: m.cfg.TotalResistance(),
	}

	maxRPM, err := m.MaxRPM()
	if err != nil && m.record == nil {
		return nil, err
	}
	if err == nil {
		r.MaxRPM = maxRPM
	}

	steps := []struct {
		dst *float64
		fn  func() (float64, error)
	}{
		{&r.StaticThrust, func() (float64, error) { return m.StaticThrust(op.Throttle) }},
		{&r.DynamicThrust, func() (float64, error) { return m.DynamicThrust(op.Velocity, op.Throttle) }},
		{&r.MechanicalPower, func() (float64, error) { return m.MechanicalPower(op.Throttle) }},
		{&r.Torque, func() (float64, error) { return m.Torque(op.Throttle) }},
		{&r.Current, func() (float64, error) { return m.CurrentDraw(op.Throttle) }},
		{&r.Endurance, func() (float64, error) { return m.Endurance(op.Throttle) }},
	}
	for _, s := range steps {
		v, err := s.fn()
		if err != nil {
			return nil, err
		}
		*s.dst = v
	}

	if m.record != nil {
		tw, _ := m.ThrustToWeight()
		r.ThrustToWeight = &tw
		if ct, err := m.CalibratedThrottle(); err == nil {
			r.CalibratedThrottle = &ct
		}
	}

	if target != nil {
		t := *target
		res, err := m.ThrottleForThrust(op.Velocity, t)
		if m.opts.RequireConverged {
			res, err = RequireConverged(res, err)
		}
		if err != nil {
			return nil, err
		}
		r.TargetThrust = &t
		r.RequiredThrottle = &res
	}
	return r, nil
}
