package propulsion

import (
	"fmt"
	"math"
	"sync"

	"propulsion-estimator/feature/calibration"
)

// Model constants. Diameter and pitch are in inches, speeds in rpm.
const (
	// PowerConstant scales the absorbed propeller power to watts.
	PowerConstant = 4.019e-15
	// MotorConstant converts rpm to rad/s.
	MotorConstant = 2 * math.Pi / 60
	// ThrustConstant scales static thrust to grams-force.
	ThrustConstant = 2.691e-9
	// Gravity converts grams-force to newtons.
	Gravity = 9.80665

	inchToMeter   = 0.0254
	dragQuadratic = 31.0 / 130.0
	dragLinear    = 0.4543
	epsilon       = 1e-9
	rpmIterations = 200
)

// Analysis modes.
const (
	ModeAnalytic   = "analytic"
	ModeCalibrated = "calibrated"
)

// OperatingPoint is a velocity in m/s and a throttle in [0, 1].
type OperatingPoint struct {
	Velocity float64 `json:"velocity"`
	Throttle float64 `json:"throttle"`
}

// Model evaluates a configuration. Outputs are pure functions of the
// configuration and the operating point; only the full-throttle RPM is
// computed once per model.
type Model struct {
	cfg    Configuration
	opts   Config
	record *calibration.Record

	once   sync.Once
	maxRPM float64
	maxErr error
}

// NewModel creates an analytic model.
func NewModel(cfg Configuration, opts Config) *Model {
	return &Model{cfg: cfg, opts: opts.withDefaults()}
}

// NewCalibratedModel creates a model whose outputs come from a calculator record.
func NewCalibratedModel(cfg Configuration, opts Config, rec *calibration.Record) *Model {
	m := NewModel(cfg, opts)
	m.record = rec
	return m
}

// Configuration returns the configuration the model evaluates.
func (m *Model) Configuration() Configuration {
	return m.cfg
}

// Mode returns ModeCalibrated when the model holds a calculator record.
func (m *Model) Mode() string {
	if m.record != nil {
		return ModeCalibrated
	}
	return ModeAnalytic
}

// propCoefficient is C1·sqrt(NB-1)·Pc·D⁴·pitch.
func (m *Model) propCoefficient() float64 {
	p := m.cfg.Propeller
	return PowerConstant * math.Sqrt(float64(p.Blades-1)) * p.Pconst * math.Pow(p.Diameter, 4) * p.Pitch
}

// PropellerPower is the power in watts absorbed by the propeller at rpm.
func (m *Model) PropellerPower(rpm float64) float64 {
	if m.cfg.Propeller == nil || m.cfg.Propeller.Blades < 1 {
		return 0
	}
	return m.propCoefficient() * rpm * rpm * rpm
}

// MotorPower is the mechanical power in watts the motor delivers at rpm.
func (m *Model) MotorPower(rpm, throttle float64) float64 {
	c := m.cfg
	if c.Motor == nil || c.Battery == nil || c.Motor.Kv == 0 {
		return 0
	}
	r := c.TotalResistance()
	if r <= 0 {
		return 0
	}
	current := (c.Battery.Voltage*throttle-rpm/c.Motor.Kv)/r - c.Motor.NoLoadCurrent
	return MotorConstant * rpm * c.Motor.Kt * current
}

// EquilibriumRPM returns the positive rpm at which motor and propeller power
// balance at the given throttle. Both sides vanish at zero rpm, so the
// residual is divided by rpm; the result is strictly decreasing and has at
// most one root in (0, kv·V·throttle].
func (m *Model) EquilibriumRPM(throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if err := m.cfg.validate(); err != nil {
		return 0, err
	}
	if throttle == 0 {
		return 0, nil
	}

	c := m.cfg
	volts := c.Battery.Voltage * throttle
	r := c.TotalResistance()
	k := m.propCoefficient()
	residual := func(rpm float64) float64 {
		return MotorConstant*c.Motor.Kt*((volts-rpm/c.Motor.Kv)/r-c.Motor.NoLoadCurrent) - k*rpm*rpm
	}

	if residual(0) <= 0 {
		return 0, unsolvable(fmt.Sprintf("no-load current %.3f A exceeds available current at throttle %.3f", c.Motor.NoLoadCurrent, throttle))
	}

	lo, hi := 0.0, c.Motor.Kv*volts
	for i := 0; i < rpmIterations && hi-lo > epsilon*hi; i++ {
		mid := (lo + hi) / 2
		if residual(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// MaxRPM is the equilibrium rpm at full throttle.
func (m *Model) MaxRPM() (float64, error) {
	m.once.Do(func() {
		m.maxRPM, m.maxErr = m.EquilibriumRPM(1)
	})
	return m.maxRPM, m.maxErr
}

// StaticThrust returns the thrust in newtons at zero velocity.
func (m *Model) StaticThrust(throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if m.record != nil {
		return gramsToNewtons(m.record.Propeller.StaticThrust), nil
	}
	return m.analyticStatic(throttle)
}

// DynamicThrust returns the thrust in newtons at velocity v in m/s.
func (m *Model) DynamicThrust(v, throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if m.record != nil {
		return gramsToNewtons(m.record.Propeller.AvailableThrust), nil
	}
	return m.analyticDynamic(v, throttle)
}

func (m *Model) analyticStatic(throttle float64) (float64, error) {
	maxRPM, err := m.MaxRPM()
	if err != nil {
		return 0, err
	}
	p := m.cfg.Propeller
	rpm := maxRPM * throttle
	grams := p.Efficiency * math.Sqrt(float64(p.Blades-1)) * p.Tconst * ThrustConstant *
		math.Pow(p.Diameter, 3) * p.Pitch * rpm * rpm
	return gramsToNewtons(grams), nil
}

func (m *Model) analyticDynamic(v, throttle float64) (float64, error) {
	static, err := m.analyticStatic(throttle)
	if err != nil {
		return 0, err
	}
	maxRPM, _ := m.MaxRPM()
	return dynamicThrust(static, v, m.cfg.Propeller.Pitch, maxRPM*throttle), nil
}

// dynamicThrust applies the forward-flight correction to a static thrust.
// Negative results are clamped to zero.
func dynamicThrust(static, v, pitch, rpm float64) float64 {
	vp := pitch * inchToMeter * rpm / 60
	if math.Abs(vp) < epsilon {
		if math.Abs(v) < epsilon {
			return static
		}
		return 0
	}
	return math.Max(0, static-dragQuadratic*static*v*v/(vp*vp)-dragLinear*v*static/vp)
}

// MechanicalPower returns the shaft power in watts.
func (m *Model) MechanicalPower(throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if m.record != nil {
		return m.record.Motor.MechPower, nil
	}
	maxRPM, err := m.MaxRPM()
	if err != nil {
		return 0, err
	}
	return m.PropellerPower(maxRPM * throttle), nil
}

// Torque returns the shaft torque in N·m; zero when the propeller is stopped.
func (m *Model) Torque(throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if m.record != nil {
		return m.record.Motor.Torque, nil
	}
	maxRPM, err := m.MaxRPM()
	if err != nil {
		return 0, err
	}
	rpm := maxRPM * throttle
	if rpm == 0 {
		return 0, nil
	}
	return m.PropellerPower(rpm) * 60 / (2 * math.Pi * rpm), nil
}

// CurrentDraw returns the motor current in amperes.
func (m *Model) CurrentDraw(throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if m.record != nil {
		return m.record.Motor.Current, nil
	}
	torque, err := m.Torque(throttle)
	if err != nil {
		return 0, err
	}
	return m.cfg.Motor.NoLoadCurrent + torque/m.cfg.Motor.Kt, nil
}

// Endurance returns the flight time in minutes at a constant throttle.
func (m *Model) Endurance(throttle float64) (float64, error) {
	if err := checkThrottle(throttle); err != nil {
		return 0, err
	}
	if m.record != nil {
		return m.record.Battery.MixedFlightTime, nil
	}
	current, err := m.CurrentDraw(throttle)
	if err != nil {
		return 0, err
	}
	if m.cfg.Battery.Capacity <= 0 {
		return 0, unsolvable("battery capacity unknown")
	}
	if current <= 0 {
		return 0, unsolvable("non-positive current draw")
	}
	usableAh := m.cfg.Battery.Capacity / 1000 * m.opts.UsableCapacity
	return usableAh / current * 60, nil
}

// CalibratedThrottle is the calculator's propeller rpm over the analytic maximum rpm.
func (m *Model) CalibratedThrottle() (float64, error) {
	if m.record == nil {
		return 0, ErrNotCalibrated
	}
	maxRPM, err := m.MaxRPM()
	if err != nil {
		return 0, err
	}
	return m.record.Propeller.Revolutions / maxRPM, nil
}

// ThrustToWeight returns the calculator's thrust-to-weight ratio.
func (m *Model) ThrustToWeight() (float64, error) {
	if m.record == nil {
		return 0, ErrNotCalibrated
	}
	return m.record.Drive.ThrustWeight, nil
}

func gramsToNewtons(g float64) float64 {
	return g / 1000 * Gravity
}
