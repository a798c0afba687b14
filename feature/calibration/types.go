package calibration

import "context"

// Request describes one configuration for the external calculator.
type Request struct {
	Weight            float64 `json:"weight"`
	Wingspan          float64 `json:"wingspan"`
	WingArea          float64 `json:"wing_area"`
	Elevation         float64 `json:"elevation"`
	Velocity          float64 `json:"velocity"`
	BatteryID         string  `json:"battery_id"`
	SeriesCells       int     `json:"series_cells"`
	ParallelCells     float64 `json:"parallel_cells"`
	ESCID             string  `json:"esc_id"`
	MotorManufacturer string  `json:"motor_manufacturer"`
	MotorType         string  `json:"motor_type"`
	PropellerID       string  `json:"propeller_id"`
	PropellerDiameter float64 `json:"propeller_diameter"`
	PropellerPitch    float64 `json:"propeller_pitch"`
	BladeCount        int     `json:"blade_count"`
}

// Adapter retrieves measured-style performance records for a configuration.
type Adapter interface {
	Calibrate(ctx context.Context, req Request) (*Record, error)
}

// Record is a parsed calculator export. Thrust values are grams-force,
// flight times minutes, speeds km/h.
type Record struct {
	ProjectName string           `json:"project_name,omitempty"`
	Battery     BatteryResult    `json:"battery"`
	Controller  ControllerResult `json:"controller"`
	Motor       MotorResult      `json:"motor"`
	Propeller   PropellerResult  `json:"propeller"`
	Drive       DriveResult      `json:"drive"`
	Airplane    AirplaneResult   `json:"airplane"`
	Remarks     string           `json:"remarks,omitempty"`
}

type BatteryResult struct {
	Type            string  `json:"type"`
	Configuration   string  `json:"configuration"`
	Load            float64 `json:"load_c"`
	Voltage         float64 `json:"voltage_v"`
	RatedVoltage    float64 `json:"rated_voltage_v"`
	Energy          float64 `json:"energy_wh"`
	TotalCapacity   float64 `json:"total_capacity_mah"`
	UsedCapacity    float64 `json:"used_capacity_mah"`
	MinFlightTime   float64 `json:"min_flight_time_min"`
	MixedFlightTime float64 `json:"mixed_flight_time_min"`
	Weight          float64 `json:"weight_g"`
}

type ControllerResult struct {
	Type              string  `json:"type"`
	ContinuousCurrent float64 `json:"current_cont_a"`
	MaxCurrent        float64 `json:"current_max_a"`
	Weight            float64 `json:"weight_g"`
}

type MotorResult struct {
	Type          string  `json:"type"`
	GearRatio     float64 `json:"gear_ratio"`
	Weight        float64 `json:"weight_g"`
	Current       float64 `json:"current_a"`
	Voltage       float64 `json:"voltage_v"`
	Revolutions   float64 `json:"revolutions_rpm"`
	ElectricPower float64 `json:"electric_power_w"`
	MechPower     float64 `json:"mech_power_w"`
	Efficiency    float64 `json:"efficiency_pct"`
	Temperature   float64 `json:"temperature_c"`
	// Torque is reported by the calculator page, not the export.
	Torque float64 `json:"torque_nm"`
}

type PropellerResult struct {
	Type            string  `json:"type"`
	Blades          float64 `json:"blades"`
	StaticThrust    float64 `json:"static_thrust_g"`
	Revolutions     float64 `json:"revolutions_rpm"`
	StallThrust     float64 `json:"stall_thrust_g"`
	MaxRPM          float64 `json:"max_rpm"`
	AvailableThrust float64 `json:"avail_thrust_g"`
	PitchSpeed      float64 `json:"pitch_speed_kmh"`
	SpecificThrust  float64 `json:"specific_thrust_g_w"`
}

type DriveResult struct {
	Weight        float64 `json:"weight_g"`
	PowerWeight   float64 `json:"power_weight_w_kg"`
	ThrustWeight  float64 `json:"thrust_weight_ratio"`
	CurrentMax    float64 `json:"current_max_a"`
	PowerInMax    float64 `json:"p_in_max_w"`
	PowerOutMax   float64 `json:"p_out_max_w"`
	EfficiencyMax float64 `json:"efficiency_max_pct"`
}

type AirplaneResult struct {
	Motors        float64 `json:"motors"`
	AllUpWeight   float64 `json:"all_up_weight_g"`
	WingArea      string  `json:"wing_area"`
	WingLoad      float64 `json:"wing_load_g_dm2"`
	CubicWingLoad string  `json:"cubic_wing_load"`
	StallSpeed    float64 `json:"stall_speed_kmh"`
	LevelSpeed    float64 `json:"level_speed_kmh"`
	VerticalSpeed float64 `json:"vertical_speed_kmh"`
	RateOfClimb   float64 `json:"rate_of_climb_ms"`
}
