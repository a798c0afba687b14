package calibration

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrIncompleteExport is returned when an export lacks a value the
// calibrated model depends on.
var ErrIncompleteExport = errors.New("calculator export is incomplete")

var unitSuffix = regexp.MustCompile(`[a-zA-Z%°/]+$`)

// Section markers of the calculator export, in file order.
const (
	markerBattery    = "Battery;;"
	markerController = "Controller;;"
	markerMotor      = "Motor @ Maximum;;"
	markerPropeller  = "Propeller;;"
	markerDrive      = "Total Drive;;"
	markerAirplane   = "Airplane"
	markerRemarks    = "Remarks:;;"
)

type section []string

// sectionOf returns the lines from the one containing start up to, but not
// including, the first later line containing end.
func sectionOf(lines []string, start, end string) section {
	var out section
	in := false
	for _, line := range lines {
		if !in {
			if strings.Contains(line, start) {
				in = true
				out = append(out, line)
			}
			continue
		}
		if strings.Contains(line, end) {
			break
		}
		out = append(out, line)
	}
	return out
}

// raw returns the trimmed third column of the first line starting with label.
func (s section) raw(label string) (string, bool) {
	for _, line := range s {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, label) {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) <= 2 {
			return "", false
		}
		v := strings.TrimSpace(parts[2])
		if v == "" || v == "-" {
			return "", false
		}
		return v, true
	}
	return "", false
}

// number strips the unit suffix and thousands separators before parsing.
func (s section) number(label string) (float64, bool) {
	v, ok := s.raw(label)
	if !ok {
		return 0, false
	}
	v = strings.TrimSpace(unitSuffix.ReplaceAllString(v, ""))
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (s section) num(label string) float64 {
	f, _ := s.number(label)
	return f
}

func (s section) str(label string) string {
	v, _ := s.raw(label)
	return v
}

// ParseExport reads a semicolon separated calculator export.
func ParseExport(r io.Reader) (*Record, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	all := section(lines)
	battery := sectionOf(lines, markerBattery, markerController)
	controller := sectionOf(lines, markerController, markerMotor)
	motor := sectionOf(lines, markerMotor, "Propeller")
	propeller := sectionOf(lines, markerPropeller, markerDrive)
	drive := sectionOf(lines, markerDrive, markerAirplane)
	airplane := sectionOf(lines, markerAirplane, markerRemarks)

	rec := &Record{
		ProjectName: all.str("Project Name;;"),
		Remarks:     all.str(markerRemarks),
		Battery: BatteryResult{
			Type:            battery.str(markerBattery),
			Configuration:   battery.str("Configuration:;;"),
			Load:            battery.num("Load:;C;"),
			Voltage:         battery.num("Voltage:;V;"),
			RatedVoltage:    battery.num("Rated Voltage:;V;"),
			Energy:          battery.num("Energy:;Wh;"),
			TotalCapacity:   battery.num("Total Capacity:;mAh;"),
			UsedCapacity:    battery.num("Used Capacity:;mAh;"),
			MinFlightTime:   battery.num("min. Flight Time:;min;"),
			MixedFlightTime: battery.num("Mixed Flight Time:;min;"),
			Weight:          battery.num("Weight:;g;"),
		},
		Controller: ControllerResult{
			Type:              controller.str(markerController),
			ContinuousCurrent: controller.num("Current:;A cont.;"),
			MaxCurrent:        controller.num(";A max;"),
			Weight:            controller.num("Weight:;g;"),
		},
		Motor: MotorResult{
			Type:          motor.str(markerMotor),
			GearRatio:     motor.num("Gear Ratio:;: 1;"),
			Weight:        motor.num("Weight:;g;"),
			Current:       motor.num("Current:;A;"),
			Voltage:       motor.num("Voltage:;V;"),
			Revolutions:   motor.num("Revolutions*:"),
			ElectricPower: motor.num("electric Power:;W;"),
			MechPower:     motor.num("mech. Power:;W;"),
			Efficiency:    motor.num("Efficiency:;%;"),
			Temperature:   motor.num("est. Temperature:;°C;"),
		},
		Propeller: PropellerResult{
			Type:           propeller.str(markerPropeller),
			Blades:         propeller.num("# Blades:;;"),
			StaticThrust:   propeller.num("Static Thrust:;g;"),
			Revolutions:    propeller.num("Revolutions*:"),
			StallThrust:    propeller.num("Stall Thrust:;g;"),
			PitchSpeed:     propeller.num("Pitch Speed:;km/h;"),
			SpecificThrust: propeller.num("specific Thrust:;g/W;"),
		},
		Drive: DriveResult{
			Weight:        drive.num("Drive Weight:;g;"),
			PowerWeight:   drive.num("Power-Weight:;W/kg;"),
			ThrustWeight:  drive.num("Thrust-Weight:;: 1;"),
			CurrentMax:    drive.num("Current @ max:;A;"),
			PowerInMax:    drive.num("P(in) @ max:;W;"),
			PowerOutMax:   drive.num("P(out) @ max:;W;"),
			EfficiencyMax: drive.num("Efficiency @ max:;%;"),
		},
		Airplane: AirplaneResult{
			Motors:        airplane.num("# of Motors:;;"),
			AllUpWeight:   airplane.num("All-up Weight:;g;"),
			WingArea:      airplane.str("Wing Area:;;"),
			WingLoad:      airplane.num("Wing Load:;g/dm²;"),
			CubicWingLoad: airplane.str("Cubic Wing Load:;;"),
			StallSpeed:    airplane.num("est. Stall Speed:;km/h;"),
			LevelSpeed:    airplane.num("est. Speed (level):;km/h;"),
			VerticalSpeed: airplane.num("est. Speed (vertical):;km/h;"),
			RateOfClimb:   airplane.num("est. rate of climb:;m/s;"),
		},
	}

	// The available thrust column carries "<grams> @ <km/h>".
	if v, ok := propeller.raw("avail.Thrust @ Flight Speed:;g@km/h;"); ok {
		head := strings.ReplaceAll(strings.TrimSpace(strings.SplitN(v, "@", 2)[0]), ",", "")
		if f, err := strconv.ParseFloat(head, 64); err == nil {
			rec.Propeller.AvailableThrust = f
		}
	}

	var missing []string
	for _, req := range []struct {
		name  string
		sec   section
		label string
	}{
		{"Static Thrust", propeller, "Static Thrust:;g;"},
		{"Revolutions", propeller, "Revolutions*:"},
		{"Motor Current", motor, "Current:;A;"},
		{"Mixed Flight Time", battery, "Mixed Flight Time:;min;"},
	} {
		if _, ok := req.sec.number(req.label); !ok {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncompleteExport, strings.Join(missing, ", "))
	}
	return rec, nil
}
