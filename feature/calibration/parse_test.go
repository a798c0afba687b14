package calibration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExport(t *testing.T) {
	f, err := os.Open("testdata/export.csv")
	require.NoError(t, err)
	defer f.Close()

	rec, err := ParseExport(f)
	require.NoError(t, err)

	assert.Equal(t, "TestProject", rec.ProjectName)
	assert.Equal(t, "LiPo 4200mAh - 80/120C", rec.Battery.Type)
	assert.Equal(t, "6S1P", rec.Battery.Configuration)
	assert.Equal(t, 4200.0, rec.Battery.TotalCapacity)
	assert.Equal(t, 11.6, rec.Battery.MixedFlightTime)
	assert.Equal(t, 22.2, rec.Battery.RatedVoltage)
	assert.Equal(t, 20.71, rec.Battery.Voltage)

	assert.Equal(t, "max 50A", rec.Controller.Type)
	assert.Equal(t, 60.0, rec.Controller.MaxCurrent)

	assert.Equal(t, 51.87, rec.Motor.Current)
	assert.Equal(t, 20.16, rec.Motor.Voltage)
	assert.Equal(t, 4874.0, rec.Motor.Revolutions)
	assert.Equal(t, 1045.7, rec.Motor.ElectricPower)
	assert.Equal(t, 918.4, rec.Motor.MechPower)
	assert.Equal(t, 62.0, rec.Motor.Temperature)

	assert.Equal(t, 2.0, rec.Propeller.Blades)
	assert.Equal(t, 4180.0, rec.Propeller.StaticThrust)
	assert.Equal(t, 2613.0, rec.Propeller.AvailableThrust)
	assert.Equal(t, 0.0, rec.Propeller.StallThrust)
	assert.Equal(t, 4.0, rec.Propeller.SpecificThrust)

	assert.Equal(t, 1.39, rec.Drive.ThrustWeight)
	assert.Equal(t, 1310.0, rec.Drive.Weight)
	assert.Equal(t, 3000.0, rec.Airplane.AllUpWeight)
	assert.Equal(t, "70.00 dm²", rec.Airplane.WingArea)
	assert.Equal(t, 43.0, rec.Airplane.WingLoad)
	assert.Equal(t, "none", rec.Remarks)
}

func TestParseExport_Incomplete(t *testing.T) {
	export := strings.Join([]string{
		"Battery;;LiPo",
		"Mixed Flight Time:;min;-",
		"Controller;;x",
		"Motor @ Maximum;;m",
		"Current:;A;10",
		"Propeller;;p",
		"Static Thrust:;g;1,000",
		"Revolutions*:;rpm;5000",
		"Total Drive;;",
	}, "\n")

	_, err := ParseExport(strings.NewReader(export))
	require.ErrorIs(t, err, ErrIncompleteExport)
	assert.Contains(t, err.Error(), "Mixed Flight Time")
	assert.NotContains(t, err.Error(), "Static Thrust")
}

func TestSectionNumber(t *testing.T) {
	s := section{"Energy:;Wh;1,093.5 Wh", "Load:;C;abc", "Weight:;g;"}

	v, ok := s.number("Energy:;Wh;")
	assert.True(t, ok)
	assert.Equal(t, 1093.5, v)

	_, ok = s.number("Load:;C;")
	assert.False(t, ok)

	_, ok = s.number("Weight:;g;")
	assert.False(t, ok)

	_, ok = s.number("Nope")
	assert.False(t, ok)
}
