package server_test

import (
	"testing"

	"propulsion-estimator/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{"Analytic", server.ModeAnalytic, true},
		{"Calibrated", server.ModeCalibrated, true},
		{"Invalid", "symbolic", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Mode: tt.mode}
			assert.Equal(t, tt.want, c.IsValidMode())
		})
	}
}
