package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"propulsion-estimator/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordMatch(t *testing.T) {
	before := testutil.ToFloat64(metrics.MatchesTotal.WithLabelValues("motor", "none"))
	metrics.RecordMatch("motor", "")
	after := testutil.ToFloat64(metrics.MatchesTotal.WithLabelValues("motor", "none"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	metrics.RecordSolverError("unsolvable")
	metrics.RecordCalibration("ok", time.Now())

	app := fiber.New()
	app.Get("/metrics", metrics.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "propulsion_solver_errors_total")
}
