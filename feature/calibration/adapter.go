package calibration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"propulsion-estimator/core/metrics"
	"propulsion-estimator/core/storage"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bridgeResponse is the payload returned by the calculator bridge. Torque and
// the maximum RPM are read from the calculator page rather than its export.
type bridgeResponse struct {
	Export string  `json:"export"`
	MaxRPM float64 `json:"max_rpm"`
	Torque float64 `json:"torque"`
}

// HTTPAdapter drives the calculator through an HTTP bridge.
type HTTPAdapter struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	store    storage.Client
	bucket   string
	prefix   string
	logger   *zap.Logger
}

// NewHTTPAdapter creates an adapter for the configured bridge. store may be
// nil, in which case raw exports are not archived.
func NewHTTPAdapter(cfg Config, store storage.Client, bucket string, logger *zap.Logger) *HTTPAdapter {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPAdapter{
		endpoint: cfg.Endpoint,
		timeout:  timeout,
		client:   &http.Client{},
		store:    store,
		bucket:   bucket,
		prefix:   cfg.ArchivePrefix,
		logger:   logger,
	}
}

// Calibrate posts the request to the bridge and parses the returned export.
func (a *HTTPAdapter) Calibrate(ctx context.Context, req Request) (*Record, error) {
	started := time.Now()
	rec, raw, err := a.roundTrip(ctx, req)
	if err != nil {
		metrics.RecordCalibration("error", started)
		a.logger.Warn("Calibration failed",
			zap.String("motor", req.MotorType),
			zap.Duration("duration", time.Since(started)),
			zap.Error(err),
		)
		return nil, err
	}
	metrics.RecordCalibration("ok", started)

	if a.store != nil {
		name := path.Join(a.prefix, uuid.NewString()+".csv")
		if err := storage.WriteObject(ctx, a.store, a.bucket, name, "text/csv", raw); err != nil {
			a.logger.Warn("Failed to archive calculator export", zap.String("object", name), zap.Error(err))
		}
	}

	a.logger.Info("Calibration completed",
		zap.String("motor", req.MotorType),
		zap.Float64("static_thrust_g", rec.Propeller.StaticThrust),
		zap.Duration("duration", time.Since(started)),
	)
	return rec, nil
}

func (a *HTTPAdapter) roundTrip(ctx context.Context, req Request) (*Record, []byte, error) {
	if a.endpoint == "" {
		return nil, nil, &RetrievalError{Op: "request", Err: fmt.Errorf("no calculator endpoint configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode calibration request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, nil, &RetrievalError{Op: "request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, nil, &RetrievalError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &RetrievalError{Op: "read", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &RetrievalError{Op: "request", StatusCode: resp.StatusCode, Err: fmt.Errorf("bad_status: %s", strings.TrimSpace(string(payload)))}
	}

	var out bridgeResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, nil, &RetrievalError{Op: "decode", Err: err}
	}

	rec, err := ParseExport(strings.NewReader(out.Export))
	if err != nil {
		return nil, nil, &RetrievalError{Op: "parse", Err: err}
	}
	rec.Motor.Torque = out.Torque
	rec.Propeller.MaxRPM = out.MaxRPM
	return rec, []byte(out.Export), nil
}
