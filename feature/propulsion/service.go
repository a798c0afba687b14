package propulsion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"propulsion-estimator/core/metrics"
	"propulsion-estimator/core/sweep"
	"propulsion-estimator/feature/calibration"
	"propulsion-estimator/feature/component"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrIncompleteSetup means a requested component had no catalog match.
var ErrIncompleteSetup = errors.New("setup has unmatched components")

// ErrCalibrationUnavailable means calibrated mode was requested without an adapter.
var ErrCalibrationUnavailable = errors.New("calibrated mode is not configured")

// AnalyzeRequest describes one analysis.
type AnalyzeRequest struct {
	Setup    component.Setup `json:"setup"`
	Velocity float64         `json:"velocity"`
	// Throttle defaults to full throttle.
	Throttle     *float64             `json:"throttle,omitempty"`
	TargetThrust *float64             `json:"target_thrust,omitempty"`
	Mode         string               `json:"mode,omitempty"`
	Airframe     calibration.Airframe `json:"airframe"`
}

// ThrottleRequest asks for the throttle producing a thrust at a velocity.
type ThrottleRequest struct {
	Setup        component.Setup `json:"setup"`
	Velocity     float64         `json:"velocity"`
	TargetThrust float64         `json:"target_thrust"`
}

// Service builds models from inventory setups and evaluates them.
type Service struct {
	components *component.Service
	adapter    calibration.Adapter
	opts       Config
	mode       string
	memo       *sweep.Memo[*Report]
	logger     *zap.Logger

	mu       sync.Mutex
	snapshot time.Time
}

// NewService creates a new propulsion service. adapter may be nil when no
// calculator is configured; mode is the default analysis mode.
func NewService(components *component.Service, adapter calibration.Adapter, opts Config, mode string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == "" {
		mode = ModeAnalytic
	}
	opts = opts.withDefaults()
	return &Service{
		components: components,
		adapter:    adapter,
		opts:       opts,
		mode:       mode,
		memo:       sweep.NewBounded[*Report](opts.MemoCapacity),
		logger:     logger,
	}
}

// Analyze resolves the setup and evaluates it. Results are memoized per
// request and catalog snapshot.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*Report, error) {
	if req.Mode == "" {
		req.Mode = s.mode
	}
	req.Mode = strings.ToLower(req.Mode)
	if req.Mode != ModeAnalytic && req.Mode != ModeCalibrated {
		return nil, fmt.Errorf("unknown analysis mode: %s", req.Mode)
	}
	if req.Throttle == nil {
		full := 1.0
		req.Throttle = &full
	}

	key, err := s.memoKey(req)
	if err != nil {
		return nil, err
	}
	report, err := s.memo.Get(key, func() (*Report, error) {
		return s.analyze(ctx, req)
	})
	if err != nil {
		var rerr *calibration.RetrievalError
		if errors.As(err, &rerr) {
			s.memo.Invalidate(key)
		}
		s.recordError(err)
		return nil, err
	}
	return report, nil
}

func (s *Service) analyze(ctx context.Context, req AnalyzeRequest) (*Report, error) {
	resolved, err := s.resolve(req.Setup)
	if err != nil {
		return nil, err
	}
	cfg := NewConfiguration(resolved, req.Velocity)

	model := NewModel(cfg, s.opts)
	if req.Mode == ModeCalibrated {
		if s.adapter == nil {
			return nil, ErrCalibrationUnavailable
		}
		rec, err := s.adapter.Calibrate(ctx, calibration.NewRequest(req.Airframe, req.Velocity, resolved))
		if err != nil {
			return nil, err
		}
		model = NewCalibratedModel(cfg, s.opts, rec)
	}

	report, err := model.Analyze(OperatingPoint{Velocity: req.Velocity, Throttle: *req.Throttle}, req.TargetThrust)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Propulsion analyzed",
		zap.String("mode", report.Mode),
		zap.Float64("velocity", report.Velocity),
		zap.Float64("max_rpm", report.MaxRPM),
		zap.Float64("static_thrust_n", report.StaticThrust),
	)
	return report, nil
}

// Throttle resolves the setup and searches the throttle for the target thrust.
func (s *Service) Throttle(ctx context.Context, req ThrottleRequest) (ThrottleResult, error) {
	resolved, err := s.resolve(req.Setup)
	if err != nil {
		s.recordError(err)
		return ThrottleResult{}, err
	}
	model := NewModel(NewConfiguration(resolved, req.Velocity), s.opts)
	res, err := model.ThrottleForThrust(req.Velocity, req.TargetThrust)
	if s.opts.RequireConverged {
		res, err = RequireConverged(res, err)
	}
	if err != nil {
		s.recordError(err)
		return ThrottleResult{}, err
	}
	return res, nil
}

// Sweep analyzes the request at each velocity concurrently. Repeated
// velocities are evaluated once.
func (s *Service) Sweep(ctx context.Context, req AnalyzeRequest, velocities []float64) ([]*Report, error) {
	out := make([]*Report, len(velocities))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, v := range velocities {
		g.Go(func() error {
			r := req
			r.Velocity = v
			report, err := s.Analyze(gctx, r)
			if err != nil {
				return fmt.Errorf("velocity %.2f: %w", v, err)
			}
			out[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) resolve(setup component.Setup) (*component.Resolved, error) {
	resolved, err := s.components.ResolveSetup(setup)
	if err != nil {
		return nil, err
	}
	if len(resolved.Missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteSetup, strings.Join(resolved.Missing, ", "))
	}
	return resolved, nil
}

func (s *Service) memoKey(req AnalyzeRequest) (string, error) {
	cat, err := s.components.Catalog()
	if err != nil {
		return "", err
	}
	// A new catalog snapshot invalidates every memoized report.
	s.mu.Lock()
	if !cat.LoadedAt.Equal(s.snapshot) {
		s.memo.Reset()
		s.snapshot = cat.LoadedAt
	}
	s.mu.Unlock()

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis key: %w", err)
	}
	return sweep.Key(cat.LoadedAt.UnixNano(), string(body)), nil
}

func (s *Service) recordError(err error) {
	var rangeErr *RangeError
	var fieldErr *component.InvalidFieldError
	var rerr *calibration.RetrievalError
	switch {
	case errors.Is(err, ErrEquationUnsolvable):
		metrics.RecordSolverError("unsolvable")
	case errors.Is(err, ErrNotConverged):
		metrics.RecordSolverError("not_converged")
	case errors.As(err, &rangeErr):
		metrics.RecordSolverError("range")
	case errors.As(err, &fieldErr):
		metrics.RecordSolverError("invalid_field")
	case errors.As(err, &rerr):
		metrics.RecordSolverError("calibration")
	case errors.Is(err, ErrIncompleteSetup):
		metrics.RecordSolverError("incomplete_setup")
	}
}
