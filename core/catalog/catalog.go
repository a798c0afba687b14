package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"propulsion-estimator/core/metrics"

	"go.uber.org/zap"
)

// Domain names used in logs, metrics and snapshot object names.
const (
	DomainBattery   = "battery"
	DomainMotor     = "motor"
	DomainESC       = "esc"
	DomainPropeller = "propeller"
)

// ErrNotLoaded is returned when the store has never completed a load.
var ErrNotLoaded = errors.New("catalog not loaded")

// Catalog is an immutable snapshot of the reference component tables.
// Callers must not modify the slices.
type Catalog struct {
	Batteries  []Battery
	Motors     []Motor
	ESCs       []ESC
	Propellers []Propeller
	Source     string
	LoadedAt   time.Time
}

// Counts returns the number of records per domain.
func (c *Catalog) Counts() map[string]int {
	if c == nil {
		return map[string]int{DomainBattery: 0, DomainMotor: 0, DomainESC: 0, DomainPropeller: 0}
	}
	return map[string]int{
		DomainBattery:   len(c.Batteries),
		DomainMotor:     len(c.Motors),
		DomainESC:       len(c.ESCs),
		DomainPropeller: len(c.Propellers),
	}
}

// Loader produces a fresh catalog from its backing source.
type Loader func(ctx context.Context) (*Catalog, error)

// Store holds the current catalog. Readers always see a complete snapshot;
// Reload swaps it atomically once the new one has loaded successfully.
type Store struct {
	current atomic.Pointer[Catalog]
	load    Loader
	mu      sync.Mutex
	logger  *zap.Logger
}

// NewStore creates a store backed by the given loader.
func NewStore(load Loader, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{load: load, logger: logger}
}

// NewStaticStore creates a store that always serves the given catalog.
func NewStaticStore(c *Catalog) *Store {
	s := NewStore(func(context.Context) (*Catalog, error) { return c, nil }, nil)
	s.current.Store(c)
	return s
}

// Current returns the active catalog snapshot.
func (s *Store) Current() (*Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrNotLoaded
	}
	return c, nil
}

// Reload loads a new snapshot and swaps it in. On failure the previous
// snapshot stays active.
func (s *Store) Reload(ctx context.Context) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	next, err := s.load(ctx)
	if err != nil {
		s.logger.Error("Catalog reload failed", zap.Error(err))
		return nil, fmt.Errorf("failed to reload catalog: %w", err)
	}
	if next.LoadedAt.IsZero() {
		stamped := *next
		stamped.LoadedAt = time.Now()
		next = &stamped
	}
	s.current.Store(next)

	counts := next.Counts()
	for domain, n := range counts {
		metrics.CatalogRecords.WithLabelValues(domain).Set(float64(n))
	}
	s.logger.Info("Catalog loaded",
		zap.String("source", next.Source),
		zap.Int("batteries", counts[DomainBattery]),
		zap.Int("motors", counts[DomainMotor]),
		zap.Int("escs", counts[DomainESC]),
		zap.Int("propellers", counts[DomainPropeller]),
		zap.Duration("duration", time.Since(started)),
	)
	return next, nil
}
