package component

import (
	"context"
	"errors"
	"fmt"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/metrics"

	"go.uber.org/zap"
)

// Inventory is a user inventory grouped by component domain.
type Inventory struct {
	Batteries  []InventoryEntry `json:"batteries"`
	Motors     []InventoryEntry `json:"motors"`
	ESCs       []InventoryEntry `json:"escs"`
	Propellers []InventoryEntry `json:"propellers"`
}

// Resolution is the outcome of resolving one inventory row.
type Resolution[T any] struct {
	Row       int    `json:"row"`
	Found     bool   `json:"found"`
	Component *T     `json:"component,omitempty"`
	Error     string `json:"error,omitempty"`
}

// InventoryReport collects the resolutions of a whole inventory.
type InventoryReport struct {
	Batteries  []Resolution[Battery]   `json:"batteries"`
	Motors     []Resolution[Motor]     `json:"motors"`
	ESCs       []Resolution[ESC]       `json:"escs"`
	Propellers []Resolution[Propeller] `json:"propellers"`
	Resolved   int                     `json:"resolved"`
	Missing    int                     `json:"missing"`
	Invalid    int                     `json:"invalid"`
}

// Setup names one inventory row per domain to assemble into a propulsion
// configuration. Any row may be omitted.
type Setup struct {
	Battery   InventoryEntry `json:"battery,omitempty"`
	Motor     InventoryEntry `json:"motor,omitempty"`
	ESC       InventoryEntry `json:"esc,omitempty"`
	Propeller InventoryEntry `json:"propeller,omitempty"`
}

// Resolved holds the components of a setup. Missing lists the domains that
// were requested but had no catalog match.
type Resolved struct {
	Battery   *Battery   `json:"battery,omitempty"`
	Motor     *Motor     `json:"motor,omitempty"`
	ESC       *ESC       `json:"esc,omitempty"`
	Propeller *Propeller `json:"propeller,omitempty"`
	Missing   []string   `json:"missing,omitempty"`
}

// Service resolves inventory rows against the active catalog.
type Service struct {
	store  *catalog.Store
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new component service.
func NewService(store *catalog.Store, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, cfg: cfg, logger: logger}
}

// Catalog returns the active catalog snapshot.
func (s *Service) Catalog() (*catalog.Catalog, error) {
	return s.store.Current()
}

// ReloadCatalog reloads the catalog from its source.
func (s *Service) ReloadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return s.store.Reload(ctx)
}

// Resolve resolves a single row of the given domain.
func (s *Service) Resolve(domain string, entry InventoryEntry) (any, bool, error) {
	cat, err := s.store.Current()
	if err != nil {
		return nil, false, err
	}
	switch domain {
	case DomainBattery:
		return track(domain, entry, cat, s.cfg, ResolveBattery)
	case DomainMotor:
		return track(domain, entry, cat, s.cfg, ResolveMotor)
	case DomainESC:
		return track(domain, entry, cat, s.cfg, ResolveESC)
	case DomainPropeller:
		return track(domain, entry, cat, s.cfg, ResolvePropeller)
	default:
		return nil, false, fmt.Errorf("unknown component domain: %s", domain)
	}
}

// ResolveInventory resolves every row. Rows without a match or with invalid
// fields are reported and skipped; the batch always completes.
func (s *Service) ResolveInventory(inv Inventory) (*InventoryReport, error) {
	cat, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{}
	report.Batteries = resolveAll(s, report, DomainBattery, inv.Batteries, cat, ResolveBattery)
	report.Motors = resolveAll(s, report, DomainMotor, inv.Motors, cat, ResolveMotor)
	report.ESCs = resolveAll(s, report, DomainESC, inv.ESCs, cat, ResolveESC)
	report.Propellers = resolveAll(s, report, DomainPropeller, inv.Propellers, cat, ResolvePropeller)

	s.logger.Info("Inventory resolved",
		zap.Int("resolved", report.Resolved),
		zap.Int("missing", report.Missing),
		zap.Int("invalid", report.Invalid),
	)
	return report, nil
}

// ResolveSetup resolves the rows of a setup. An invalid field aborts the
// setup; a row without a match is recorded in Missing.
func (s *Service) ResolveSetup(setup Setup) (*Resolved, error) {
	cat, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	out := &Resolved{}
	if setup.Battery != nil {
		b, ok, err := track(DomainBattery, setup.Battery, cat, s.cfg, ResolveBattery)
		if err != nil {
			return nil, err
		}
		out.Battery = b
		out.noteMissing(DomainBattery, ok)
	}
	if setup.Motor != nil {
		m, ok, err := track(DomainMotor, setup.Motor, cat, s.cfg, ResolveMotor)
		if err != nil {
			return nil, err
		}
		out.Motor = m
		out.noteMissing(DomainMotor, ok)
	}
	if setup.ESC != nil {
		e, ok, err := track(DomainESC, setup.ESC, cat, s.cfg, ResolveESC)
		if err != nil {
			return nil, err
		}
		out.ESC = e
		out.noteMissing(DomainESC, ok)
	}
	if setup.Propeller != nil {
		p, ok, err := track(DomainPropeller, setup.Propeller, cat, s.cfg, ResolvePropeller)
		if err != nil {
			return nil, err
		}
		out.Propeller = p
		out.noteMissing(DomainPropeller, ok)
	}

	if len(out.Missing) > 0 {
		s.logger.Warn("Setup has unmatched components", zap.Strings("missing", out.Missing))
	}
	return out, nil
}

func (r *Resolved) noteMissing(domain string, found bool) {
	if !found {
		r.Missing = append(r.Missing, domain)
	}
}

type resolveFunc[T any] func(InventoryEntry, *catalog.Catalog, Config) (*T, bool, error)

func track[T any](domain string, entry InventoryEntry, cat *catalog.Catalog, cfg Config, fn resolveFunc[T]) (*T, bool, error) {
	c, ok, err := fn(entry, cat, cfg)
	tier := ""
	if ok {
		tier = tierOf(c)
	}
	if err == nil {
		metrics.RecordMatch(domain, tier)
	}
	return c, ok, err
}

func tierOf(c any) string {
	switch v := c.(type) {
	case *Battery:
		return v.Match.Tier
	case *Motor:
		return v.Match.Tier
	case *ESC:
		return v.Match.Tier
	case *Propeller:
		if v.Match.Tier == "" {
			return "default"
		}
		return v.Match.Tier
	}
	return ""
}

func resolveAll[T any](s *Service, report *InventoryReport, domain string, rows []InventoryEntry, cat *catalog.Catalog, fn resolveFunc[T]) []Resolution[T] {
	out := make([]Resolution[T], 0, len(rows))
	for i, row := range rows {
		c, ok, err := track(domain, row, cat, s.cfg, fn)
		res := Resolution[T]{Row: i, Found: ok, Component: c}
		switch {
		case err != nil:
			res.Error = err.Error()
			report.Invalid++
			var fieldErr *InvalidFieldError
			if errors.As(err, &fieldErr) {
				s.logger.Warn("Invalid inventory row", zap.String("domain", domain), zap.Int("row", i), zap.String("field", fieldErr.Field), zap.Error(err))
			} else {
				s.logger.Error("Inventory row failed", zap.String("domain", domain), zap.Int("row", i), zap.Error(err))
			}
		case !ok:
			report.Missing++
			s.logger.Debug("No catalog match", zap.String("domain", domain), zap.Int("row", i))
		default:
			report.Resolved++
		}
		out = append(out, res)
	}
	return out
}
