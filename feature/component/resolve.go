package component

import (
	"math"
	"strings"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/match"
	"propulsion-estimator/core/utils"
)

// Component domains.
const (
	DomainBattery   = catalog.DomainBattery
	DomainMotor     = catalog.DomainMotor
	DomainESC       = catalog.DomainESC
	DomainPropeller = catalog.DomainPropeller
)

// Domains lists every resolvable domain.
var Domains = []string{DomainBattery, DomainMotor, DomainESC, DomainPropeller}

func batteryRules(tolerance, cellVoltage float64) match.Rules[catalog.Battery] {
	rules := match.Rules[catalog.Battery]{
		Identifier: func(b catalog.Battery) string { return b.Text },
		Primary:    func(b catalog.Battery) float64 { return b.CRateMax },
		Secondary:  func(b catalog.Battery) float64 { return b.Capacity },
		Tolerance:  tolerance,
	}
	if cellVoltage > 0 {
		rules.Filter = func(b catalog.Battery) bool {
			return math.Abs(b.CellVolt-cellVoltage) < 1e-9
		}
	}
	return rules
}

func batteryQuery(entry InventoryEntry) (match.Query, bool) {
	cRating, okRating := entryFloat(entry, FieldCRating)
	capacity, okCapacity := entryFloat(entry, FieldCapacity)
	if !okRating || !okCapacity {
		return match.Query{}, false
	}
	return match.Query{Numeric: &match.NumericQuery{Primary: cRating, Secondary: capacity}}, true
}

// LookupBattery finds the catalog cell closest in capacity among cells whose
// max C-rate lies within the lookup tolerance. No cell-voltage filter applies.
func LookupBattery(entry InventoryEntry, cat *catalog.Catalog, cfg Config) match.Result[catalog.Battery] {
	q, ok := batteryQuery(entry)
	if !ok || cat == nil {
		return match.Result[catalog.Battery]{Index: -1}
	}
	return match.Match(q, cat.Batteries, batteryRules(cfg.BatteryLookupTolerance, 0))
}

// ResolveBattery builds a battery pack from an inventory row. A row without a
// numeric C-rating and capacity, or with no cell inside the tolerance band,
// resolves to not found.
func ResolveBattery(entry InventoryEntry, cat *catalog.Catalog, cfg Config) (*Battery, bool, error) {
	q, ok := batteryQuery(entry)
	if !ok || cat == nil {
		return nil, false, nil
	}
	res := match.Match(q, cat.Batteries, batteryRules(cfg.BatteryTolerance, cfg.CellVoltage))
	if !res.Found {
		return nil, false, nil
	}

	series := 1
	if v, ok := entryFloat(entry, FieldCells); ok {
		if v < 1 || v != math.Trunc(v) {
			return nil, false, &InvalidFieldError{Domain: DomainBattery, Field: FieldCells, Value: v, Reason: "cell count must be a positive integer"}
		}
		series = int(v)
	}

	cell := res.Record
	parallel := 1.0
	if cell.Capacity != 0 {
		parallel = q.Numeric.Secondary / cell.Capacity
	}
	if parallel <= 0 {
		parallel = 1
	}

	cellVoltage := cell.CellVolt
	if cellVoltage == 0 {
		cellVoltage = cfg.CellVoltage
	}

	return &Battery{
		Name:           cell.Text,
		SeriesCells:    series,
		ParallelCells:  parallel,
		CellVoltage:    cellVoltage,
		Voltage:        float64(series) * cellVoltage,
		CellResistance: cell.Rin,
		Resistance:     cell.Rin * float64(series) / parallel,
		Capacity:       q.Numeric.Secondary,
		CRateMax:       cell.CRateMax,
		CRateConst:     cell.CRateConst,
		Weight:         cell.Weight,
		Match:          matchInfo(res),
	}, true, nil
}

// ResolveMotor matches the inventory model string against catalog motor types.
// The inventory kv wins over the catalog kv when both are present.
func ResolveMotor(entry InventoryEntry, cat *catalog.Catalog, cfg Config) (*Motor, bool, error) {
	model := entryString(entry, FieldModel)
	if model == "" || cat == nil {
		return nil, false, nil
	}
	res := match.Match(match.Query{Identifier: model}, cat.Motors, match.Rules[catalog.Motor]{
		Identifier:     func(m catalog.Motor) string { return m.Type },
		FuzzyThreshold: cfg.FuzzyThreshold,
	})
	if !res.Found {
		return nil, false, nil
	}

	rec := res.Record
	kv := rec.Kv
	if v, ok := entryFloat(entry, FieldKv); ok {
		kv = v
	}
	if kv < 0 {
		return nil, false, &InvalidFieldError{Domain: DomainMotor, Field: FieldKv, Value: kv, Reason: "kv must not be negative"}
	}

	return &Motor{
		Model:         model,
		Name:          rec.Type,
		Manufacturer:  rec.Manufacturer,
		Kv:            kv,
		Kt:            TorqueConstant(kv),
		Resistance:    rec.Rin,
		NoLoadCurrent: rec.Io,
		Weight:        rec.Weight,
		Match:         matchInfo(res),
	}, true, nil
}

// ResolveESC matches the inventory model string against catalog controllers.
func ResolveESC(entry InventoryEntry, cat *catalog.Catalog, cfg Config) (*ESC, bool, error) {
	model := entryString(entry, FieldModel)
	if model == "" || cat == nil {
		return nil, false, nil
	}
	res := match.Match(match.Query{Identifier: model}, cat.ESCs, match.Rules[catalog.ESC]{
		Identifier:     func(e catalog.ESC) string { return e.Text },
		FuzzyThreshold: cfg.FuzzyThreshold,
	})
	if !res.Found {
		return nil, false, nil
	}
	return &ESC{
		Model:      model,
		Name:       res.Record.Text,
		Resistance: res.Record.Rin,
		MaxCurrent: res.Record.MaxCurrent,
		Weight:     res.Record.Weight,
		Match:      matchInfo(res),
	}, true, nil
}

// ResolvePropeller reads the propeller geometry from the inventory and takes
// the thrust and power constants from the matched propeller family. Without a
// family name the default constants apply.
func ResolvePropeller(entry InventoryEntry, cat *catalog.Catalog, cfg Config) (*Propeller, bool, error) {
	blades, okBlades := entryFloat(entry, FieldBlades)
	pitch, okPitch := entryFloat(entry, FieldPitch)
	diameter, okDiameter := entryFloat(entry, FieldDiameter)
	if !okBlades || !okPitch || !okDiameter {
		return nil, false, nil
	}

	prop := &Propeller{
		Blades:   int(blades),
		Diameter: diameter,
		Pitch:    pitch,
		Tconst:   DefaultTconst,
		Pconst:   DefaultPconst,
	}
	if w, ok := entryFloat(entry, FieldPropWeight); ok {
		prop.Weight = w
	}

	family := entryString(entry, FieldType)
	if family == "" {
		family = entryString(entry, FieldModel)
	}
	if family != "" {
		if cat == nil {
			return nil, false, nil
		}
		res := match.Match(match.Query{Identifier: family}, cat.Propellers, match.Rules[catalog.Propeller]{
			Identifier:     func(p catalog.Propeller) string { return p.Type },
			FuzzyThreshold: cfg.FuzzyThreshold,
		})
		if !res.Found {
			return nil, false, nil
		}
		prop.Name = res.Record.Type
		prop.Tconst = res.Record.Tconst
		prop.Pconst = res.Record.Pconst
		prop.Match = matchInfo(res)
	}

	if blades != math.Trunc(blades) {
		return nil, false, &InvalidFieldError{Domain: DomainPropeller, Field: FieldBlades, Value: blades, Reason: "blade count must be an integer"}
	}
	eff, err := BladeEfficiency(prop.Blades)
	if err != nil {
		return nil, false, err
	}
	prop.Efficiency = eff
	return prop, true, nil
}

func entryFloat(entry InventoryEntry, key string) (float64, bool) {
	v, ok := entry.Lookup(key)
	if !ok {
		return 0, false
	}
	return utils.ToFloat(v)
}

func entryString(entry InventoryEntry, key string) string {
	v, ok := entry.Lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(utils.ToString(v))
}
