package component

import (
	"strings"

	"propulsion-estimator/core/match"
)

// Inventory field names.
const (
	FieldModel      = "Model"
	FieldType       = "Type"
	FieldCRating    = "C-rating"
	FieldCapacity   = "Capacity"
	FieldCells      = "No. of cells"
	FieldKv         = "Kv"
	FieldBlades     = "No. of Blades"
	FieldPitch      = "Pitch"
	FieldDiameter   = "Diameter"
	FieldPropWeight = "Weight (g)"
)

// Torque constant conversion between kv in rpm/V and kt in N·m/A.
const KtConstant = 9.5694

// Default propeller constants used when the inventory names no propeller family.
const (
	DefaultTconst = 1.0
	DefaultPconst = 1.08
)

// InventoryEntry is one row of a user inventory. Absent keys mean "not provided".
type InventoryEntry map[string]any

// Lookup returns the value stored under key, comparing keys case-insensitively
// when there is no exact hit.
func (e InventoryEntry) Lookup(key string) (any, bool) {
	if v, ok := e[key]; ok {
		return v, true
	}
	for k, v := range e {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// MatchInfo describes how a component was matched against the catalog.
type MatchInfo struct {
	Tier  string  `json:"tier"`
	Score float64 `json:"score"`
}

func matchInfo[T any](r match.Result[T]) MatchInfo {
	return MatchInfo{Tier: r.Tier.String(), Score: r.Score}
}

// Battery is a battery pack built from a matched catalog cell.
type Battery struct {
	Name           string    `json:"name"`
	SeriesCells    int       `json:"series_cells"`
	ParallelCells  float64   `json:"parallel_cells"`
	CellVoltage    float64   `json:"cell_voltage"`
	Voltage        float64   `json:"voltage"`
	CellResistance float64   `json:"cell_resistance"`
	Resistance     float64   `json:"resistance"`
	Capacity       float64   `json:"capacity_mah"`
	CRateMax       float64   `json:"crate_max"`
	CRateConst     float64   `json:"crate_const"`
	Weight         float64   `json:"weight_g"`
	Match          MatchInfo `json:"match"`
}

// Motor is a motor whose constants come from the matched catalog record.
type Motor struct {
	Model         string    `json:"model"`
	Name          string    `json:"name"`
	Manufacturer  string    `json:"manufacturer"`
	Kv            float64   `json:"kv"`
	Kt            float64   `json:"kt"`
	Resistance    float64   `json:"resistance"`
	NoLoadCurrent float64   `json:"no_load_current"`
	Weight        float64   `json:"weight_g"`
	Match         MatchInfo `json:"match"`
}

// ESC is a speed controller; only its resistance enters the solver.
type ESC struct {
	Model      string    `json:"model"`
	Name       string    `json:"name"`
	Resistance float64   `json:"resistance"`
	MaxCurrent float64   `json:"max_current"`
	Weight     float64   `json:"weight_g"`
	Match      MatchInfo `json:"match"`
}

// Propeller combines inventory geometry with empirical catalog constants.
// Diameter and Pitch are in inches.
type Propeller struct {
	Name       string    `json:"name"`
	Blades     int       `json:"blades"`
	Diameter   float64   `json:"diameter_in"`
	Pitch      float64   `json:"pitch_in"`
	Weight     float64   `json:"weight_g"`
	Tconst     float64   `json:"tconst"`
	Pconst     float64   `json:"pconst"`
	Efficiency float64   `json:"efficiency"`
	Match      MatchInfo `json:"match"`
}

// TorqueConstant returns kt for the given kv; kv = 0 yields 0.
func TorqueConstant(kv float64) float64 {
	if kv == 0 {
		return 0
	}
	return KtConstant / kv
}

// BladeEfficiency returns the empirical efficiency factor of a blade count.
func BladeEfficiency(blades int) (float64, error) {
	switch blades {
	case 2:
		return 1.0, nil
	case 3:
		return 0.9, nil
	default:
		return 0, &InvalidFieldError{
			Domain: DomainPropeller,
			Field:  FieldBlades,
			Value:  blades,
			Reason: "only 2 or 3 blades are supported",
		}
	}
}
