package component

import (
	"testing"

	"propulsion-estimator/core/catalog"
	"propulsion-estimator/core/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Batteries: []catalog.Battery{
			{Text: "LiPo 2000mAh - 10/10C", CellVolt: 3.7, Rin: 0.010, Capacity: 2000, CRateMax: 10, CRateConst: 10, Weight: 45},
			{Text: "LiPo 2200mAh - 10/15C", CellVolt: 3.7, Rin: 0.008, Capacity: 2200, CRateMax: 15, CRateConst: 10, Weight: 48},
			{Text: "LiPo 3000mAh - 20/25C", CellVolt: 3.7, Rin: 0.006, Capacity: 3000, CRateMax: 25, CRateConst: 20, Weight: 70},
			{Text: "LiFe 2150mAh - 10/15C", CellVolt: 3.3, Rin: 0.004, Capacity: 2150, CRateMax: 15, CRateConst: 10, Weight: 60},
		},
		Motors: []catalog.Motor{
			{Manufacturer: "T-Motor", Type: "MN705-S KV320 (320)", Kv: 320, Io: 1.5, Rin: 0.030, Weight: 535},
			{Manufacturer: "T-Motor", Type: "MN705-S KV260 (260)", Kv: 260, Io: 1.2, Rin: 0.036, Weight: 535},
			{Manufacturer: "KDE", Type: "KDE5215XF-330 (330)", Kv: 330, Io: 0.9, Rin: 0.047, Weight: 305},
		},
		ESCs: []catalog.ESC{
			{Text: "max 40A", Rin: 0.003, MaxCurrent: 40, Weight: 40},
			{Text: "max 80A", Rin: 0.0012, MaxCurrent: 80, Weight: 80},
		},
		Propellers: []catalog.Propeller{
			{Type: "APC Electric E", Tconst: 1.0, Pconst: 1.08},
			{Type: "Xoar PJN Electric", Tconst: 1.1, Pconst: 1.2},
		},
	}
}

func TestResolveBattery(t *testing.T) {
	cat := testCatalog()
	cfg := DefaultConfig()

	t.Run("Pack Derivation", func(t *testing.T) {
		b, found, err := ResolveBattery(InventoryEntry{"C-rating": 25.0, "Capacity": 6000.0, "No. of cells": 4}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "LiPo 3000mAh - 20/25C", b.Name)
		assert.Equal(t, 4, b.SeriesCells)
		assert.InDelta(t, 2.0, b.ParallelCells, 1e-12)
		assert.InDelta(t, 14.8, b.Voltage, 1e-12)
		assert.InDelta(t, 0.006*4/2, b.Resistance, 1e-12)
		assert.Equal(t, 6000.0, b.Capacity)
		assert.Equal(t, "numeric_nearest", b.Match.Tier)
	})

	t.Run("Default Single Cell", func(t *testing.T) {
		b, found, err := ResolveBattery(InventoryEntry{"C-rating": 15, "Capacity": 2200}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 1, b.SeriesCells)
		assert.InDelta(t, 3.7, b.Voltage, 1e-12)
	})

	t.Run("Cell Voltage Filter", func(t *testing.T) {
		// The 3.3 V LiFe cell has the exact capacity but is excluded.
		b, found, err := ResolveBattery(InventoryEntry{"C-rating": 15, "Capacity": 2150}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 3.7, b.CellVoltage)
	})

	t.Run("Missing C-rating Is Not Found", func(t *testing.T) {
		b, found, err := ResolveBattery(InventoryEntry{"Capacity": 2200}, cat, cfg)
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, b)
	})

	t.Run("Non Numeric Is Not Found", func(t *testing.T) {
		_, found, err := ResolveBattery(InventoryEntry{"C-rating": "high", "Capacity": 2200}, cat, cfg)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Outside Band", func(t *testing.T) {
		_, found, err := ResolveBattery(InventoryEntry{"C-rating": 90, "Capacity": 2200}, cat, cfg)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Zero Catalog Capacity", func(t *testing.T) {
		c := &catalog.Catalog{Batteries: []catalog.Battery{{Text: "odd", CellVolt: 3.7, Rin: 0.01, CRateMax: 20}}}
		b, found, err := ResolveBattery(InventoryEntry{"C-rating": 20, "Capacity": 1000, "No. of cells": 3}, c, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 1.0, b.ParallelCells)
		assert.InDelta(t, 0.03, b.Resistance, 1e-12)
	})

	t.Run("Invalid Cell Count", func(t *testing.T) {
		_, _, err := ResolveBattery(InventoryEntry{"C-rating": 15, "Capacity": 2200, "No. of cells": 0}, cat, cfg)
		var fieldErr *InvalidFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, FieldCells, fieldErr.Field)
	})
}

func TestLookupBattery(t *testing.T) {
	cat := &catalog.Catalog{Batteries: []catalog.Battery{
		{Text: "a", CellVolt: 3.7, Capacity: 2000, CRateMax: 10},
		{Text: "b", CellVolt: 3.7, Capacity: 2200, CRateMax: 15},
		{Text: "c", CellVolt: 3.7, Capacity: 3000, CRateMax: 25},
	}}

	res := LookupBattery(InventoryEntry{"C-rating": 14, "Capacity": 2150}, cat, DefaultConfig())
	require.True(t, res.Found)
	assert.Equal(t, 2200.0, res.Record.Capacity)
	assert.Equal(t, match.TierNumericNearest, res.Tier)

	// The wider resolver band lets the 25C cell in, but capacity still decides.
	b, found, err := ResolveBattery(InventoryEntry{"C-rating": 14, "Capacity": 2150}, cat, DefaultConfig())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "b", b.Name)

	res = LookupBattery(InventoryEntry{"C-rating": 21, "Capacity": 2150}, cat, DefaultConfig())
	require.True(t, res.Found)
	assert.Equal(t, "c", res.Record.Text)

	res = LookupBattery(InventoryEntry{"Capacity": 2150}, cat, DefaultConfig())
	assert.False(t, res.Found)
}

func TestResolveMotor(t *testing.T) {
	cat := testCatalog()
	cfg := DefaultConfig()

	t.Run("Cleaned Match Uses Inventory Kv", func(t *testing.T) {
		m, found, err := ResolveMotor(InventoryEntry{"Model": "KDE5215XF-330", "Kv": 335}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "KDE5215XF-330 (330)", m.Name)
		assert.Equal(t, "KDE", m.Manufacturer)
		assert.Equal(t, 335.0, m.Kv)
		assert.InDelta(t, 9.5694/335, m.Kt, 1e-12)
		assert.Equal(t, 0.047, m.Resistance)
		assert.Equal(t, 0.9, m.NoLoadCurrent)
		assert.Equal(t, "exact_cleaned", m.Match.Tier)
	})

	t.Run("Catalog Kv Fallback", func(t *testing.T) {
		m, found, err := ResolveMotor(InventoryEntry{"Model": "mn705-s kv260 (260)"}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 260.0, m.Kv)
		assert.Equal(t, "exact_original", m.Match.Tier)
	})

	t.Run("Zero Kv Gives Zero Kt", func(t *testing.T) {
		m, found, err := ResolveMotor(InventoryEntry{"Model": "KDE5215XF-330", "Kv": 0}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 0.0, m.Kt)
	})

	t.Run("Fuzzy", func(t *testing.T) {
		m, found, err := ResolveMotor(InventoryEntry{"Model": "T-Motor MN705-S KV260"}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "MN705-S KV260 (260)", m.Name)
		assert.Equal(t, "fuzzy", m.Match.Tier)
	})

	t.Run("Missing Model", func(t *testing.T) {
		_, found, err := ResolveMotor(InventoryEntry{"Kv": 300}, cat, cfg)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Unrelated Model", func(t *testing.T) {
		_, found, err := ResolveMotor(InventoryEntry{"Model": "Scorpion HKIII"}, cat, cfg)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestResolveESC(t *testing.T) {
	e, found, err := ResolveESC(InventoryEntry{"Model": "MAX 80A"}, testCatalog(), DefaultConfig())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 0.0012, e.Resistance)
	assert.Equal(t, 80.0, e.MaxCurrent)

	_, found, err = ResolveESC(InventoryEntry{}, testCatalog(), DefaultConfig())
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestResolvePropeller(t *testing.T) {
	cat := testCatalog()
	cfg := DefaultConfig()

	t.Run("Blade Efficiency", func(t *testing.T) {
		p, found, err := ResolvePropeller(InventoryEntry{"No. of Blades": 2, "Pitch": 10, "Diameter": 18}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 1.0, p.Efficiency)

		p, found, err = ResolvePropeller(InventoryEntry{"No. of Blades": 3, "Pitch": 10, "Diameter": 18}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 0.9, p.Efficiency)
	})

	t.Run("Four Blades Invalid", func(t *testing.T) {
		p, found, err := ResolvePropeller(InventoryEntry{"No. of Blades": 4, "Pitch": 10, "Diameter": 18}, cat, cfg)
		var fieldErr *InvalidFieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, FieldBlades, fieldErr.Field)
		assert.False(t, found)
		assert.Nil(t, p)
	})

	t.Run("Default Constants", func(t *testing.T) {
		p, found, err := ResolvePropeller(InventoryEntry{"No. of Blades": 2, "Pitch": 6, "Diameter": 12, "Weight (g)": 40}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, DefaultTconst, p.Tconst)
		assert.Equal(t, DefaultPconst, p.Pconst)
		assert.Equal(t, 40.0, p.Weight)
		assert.Empty(t, p.Match.Tier)
	})

	t.Run("Family Constants", func(t *testing.T) {
		p, found, err := ResolvePropeller(InventoryEntry{"Type": "Xoar PJN Electric", "No. of Blades": 2, "Pitch": 6, "Diameter": 12}, cat, cfg)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 1.1, p.Tconst)
		assert.Equal(t, 1.2, p.Pconst)
	})

	t.Run("Missing Geometry", func(t *testing.T) {
		_, found, err := ResolvePropeller(InventoryEntry{"No. of Blades": 2, "Pitch": 6}, cat, cfg)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestInventoryEntryLookup(t *testing.T) {
	e := InventoryEntry{"c-rating": 20}
	v, ok := e.Lookup(FieldCRating)
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = e.Lookup(FieldCapacity)
	assert.False(t, ok)
}
