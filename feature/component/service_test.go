package component

import (
	"context"
	"testing"

	"propulsion-estimator/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_ResolveInventory(t *testing.T) {
	svc := NewService(catalog.NewStaticStore(testCatalog()), DefaultConfig(), zap.NewNop())

	report, err := svc.ResolveInventory(Inventory{
		Batteries: []InventoryEntry{
			{"C-rating": 25, "Capacity": 3000, "No. of cells": 6},
			{"Capacity": 3000},
		},
		Motors: []InventoryEntry{
			{"Model": "MN705-S KV260"},
		},
		Propellers: []InventoryEntry{
			{"No. of Blades": 4, "Pitch": 10, "Diameter": 18},
			{"No. of Blades": 2, "Pitch": 10, "Diameter": 18},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Resolved)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, 1, report.Invalid)

	require.Len(t, report.Batteries, 2)
	assert.True(t, report.Batteries[0].Found)
	assert.False(t, report.Batteries[1].Found)
	assert.Nil(t, report.Batteries[1].Component)

	require.Len(t, report.Propellers, 2)
	assert.Contains(t, report.Propellers[0].Error, "only 2 or 3 blades")
	assert.Equal(t, 1, report.Propellers[1].Row)
	assert.Empty(t, report.ESCs)
}

func TestService_ResolveSetup(t *testing.T) {
	svc := NewService(catalog.NewStaticStore(testCatalog()), DefaultConfig(), nil)

	t.Run("Complete", func(t *testing.T) {
		res, err := svc.ResolveSetup(Setup{
			Battery:   InventoryEntry{"C-rating": 25, "Capacity": 3000, "No. of cells": 6},
			Motor:     InventoryEntry{"Model": "MN705-S KV260"},
			ESC:       InventoryEntry{"Model": "max 80A"},
			Propeller: InventoryEntry{"No. of Blades": 2, "Pitch": 10, "Diameter": 18},
		})
		require.NoError(t, err)
		assert.Empty(t, res.Missing)
		assert.NotNil(t, res.Battery)
		assert.NotNil(t, res.Motor)
		assert.NotNil(t, res.ESC)
		assert.NotNil(t, res.Propeller)
	})

	t.Run("Missing Battery", func(t *testing.T) {
		res, err := svc.ResolveSetup(Setup{
			Battery: InventoryEntry{"Capacity": 3000},
			Motor:   InventoryEntry{"Model": "MN705-S KV260"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{DomainBattery}, res.Missing)
		assert.Nil(t, res.Battery)
		assert.Nil(t, res.Propeller)
	})

	t.Run("Invalid Propeller", func(t *testing.T) {
		_, err := svc.ResolveSetup(Setup{
			Propeller: InventoryEntry{"No. of Blades": 5, "Pitch": 10, "Diameter": 18},
		})
		var fieldErr *InvalidFieldError
		assert.ErrorAs(t, err, &fieldErr)
	})
}

func TestService_CatalogNotLoaded(t *testing.T) {
	store := catalog.NewStore(func(context.Context) (*catalog.Catalog, error) { return testCatalog(), nil }, nil)
	svc := NewService(store, DefaultConfig(), nil)

	_, err := svc.ResolveInventory(Inventory{})
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)

	_, _, err = svc.Resolve(DomainMotor, InventoryEntry{"Model": "x"})
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)

	_, err = svc.ReloadCatalog(context.Background())
	require.NoError(t, err)
	comp, found, err := svc.Resolve(DomainMotor, InventoryEntry{"Model": "KDE5215XF-330"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.IsType(t, &Motor{}, comp)
}

func TestService_UnknownDomain(t *testing.T) {
	svc := NewService(catalog.NewStaticStore(testCatalog()), DefaultConfig(), nil)
	_, _, err := svc.Resolve("wing", InventoryEntry{})
	assert.Error(t, err)
}
