package match_test

import (
	"testing"

	"propulsion-estimator/core/match"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Name     string
	CRate    float64
	Capacity float64
	Volt     float64
}

var byName = match.Rules[record]{
	Identifier: func(r record) string { return r.Name },
}

func numericRules(tolerance float64) match.Rules[record] {
	return match.Rules[record]{
		Primary:   func(r record) float64 { return r.CRate },
		Secondary: func(r record) float64 { return r.Capacity },
		Tolerance: tolerance,
	}
}

func TestMatch_ExactOriginalBeatsFuzzy(t *testing.T) {
	catalog := []record{
		{Name: "MN705-S KV260 extra"},
		{Name: "MN705-S KV260"},
	}

	res := match.Match(match.Query{Identifier: "mn705-s kv260"}, catalog, byName)
	assert.True(t, res.Found)
	assert.Equal(t, match.TierExactOriginal, res.Tier)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, "MN705-S KV260", res.Record.Name)
}

func TestMatch_ExactCleaned(t *testing.T) {
	catalog := []record{
		{Name: "Other Motor"},
		{Name: "KDE5215XF-330 (330)"},
	}

	res := match.Match(match.Query{Identifier: " kde5215xf-330 "}, catalog, byName)
	assert.True(t, res.Found)
	assert.Equal(t, match.TierExactCleaned, res.Tier)
	assert.Equal(t, "KDE5215XF-330 (330)", res.Record.Name)
}

func TestMatch_FuzzyPicksHighestScore(t *testing.T) {
	catalog := []record{
		{Name: "MN705-S KV320"},
		{Name: "MN705 KV260"},
	}

	res := match.Match(match.Query{Identifier: "kv260 mn705 s"}, catalog, byName)
	assert.True(t, res.Found)
	assert.Equal(t, match.TierFuzzy, res.Tier)
	assert.Equal(t, "MN705 KV260", res.Record.Name)
	assert.Equal(t, float64(100), res.Score)
}

func TestMatch_FuzzyBelowThreshold(t *testing.T) {
	catalog := []record{{Name: "MN705 KV260"}}

	res := match.Match(match.Query{Identifier: "Cobra"}, catalog, byName)
	assert.False(t, res.Found)
	assert.Equal(t, match.TierNone, res.Tier)
	assert.Equal(t, -1, res.Index)
}

func TestMatch_FuzzyThresholdConfigurable(t *testing.T) {
	catalog := []record{{Name: "MN705-S KV320"}}
	rules := byName
	rules.FuzzyThreshold = 95

	// Scores 92 against the only candidate.
	res := match.Match(match.Query{Identifier: "mn705 s kv260"}, catalog, rules)
	assert.False(t, res.Found)

	rules.FuzzyThreshold = 90
	res = match.Match(match.Query{Identifier: "mn705 s kv260"}, catalog, rules)
	assert.True(t, res.Found)
	assert.Equal(t, float64(92), res.Score)
}

func TestMatch_NumericNearest(t *testing.T) {
	catalog := []record{
		{CRate: 10, Capacity: 2000},
		{CRate: 15, Capacity: 2200},
		{CRate: 25, Capacity: 3000},
	}

	res := match.Match(match.Query{Numeric: &match.NumericQuery{Primary: 14, Secondary: 2150}}, catalog, numericRules(5))
	assert.True(t, res.Found)
	assert.Equal(t, match.TierNumericNearest, res.Tier)
	assert.Equal(t, float64(2200), res.Record.Capacity)
	assert.InDelta(t, 50, res.Score, 1e-9)
}

func TestMatch_NumericTieKeepsCatalogOrder(t *testing.T) {
	catalog := []record{
		{Name: "first", CRate: 20, Capacity: 2100},
		{Name: "second", CRate: 20, Capacity: 2300},
	}

	res := match.Match(match.Query{Numeric: &match.NumericQuery{Primary: 20, Secondary: 2200}}, catalog, numericRules(5))
	assert.True(t, res.Found)
	assert.Equal(t, "first", res.Record.Name)
}

func TestMatch_NumericOutsideBand(t *testing.T) {
	catalog := []record{{CRate: 50, Capacity: 2200}}

	res := match.Match(match.Query{Numeric: &match.NumericQuery{Primary: 14, Secondary: 2200}}, catalog, numericRules(10))
	assert.False(t, res.Found)
}

func TestMatch_FilterExcludesRecords(t *testing.T) {
	catalog := []record{
		{Name: "LiFe", CRate: 20, Capacity: 2200, Volt: 3.3},
		{Name: "LiPo", CRate: 20, Capacity: 2600, Volt: 3.7},
	}
	rules := numericRules(10)
	rules.Filter = func(r record) bool { return r.Volt == 3.7 }

	res := match.Match(match.Query{Numeric: &match.NumericQuery{Primary: 20, Secondary: 2200}}, catalog, rules)
	assert.True(t, res.Found)
	assert.Equal(t, "LiPo", res.Record.Name)
}

func TestMatch_EmptyQuery(t *testing.T) {
	catalog := []record{{Name: "x"}}
	assert.False(t, match.Match(match.Query{}, catalog, byName).Found)
	assert.False(t, match.Match(match.Query{Identifier: "x"}, catalog, numericRules(5)).Found)
}

func TestMatch_DoesNotMutateCatalog(t *testing.T) {
	catalog := []record{{Name: "KDE5215XF-330 (330)"}}
	_ = match.Match(match.Query{Identifier: "KDE5215XF-330"}, catalog, byName)
	assert.Equal(t, "KDE5215XF-330 (330)", catalog[0].Name)
}

func TestCleanIdentifier(t *testing.T) {
	assert.Equal(t, "KDE5215XF-330", match.CleanIdentifier("KDE5215XF-330 (330)"))
	assert.Equal(t, "MN705-S", match.CleanIdentifier("  MN705-S  "))
	assert.Equal(t, "", match.CleanIdentifier("(only tag)"))
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "exact_original", match.TierExactOriginal.String())
	assert.Equal(t, "numeric_nearest", match.TierNumericNearest.String())
	assert.Equal(t, "", match.TierNone.String())
}
