package checks

import (
	"sort"

	"propulsion-estimator/core/catalog"
)

// DriftReport compares the database catalog with the storage snapshot.
type DriftReport struct {
	Matched bool                   `json:"matched"`
	Domains map[string]DomainDrift `json:"domains"`
}

// DomainDrift lists identifiers present in only one source, and identifiers
// whose values differ between the two.
type DomainDrift struct {
	DatabaseOnly []string `json:"database_only"`
	StorageOnly  []string `json:"storage_only"`
	Changed      []string `json:"changed"`
}

func (d DomainDrift) empty() bool {
	return len(d.DatabaseOnly) == 0 && len(d.StorageOnly) == 0 && len(d.Changed) == 0
}

// CompareCatalogs reports the drift between a database catalog and a
// snapshot catalog. Records are keyed by their catalog identifier; row ids
// are ignored.
func CompareCatalogs(db, snapshot *catalog.Catalog) *DriftReport {
	report := &DriftReport{Matched: true, Domains: make(map[string]DomainDrift)}
	add := func(domain string, d DomainDrift) {
		report.Domains[domain] = d
		if !d.empty() {
			report.Matched = false
		}
	}

	add(catalog.DomainBattery, diff(db.Batteries, snapshot.Batteries,
		func(b catalog.Battery) string { return b.Text },
		func(b catalog.Battery) catalog.Battery { b.ID = 0; return b }))
	add(catalog.DomainMotor, diff(db.Motors, snapshot.Motors,
		func(m catalog.Motor) string { return m.Type },
		func(m catalog.Motor) catalog.Motor { m.ID = 0; return m }))
	add(catalog.DomainESC, diff(db.ESCs, snapshot.ESCs,
		func(e catalog.ESC) string { return e.Text },
		func(e catalog.ESC) catalog.ESC { e.ID = 0; return e }))
	add(catalog.DomainPropeller, diff(db.Propellers, snapshot.Propellers,
		func(p catalog.Propeller) string { return p.Type },
		func(p catalog.Propeller) catalog.Propeller { p.ID = 0; return p }))

	return report
}

func diff[T comparable](left, right []T, key func(T) string, normalize func(T) T) DomainDrift {
	d := DomainDrift{DatabaseOnly: []string{}, StorageOnly: []string{}, Changed: []string{}}

	index := make(map[string]T, len(right))
	for _, r := range right {
		index[key(r)] = normalize(r)
	}

	seen := make(map[string]struct{}, len(left))
	for _, l := range left {
		k := key(l)
		seen[k] = struct{}{}
		r, ok := index[k]
		switch {
		case !ok:
			d.DatabaseOnly = append(d.DatabaseOnly, k)
		case normalize(l) != r:
			d.Changed = append(d.Changed, k)
		}
	}
	for k := range index {
		if _, ok := seen[k]; !ok {
			d.StorageOnly = append(d.StorageOnly, k)
		}
	}

	sort.Strings(d.DatabaseOnly)
	sort.Strings(d.StorageOnly)
	sort.Strings(d.Changed)
	return d
}
