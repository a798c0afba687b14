package match

import (
	"math"
	"regexp"
	"strings"
)

// DefaultFuzzyThreshold is the minimum token-set score accepted by the fuzzy tier.
const DefaultFuzzyThreshold = 70

// Tier identifies which matching stage produced a result.
type Tier int

const (
	// TierNone means no record matched.
	TierNone Tier = iota
	// TierExactOriginal is a case-insensitive equality on the raw identifiers.
	TierExactOriginal
	// TierExactCleaned is an equality after stripping parenthetical tags.
	TierExactCleaned
	// TierFuzzy is the best token-set score at or above the threshold.
	TierFuzzy
	// TierNumericNearest is the closest secondary value inside the primary band.
	TierNumericNearest
)

// String returns the metric/log label of the tier.
func (t Tier) String() string {
	switch t {
	case TierExactOriginal:
		return "exact_original"
	case TierExactCleaned:
		return "exact_cleaned"
	case TierFuzzy:
		return "fuzzy"
	case TierNumericNearest:
		return "numeric_nearest"
	default:
		return ""
	}
}

// Query describes what to look for. Identifier takes precedence; Numeric is
// consulted only when no identifier is given.
type Query struct {
	Identifier string
	Numeric    *NumericQuery
}

// NumericQuery holds the attribute values for the numeric-nearest tier.
type NumericQuery struct {
	// Primary must lie within the rule tolerance of the record's primary value.
	Primary float64
	// Secondary is minimised across the surviving candidates.
	Secondary float64
}

// Rules tells the matcher how to read records of type T.
type Rules[T any] struct {
	// Identifier extracts the record's model string.
	Identifier func(T) string
	// Primary and Secondary extract the numeric attributes.
	Primary   func(T) float64
	Secondary func(T) float64
	// Tolerance is the half-width of the primary band.
	Tolerance float64
	// FuzzyThreshold is the minimum accepted token-set score. Zero means DefaultFuzzyThreshold.
	FuzzyThreshold int
	// Filter, if set, excludes records before any tier runs.
	Filter func(T) bool
}

// Result is the outcome of a single Match call.
type Result[T any] struct {
	Record T
	Found  bool
	Tier   Tier
	// Score is 100 for exact tiers, the token-set score for fuzzy matches,
	// and the absolute secondary distance for numeric matches.
	Score float64
	// Index is the record's position in the catalog slice, or -1.
	Index int
}

var parenthetical = regexp.MustCompile(`\s*\(.*\)\s*`)

// CleanIdentifier strips parenthetical suffixes and surrounding whitespace,
// e.g. "KDE5215XF-330 (330)" becomes "KDE5215XF-330".
func CleanIdentifier(s string) string {
	return strings.TrimSpace(parenthetical.ReplaceAllString(s, ""))
}

// Match returns the best record for q. It never mutates records and treats
// "nothing matched" as a normal result rather than an error.
func Match[T any](q Query, records []T, rules Rules[T]) Result[T] {
	id := strings.TrimSpace(q.Identifier)
	switch {
	case id != "" && rules.Identifier != nil:
		return matchIdentifier(id, records, rules)
	case id == "" && q.Numeric != nil && rules.Primary != nil && rules.Secondary != nil:
		return matchNumeric(*q.Numeric, records, rules)
	default:
		return notFound[T]()
	}
}

func notFound[T any]() Result[T] {
	return Result[T]{Index: -1}
}

func found[T any](records []T, i int, tier Tier, score float64) Result[T] {
	return Result[T]{Record: records[i], Found: true, Tier: tier, Score: score, Index: i}
}

func matchIdentifier[T any](id string, records []T, rules Rules[T]) Result[T] {
	keep := func(r T) bool { return rules.Filter == nil || rules.Filter(r) }

	lowered := strings.ToLower(id)
	for i, r := range records {
		if keep(r) && strings.ToLower(rules.Identifier(r)) == lowered {
			return found(records, i, TierExactOriginal, 100)
		}
	}

	cleaned := strings.ToLower(CleanIdentifier(id))
	if cleaned != "" {
		for i, r := range records {
			if keep(r) && strings.ToLower(CleanIdentifier(rules.Identifier(r))) == cleaned {
				return found(records, i, TierExactCleaned, 100)
			}
		}
	}

	threshold := rules.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	best, bestScore := -1, -1
	for i, r := range records {
		if !keep(r) {
			continue
		}
		candidate := rules.Identifier(r)
		if candidate == "" {
			continue
		}
		score := TokenSetRatio(lowered, strings.ToLower(candidate))
		if score > bestScore && score >= threshold {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return notFound[T]()
	}
	return found(records, best, TierFuzzy, float64(bestScore))
}

func matchNumeric[T any](q NumericQuery, records []T, rules Rules[T]) Result[T] {
	best := -1
	bestDiff := math.Inf(1)
	for i, r := range records {
		if rules.Filter != nil && !rules.Filter(r) {
			continue
		}
		if math.Abs(rules.Primary(r)-q.Primary) > rules.Tolerance {
			continue
		}
		diff := math.Abs(rules.Secondary(r) - q.Secondary)
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best < 0 {
		return notFound[T]()
	}
	return found(records, best, TierNumericNearest, bestDiff)
}
