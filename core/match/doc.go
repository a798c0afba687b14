// Package match implements the tiered catalog matcher.
//
// Given a query and a slice of catalog records, Match walks four tiers and the
// first tier producing a candidate wins:
//
//  1. Exact-original: case-insensitive identifier equality.
//  2. Exact-cleaned: equality after stripping parenthetical tags ("X (330)" -> "X").
//  3. Fuzzy: highest token-set score, accepted at or above the threshold (default 70).
//  4. Numeric-nearest: used only without an identifier; records whose primary
//     attribute lies within the tolerance band compete on the smallest secondary
//     difference, ties going to catalog order.
//
// Rules are generic over the record type so the battery, motor, ESC and propeller
// catalogs share one implementation. Match is pure: it never mutates the catalog
// and reports "no match" through Result.Found rather than an error.
package match
