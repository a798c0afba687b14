package match

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio returns the 0-100 similarity of two strings, 2*LCS/(len(a)+len(b)).
// Either string being empty scores 0.
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	lcs := edlib.LCS(a, b)
	return int(math.Round(100 * float64(2*lcs) / float64(total)))
}

// TokenSetRatio scores two strings by word overlap, ignoring order and
// duplicated words. A string whose words are a subset of the other's scores 100.
func TokenSetRatio(a, b string) int {
	t1 := tokenSet(a)
	t2 := tokenSet(b)
	if len(t1) == 0 || len(t2) == 0 {
		return 0
	}

	var inter, diff12, diff21 []string
	for tok := range t1 {
		if _, ok := t2[tok]; ok {
			inter = append(inter, tok)
		} else {
			diff12 = append(diff12, tok)
		}
	}
	for tok := range t2 {
		if _, ok := t1[tok]; !ok {
			diff21 = append(diff21, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diff12)
	sort.Strings(diff21)

	sect := strings.Join(inter, " ")
	combined12 := strings.TrimSpace(sect + " " + strings.Join(diff12, " "))
	combined21 := strings.TrimSpace(sect + " " + strings.Join(diff21, " "))

	return max(
		Ratio(sect, combined12),
		Ratio(sect, combined21),
		Ratio(combined12, combined21),
	)
}

// tokenSet lower-cases s, turns every non letter/digit/underscore into a
// separator and returns the distinct words.
func tokenSet(s string) map[string]struct{} {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)

	set := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		set[tok] = struct{}{}
	}
	return set
}
