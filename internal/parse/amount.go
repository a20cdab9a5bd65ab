package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Labeled form: "MONTANT ... 25,00 €". The label must sit within 12
	// non-digit characters of the number.
	reAmountLabeled = regexp.MustCompile(`(?i)MONTANT[^\d]{0,12}(\d+\s?[.,]\s?\d{2})\s*(?:€|EUR)?`)
	// Any plausible amount, with or without a currency marker.
	reAmountAny = regexp.MustCompile(`(?i)(\d{1,4}\s?[.,]\s?\d{2})\s*(?:€|EUR)?`)
)

// ExtractAmount derives the transaction amount from normalized text.
// The labeled "MONTANT" form wins; otherwise the largest candidate in the
// whole text is taken, since the printed total is typically the largest
// figure on a receipt. Returns nil when nothing matches, never zero.
func ExtractAmount(normalized string) *float64 {
	if m := reAmountLabeled.FindStringSubmatch(normalized); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return &v
		}
	}

	var best *float64
	for _, m := range reAmountAny.FindAllStringSubmatch(normalized, -1) {
		v, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if best == nil || v > *best {
			v := v
			best = &v
		}
	}
	return best
}

func parseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
