package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	reDate = regexp.MustCompile(`\b(0?\d|[12]\d|3[01])\s*[/\-.]\s*(0?\d|1[0-2])\s*[/\-.]\s*(\d{2}|\d{4})\b`)
	// Time-of-day following a date, e.g. "A 12:30" or "A 12H30".
	reTimeHint = regexp.MustCompile(`(?i)\sA\s\d{1,2}[:H]\d{2}`)
)

type dateCandidate struct {
	formatted string
	index     int
	score     int
}

// ExtractDate finds the transaction date in upper-cased normalized text and
// returns it as DD/MM/YYYY. When several dates appear, candidates preceded by
// "LE" score +2 and candidates followed by a time of day score +1; ties are
// broken by leftmost position. Two-digit years are assumed to be in the
// 2000s. Returns nil when no date is present.
func ExtractDate(upper string) *string {
	matches := reDate.FindAllStringSubmatchIndex(upper, -1)
	if len(matches) == 0 {
		return nil
	}

	candidates := make([]dateCandidate, 0, len(matches))
	for _, m := range matches {
		idx := m[0]
		day := pad2(upper[m[2]:m[3]])
		month := pad2(upper[m[4]:m[5]])
		year := upper[m[6]:m[7]]
		if len(year) == 2 {
			year = "20" + year
		}
		candidates = append(candidates, dateCandidate{
			formatted: fmt.Sprintf("%s/%s/%s", day, month, year),
			index:     idx,
			score:     contextScore(upper, idx),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].index < candidates[j].index
	})

	return &candidates[0].formatted
}

// contextScore rewards dates that look like the printed transaction date:
// +2 when introduced by "LE", +1 when followed by a time of day.
func contextScore(upper string, idx int) int {
	score := 0

	before := upper[maxInt(0, idx-6):minInt(len(upper), idx+2)]
	if strings.Contains(before, " LE") {
		score += 2
	}

	after := upper[idx:minInt(len(upper), idx+20)]
	if reTimeHint.MatchString(after) {
		score++
	}

	return score
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
