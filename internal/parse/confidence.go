package parse

import "github.com/mpetit/ticketscan/internal/model"

// Score combines classification and extraction outcomes into the heuristic
// confidence score. The raw sum can exceed the bounds (both vocabularies may
// match) or be zero (nothing recognized); the result is always clamped to
// [1,5]. Advisory only, not a probability.
func Score(cls Classification, amount *float64, date *string) int {
	score := 0
	if cls.IsCard {
		score += 2
	}
	if cls.IsConnect {
		score += 2
	}
	if cls.Provider != model.ProviderNone {
		score++
	}
	if amount != nil {
		score++
	}
	if date != nil {
		score++
	}

	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return score
}
