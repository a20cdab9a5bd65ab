// Package parse implements the deterministic receipt parsing engine: OCR text
// normalization, rail/provider classification, field extraction and
// confidence scoring. Every function in this package is pure and total.
package parse

import (
	"regexp"
	"strings"
)

var (
	// Tokens made only of these characters, with at least one digit already
	// present, are safe for digit repair; prose and bare vocabulary words
	// (VISA, SODEXO, ...) are left alone.
	reRepairableToken = regexp.MustCompile(`^[0-9A-Za-z/:.\-]+$`)
	reHasDigit        = regexp.MustCompile(`\d`)

	reCommaDecimal = regexp.MustCompile(`(\d)\s*,\s*(\d{2})`)
	reDotDecimal   = regexp.MustCompile(`(\d)\s*\.\s*(\d{2})`)
	reConnector    = regexp.MustCompile(`(?i)\s+[aà@]\s+`)
)

// digitRepairs maps letters commonly misread by OCR back to digits.
var digitRepairs = strings.NewReplacer(
	"O", "0", "o", "0",
	"Q", "0",
	"S", "5", "s", "5",
	"I", "1", "l", "1", "|", "1",
	"B", "8",
	"Z", "2",
)

// Normalize rewrites raw OCR text into the canonical form the extractors
// expect. It is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	// Collapse whitespace runs and repair digits token by token.
	tokens := strings.Fields(raw)
	for i, tok := range tokens {
		if reRepairableToken.MatchString(tok) && reHasDigit.MatchString(tok) {
			tokens[i] = digitRepairs.Replace(tok)
		}
	}
	s := strings.Join(tokens, " ")

	// Re-tighten decimal separators split by the OCR: "12 , 50" -> "12,50".
	s = reCommaDecimal.ReplaceAllString(s, "$1,$2")
	s = reDotDecimal.ReplaceAllString(s, "$1.$2")

	// Stray single-letter connectors ("à", "@") become a canonical " A ",
	// which the date extractor later uses as a time-of-day hint.
	s = reConnector.ReplaceAllString(s, " A ")

	return s
}
