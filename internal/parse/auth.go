package parse

import "regexp"

// Authorization codes are announced by "NO AUTO", "AUTH"/"AUTHORISATION" or
// the full word "AUTORISATION", optionally followed by ":" or "-".
var reAuthCode = regexp.MustCompile(`(?:\bNO?\s*AUTO\b|\bAUTH(?:ORISATION|ORIZATION)?\b|AUTORISATION)\s*[:\-]?\s*([A-Z0-9]{6,})`)

// ExtractAuthCode finds the labeled authorization code in upper-cased
// normalized text. First match wins; nil when absent. This code is the sole
// deduplication key across a batch.
func ExtractAuthCode(upper string) *string {
	m := reAuthCode.FindStringSubmatch(upper)
	if m == nil {
		return nil
	}
	code := m[1]
	return &code
}
