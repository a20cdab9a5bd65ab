package parse

// ProviderPattern is one entry of the ordered provider resolution table.
// Patterns are evaluated top to bottom; the first match wins.
type ProviderPattern struct {
	Name  string // pattern identifier, useful in tests and logs
	Regex string
	Label string
}

// Vocabulary holds the immutable pattern tables used for rail and provider
// detection. It is loaded once at startup and never mutated; tests inject
// synthetic vocabularies through NewClassifier.
type Vocabulary struct {
	// Card matches bank-card rail markers.
	Card string
	// Connect matches dedicated meal-voucher network markers.
	Connect string
	// VoucherWords matches generic meal-voucher phrasing, used to tell a
	// card-linked voucher product apart from plain card payments.
	VoucherWords string
	// CardVoucherLabel is resolved when card rails carry voucher phrasing.
	CardVoucherLabel string
	// CardOnlyLabel is resolved when only card rails matched.
	CardOnlyLabel string
	// Providers is the ordered brand table, checked before the card labels.
	Providers []ProviderPattern
}

// DefaultVocabulary returns the French meal-voucher vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Card:             `\b(VISA|MASTERCARD|CB|EMV|CONTACTLESS|SANS\s*CONTACT)\b`,
		Connect:          `\b(EDENRED|TICKET\s*RESTAURANT|PLUXEE|SODEXO|SWILE|BIMPLI|APETIZ|UP(?:\s*D[ÉE]JEUNER)?|CH[ÈE]QUE\s*D[ÉE]JEUNER|TR)\b`,
		VoucherWords:     `\b(TITRE\S*RESTAURANT|TICKET\S*RESTAURANT|CONECS)\b`,
		CardVoucherLabel: "TR Mastercard (carte)",
		CardOnlyLabel:    "Inconnu (rails bancaires)",
		Providers: []ProviderPattern{
			{Name: "edenred", Regex: `\bEDENRED\b|TICKET\s*RESTAURANT\b`, Label: "Edenred / Ticket Restaurant (Connect)"},
			{Name: "conecs", Regex: `\bCONECS\b`, Label: "Conecs (Connect)"},
			{Name: "pluxee", Regex: `\bPLUXEE\b|\bSODEXO\b`, Label: "Pluxee (Connect)"},
			{Name: "swile", Regex: `\bSWILE\b`, Label: "Swile (Connect)"},
			{Name: "bimpli", Regex: `\bBIMPLI\b|\bAPETIZ\b`, Label: "Bimpli (Connect)"},
			{Name: "up", Regex: `\bUP(?:\s*D[ÉE]JEUNER)?\b|CH[ÈE]QUE\s*D[ÉE]JEUNER\b`, Label: "Up Déjeuner (Connect)"},
		},
	}
}
