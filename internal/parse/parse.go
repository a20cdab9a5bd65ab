package parse

import (
	"strings"

	"github.com/mpetit/ticketscan/internal/model"
)

// Result holds every field the engine derives from one receipt text.
type Result struct {
	Normalized string
	Provider   string
	Rail       model.Rail
	Amount     *float64
	Date       *string
	AuthCode   *string
	Confidence int
}

// Parser runs the full parsing pipeline for one text: normalization,
// classification, field extraction and confidence scoring.
type Parser struct {
	classifier *Classifier
}

// NewParser builds a parser from a vocabulary.
func NewParser(vocab Vocabulary) (*Parser, error) {
	classifier, err := NewClassifier(vocab)
	if err != nil {
		return nil, err
	}
	return &Parser{classifier: classifier}, nil
}

// Parse derives all structured fields from raw OCR text. It is deterministic
// and never fails: fields that cannot be extracted are simply left nil.
func (p *Parser) Parse(raw string) Result {
	normalized := Normalize(raw)
	upper := strings.ToUpper(normalized)

	cls := p.classifier.Classify(upper)
	amount := ExtractAmount(normalized)
	date := ExtractDate(upper)
	auth := ExtractAuthCode(upper)

	return Result{
		Normalized: normalized,
		Provider:   cls.Provider,
		Rail:       cls.Rail,
		Amount:     amount,
		Date:       date,
		AuthCode:   auth,
		Confidence: Score(cls, amount, date),
	}
}
