package parse

import (
	"fmt"
	"regexp"

	"github.com/mpetit/ticketscan/internal/model"
)

// Classification is the outcome of rail and provider detection for one text.
type Classification struct {
	Rail      model.Rail
	Provider  string
	IsCard    bool
	IsConnect bool
}

type compiledProvider struct {
	regex *regexp.Regexp
	name  string
	label string
}

// Classifier detects the payment rail and resolves the provider label from
// upper-cased normalized text, using an injected vocabulary.
type Classifier struct {
	card         *regexp.Regexp
	connect      *regexp.Regexp
	voucherWords *regexp.Regexp
	providers    []compiledProvider
	vocab        Vocabulary
}

// NewClassifier compiles a vocabulary into a classifier.
func NewClassifier(vocab Vocabulary) (*Classifier, error) {
	card, err := regexp.Compile(vocab.Card)
	if err != nil {
		return nil, fmt.Errorf("compile card vocabulary: %w", err)
	}
	connect, err := regexp.Compile(vocab.Connect)
	if err != nil {
		return nil, fmt.Errorf("compile connect vocabulary: %w", err)
	}
	voucher, err := regexp.Compile(vocab.VoucherWords)
	if err != nil {
		return nil, fmt.Errorf("compile voucher vocabulary: %w", err)
	}

	providers := make([]compiledProvider, 0, len(vocab.Providers))
	for _, p := range vocab.Providers {
		re, compileErr := regexp.Compile(p.Regex)
		if compileErr != nil {
			return nil, fmt.Errorf("compile provider pattern %s: %w", p.Name, compileErr)
		}
		providers = append(providers, compiledProvider{name: p.Name, label: p.Label, regex: re})
	}

	return &Classifier{
		card:         card,
		connect:      connect,
		voucherWords: voucher,
		providers:    providers,
		vocab:        vocab,
	}, nil
}

// Classify determines the payment rail and provider for upper-cased
// normalized text. The provider table is evaluated in order, first match
// wins; the card labels are only considered when no brand matched.
func (c *Classifier) Classify(upper string) Classification {
	isCard := c.card.MatchString(upper)
	isConnect := c.connect.MatchString(upper)

	provider := model.ProviderNone
	if label, ok := c.resolveProvider(upper); ok {
		provider = label
	} else if isCard && c.voucherWords.MatchString(upper) {
		provider = c.vocab.CardVoucherLabel
	} else if isCard {
		provider = c.vocab.CardOnlyLabel
	}

	// Card rails win over Connect when both vocabularies match.
	rail := model.RailUnknown
	switch {
	case isCard:
		rail = model.RailCard
	case isConnect:
		rail = model.RailConnect
	}

	return Classification{
		Rail:      rail,
		Provider:  provider,
		IsCard:    isCard,
		IsConnect: isConnect,
	}
}

func (c *Classifier) resolveProvider(upper string) (string, bool) {
	for _, p := range c.providers {
		if p.regex.MatchString(upper) {
			return p.label, true
		}
	}
	return "", false
}
