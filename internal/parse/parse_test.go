package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetit/ticketscan/internal/model"
)

const sampleReceipt = `CAFE DE LA GARE
EDENRED TICKET RESTAURANT
MONTANT 11 , 90 €
LE O5/O4/2024 à 12:30
NO AUTO: 4F7D21
MERCI DE VOTRE VISITE`

func TestParser_Parse(t *testing.T) {
	p, err := NewParser(DefaultVocabulary())
	require.NoError(t, err)

	res := p.Parse(sampleReceipt)

	assert.Equal(t, model.RailConnect, res.Rail)
	assert.Equal(t, "Edenred / Ticket Restaurant (Connect)", res.Provider)
	require.NotNil(t, res.Amount)
	assert.InDelta(t, 11.90, *res.Amount, 0.001)
	require.NotNil(t, res.Date)
	assert.Equal(t, "05/04/2024", *res.Date)
	require.NotNil(t, res.AuthCode)
	assert.Equal(t, "4F7D21", *res.AuthCode)
	assert.Equal(t, 5, res.Confidence)
}

func TestParser_Parse_Deterministic(t *testing.T) {
	p, err := NewParser(DefaultVocabulary())
	require.NoError(t, err)

	first := p.Parse(sampleReceipt)
	second := p.Parse(sampleReceipt)
	assert.Equal(t, first, second)
}

func TestParser_Parse_EmptyText(t *testing.T) {
	p, err := NewParser(DefaultVocabulary())
	require.NoError(t, err)

	res := p.Parse("")

	assert.Equal(t, model.RailUnknown, res.Rail)
	assert.Equal(t, model.ProviderNone, res.Provider)
	assert.Nil(t, res.Amount)
	assert.Nil(t, res.Date)
	assert.Nil(t, res.AuthCode)
	assert.Equal(t, 1, res.Confidence)
}

func TestParser_Parse_CardReceipt(t *testing.T) {
	p, err := NewParser(DefaultVocabulary())
	require.NoError(t, err)

	res := p.Parse("CARTE BANCAIRE CB SANS CONTACT TOTAL 8.90 le 12/03/24")

	assert.Equal(t, model.RailCard, res.Rail)
	assert.Equal(t, "Inconnu (rails bancaires)", res.Provider)
	require.NotNil(t, res.Amount)
	assert.InDelta(t, 8.90, *res.Amount, 0.001)
	require.NotNil(t, res.Date)
	assert.Equal(t, "12/03/2024", *res.Date)
	assert.Nil(t, res.AuthCode)
	assert.Equal(t, 5, res.Confidence)
}
