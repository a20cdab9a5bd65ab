package export

import (
	"strings"
	"testing"

	"github.com/mpetit/ticketscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportableTicket(file string) model.Ticket {
	amount := 11.9
	date := "05/04/2024"
	return model.Ticket{
		ID:         "id-" + file,
		SourceKey:  file + "__1__1",
		FileName:   file,
		Rail:       model.RailConnect,
		Provider:   "Edenred / Ticket Restaurant (Connect)",
		Amount:     &amount,
		Date:       &date,
		Confidence: 5,
		Status:     model.StatusDone,
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	err := WriteCSV(&sb, []model.Ticket{exportableTicket("a.jpg")})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "fichier;type;prestataire;montant;date;confiance", lines[0])
	assert.Equal(t, "a.jpg;CONNECT;Edenred / Ticket Restaurant (Connect);11,90;05/04/2024;5", lines[1])
}

func TestWriteCSV_SkipsUnusableTickets(t *testing.T) {
	dup := exportableTicket("dup.jpg")
	dup.Duplicate = true

	pending := model.Ticket{
		ID:        "id-p",
		SourceKey: "p.jpg__1__1",
		FileName:  "p.jpg",
		Rail:      model.RailUnknown,
		Provider:  model.ProviderNone,
		Status:    model.StatusPending,
	}
	failed := model.Ticket{
		ID:        "id-f",
		SourceKey: "f.jpg__1__1",
		FileName:  "f.jpg",
		Text:      model.OCRFailureText,
		Rail:      model.RailUnknown,
		Provider:  model.ProviderNone,
		Status:    model.StatusError,
	}

	var sb strings.Builder
	err := WriteCSV(&sb, []model.Ticket{dup, pending, failed, exportableTicket("keep.jpg")})
	require.NoError(t, err)

	out := sb.String()
	assert.Contains(t, out, "keep.jpg")
	assert.NotContains(t, out, "dup.jpg")
	assert.NotContains(t, out, "p.jpg;")
	assert.NotContains(t, out, "f.jpg;")
}

func TestWriteCSV_MissingFieldsAreEmptyCells(t *testing.T) {
	ticket := exportableTicket("sparse.jpg")
	ticket.Amount = nil
	ticket.Date = nil
	ticket.Rail = model.RailUnknown
	ticket.Provider = model.ProviderNone
	ticket.Confidence = 1

	var sb strings.Builder
	err := WriteCSV(&sb, []model.Ticket{ticket})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "sparse.jpg;INCONNU;—;;;1", lines[1])
}

func TestWriteCSV_AmountAlwaysTwoDecimals(t *testing.T) {
	ticket := exportableTicket("a.jpg")
	amount := 7.0
	ticket.Amount = &amount

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, []model.Ticket{ticket}))
	assert.Contains(t, sb.String(), ";7,00;")
}

func TestWriteCSV_EmptyBatchStillWritesHeader(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t, "fichier;type;prestataire;montant;date;confiance\n", sb.String())
}
