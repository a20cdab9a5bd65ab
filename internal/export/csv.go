// Package export serializes batches of tickets: a semicolon CSV report of
// usable results, and a JSON snapshot round-tripping the full data model.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mpetit/ticketscan/internal/model"
)

// csvHeader matches the columns the accounting side expects.
var csvHeader = []string{"fichier", "type", "prestataire", "montant", "date", "confiance"}

// WriteCSV writes done, non-duplicate tickets as a semicolon-separated
// report. Amounts use a decimal comma with two places; missing fields are
// empty cells. Pending, error and duplicate-flagged tickets are skipped, not
// deleted: they stay in the underlying store.
func WriteCSV(w io.Writer, tickets []model.Ticket) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range tickets {
		if t.Status != model.StatusDone || t.Duplicate {
			continue
		}

		amount := ""
		if t.Amount != nil {
			amount = strings.Replace(strconv.FormatFloat(*t.Amount, 'f', 2, 64), ".", ",", 1)
		}
		date := ""
		if t.Date != nil {
			date = *t.Date
		}

		row := []string{
			t.FileName,
			string(t.Rail),
			t.Provider,
			amount,
			date,
			strconv.Itoa(t.Confidence),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", t.FileName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
