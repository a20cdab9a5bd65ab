package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mpetit/ticketscan/internal/common"
	"github.com/mpetit/ticketscan/internal/model"
)

// SaveTicket inserts the ticket, or replaces the existing record for the
// same source key. Replacing keeps the original batch position (seq), so a
// re-import does not reorder the history.
func (s *SQLiteStorage) SaveTicket(ctx context.Context, ticket *model.Ticket) error {
	if ticket == nil {
		return fmt.Errorf("ticket cannot be nil")
	}
	if err := ticket.Validate(); err != nil {
		return fmt.Errorf("invalid ticket: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tickets (
			id, source_key, file_name, raw_text, normalized_text,
			rail, provider, amount, tx_date, auth_code,
			confidence, status, duplicate, scanned_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_key) DO UPDATE SET
			id = excluded.id,
			file_name = excluded.file_name,
			raw_text = excluded.raw_text,
			normalized_text = excluded.normalized_text,
			rail = excluded.rail,
			provider = excluded.provider,
			amount = excluded.amount,
			tx_date = excluded.tx_date,
			auth_code = excluded.auth_code,
			confidence = excluded.confidence,
			status = excluded.status,
			duplicate = excluded.duplicate,
			scanned_at = excluded.scanned_at
	`,
		ticket.ID,
		ticket.SourceKey,
		ticket.FileName,
		ticket.Text,
		ticket.Normalized,
		string(ticket.Rail),
		ticket.Provider,
		ticket.Amount,
		ticket.Date,
		ticket.AuthCode,
		ticket.Confidence,
		string(ticket.Status),
		ticket.Duplicate,
		ticket.ScannedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

// GetTicket returns the ticket stored for a source key.
func (s *SQLiteStorage) GetTicket(ctx context.Context, sourceKey string) (*model.Ticket, error) {
	if sourceKey == "" {
		return nil, fmt.Errorf("sourceKey cannot be empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_key, file_name, raw_text, normalized_text,
		       rail, provider, amount, tx_date, auth_code,
		       confidence, status, duplicate, scanned_at
		FROM tickets
		WHERE source_key = ?
	`, sourceKey)

	ticket, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticket, nil
}

// ListTickets returns every stored ticket in batch (processing) order.
func (s *SQLiteStorage) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_key, file_name, raw_text, normalized_text,
		       rail, provider, amount, tx_date, auth_code,
		       confidence, status, duplicate, scanned_at
		FROM tickets
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tickets []model.Ticket
	for rows.Next() {
		ticket, scanErr := scanTicket(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", scanErr)
		}
		tickets = append(tickets, *ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}
	return tickets, nil
}

// DeleteAllTickets empties the store.
func (s *SQLiteStorage) DeleteAllTickets(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tickets`); err != nil {
		return fmt.Errorf("failed to delete tickets: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*model.Ticket, error) {
	var (
		t         model.Ticket
		rail      string
		status    string
		amount    sql.NullFloat64
		txDate    sql.NullString
		authCode  sql.NullString
		scannedAt time.Time
	)

	err := row.Scan(
		&t.ID,
		&t.SourceKey,
		&t.FileName,
		&t.Text,
		&t.Normalized,
		&rail,
		&t.Provider,
		&amount,
		&txDate,
		&authCode,
		&t.Confidence,
		&status,
		&t.Duplicate,
		&scannedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Rail = model.Rail(rail)
	t.Status = model.Status(status)
	t.ScannedAt = scannedAt.UTC()
	if amount.Valid {
		t.Amount = &amount.Float64
	}
	if txDate.Valid {
		t.Date = &txDate.String
	}
	if authCode.Valid {
		t.AuthCode = &authCode.String
	}
	return &t, nil
}
