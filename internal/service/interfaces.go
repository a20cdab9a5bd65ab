// Package service defines the interfaces shared between the engine, the
// storage layer and the CLI commands.
package service

import (
	"context"

	"github.com/mpetit/ticketscan/internal/model"
)

// Storage defines the contract for the ticket persistence layer.
// Tickets are keyed by source key; saving an already-known key replaces the
// previous record for that file instead of accumulating a second one.
type Storage interface {
	// SaveTicket inserts or replaces the ticket for its source key.
	SaveTicket(ctx context.Context, ticket *model.Ticket) error
	// GetTicket returns the ticket for a source key, or common.ErrNotFound.
	GetTicket(ctx context.Context, sourceKey string) (*model.Ticket, error)
	// ListTickets returns every stored ticket in batch (processing) order.
	ListTickets(ctx context.Context) ([]model.Ticket, error)
	// DeleteAllTickets empties the store.
	DeleteAllTickets(ctx context.Context) error
	// Migrate brings the schema up to date.
	Migrate(ctx context.Context) error
	Close() error
}

// Recognizer is the external OCR collaborator: one opaque text per image.
// The engine never inspects failures beyond treating them as terminal for
// the affected source.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}
