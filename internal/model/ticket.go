// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rail identifies the payment mechanism class printed on a receipt.
type Rail string

// Rail constants. Labels match what French meal-voucher terminals print.
const (
	RailCard    Rail = "CARTE"
	RailConnect Rail = "CONNECT"
	RailUnknown Rail = "INCONNU"
)

// Status tracks the lifecycle of a ticket inside a batch.
type Status string

// Lifecycle states. A ticket is created pending and reaches exactly one
// terminal state; done and error are never revisited.
const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// ProviderNone is the sentinel provider label when no vocabulary matched.
const ProviderNone = "—"

// OCRFailureText is the fixed text stored on a ticket when the OCR
// collaborator failed or returned nothing usable.
const OCRFailureText = "Erreur OCR"

// Ticket represents one scanned receipt after processing.
// All parsed fields are derived once; only Duplicate is mutated afterward,
// by the batch-wide deduplication pass.
type Ticket struct {
	ScannedAt  time.Time `json:"scanned_at"`
	ID         string    `json:"id"`
	SourceKey  string    `json:"source_key"`
	FileName   string    `json:"file_name"`
	Text       string    `json:"text"`
	Normalized string    `json:"normalized"`
	Provider   string    `json:"provider"`
	Rail       Rail      `json:"rail"`
	Status     Status    `json:"status"`
	Amount     *float64  `json:"amount,omitempty"`
	Date       *string   `json:"date,omitempty"` // DD/MM/YYYY
	AuthCode   *string   `json:"auth_code,omitempty"`
	Confidence int       `json:"confidence"`
	Duplicate  bool      `json:"duplicate"`
}

// Source identifies one image file admitted to a batch.
type Source struct {
	ModTime time.Time
	Name    string
	Path    string
	Size    int64
}

// Key returns the stable identity of the underlying file. Two imports of the
// same file share a key; two different files never do, even when same-named.
func (s Source) Key() string {
	return fmt.Sprintf("%s__%d__%d", strings.ToLower(s.Name), s.Size, s.ModTime.UnixMilli())
}

// NewTicket creates a pending ticket for a source, with a fresh identity.
func NewTicket(src Source) Ticket {
	return Ticket{
		ID:        uuid.NewString(),
		SourceKey: src.Key(),
		FileName:  src.Name,
		Provider:  ProviderNone,
		Rail:      RailUnknown,
		Status:    StatusPending,
		ScannedAt: time.Now().UTC(),
	}
}

// Validate checks the structural invariants of a ticket.
func (t *Ticket) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("ticket id is required")
	}
	if t.SourceKey == "" {
		return fmt.Errorf("ticket source key is required")
	}
	switch t.Status {
	case StatusPending, StatusDone, StatusError:
	default:
		return fmt.Errorf("invalid status: %q", t.Status)
	}
	switch t.Rail {
	case RailCard, RailConnect, RailUnknown:
	default:
		return fmt.Errorf("invalid rail: %q", t.Rail)
	}
	if t.Status == StatusDone && (t.Confidence < 1 || t.Confidence > 5) {
		return fmt.Errorf("confidence %d out of range [1,5]", t.Confidence)
	}
	if t.Status != StatusDone && t.Confidence != 0 {
		return fmt.Errorf("confidence is only defined for done tickets")
	}
	if t.Duplicate && t.Status != StatusDone {
		return fmt.Errorf("only done tickets can be duplicates")
	}
	if t.Amount != nil && *t.Amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}
	return nil
}
