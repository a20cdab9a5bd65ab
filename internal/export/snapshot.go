package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mpetit/ticketscan/internal/model"
)

// snapshotVersion guards against reading snapshots written by a newer,
// incompatible format.
const snapshotVersion = 1

// Snapshot is the full round-trip serialization of a batch. Unlike the CSV
// report it keeps every ticket — pending, error and duplicate-flagged ones
// included — so the exact data model survives an application restart.
type Snapshot struct {
	SavedAt time.Time      `json:"saved_at"`
	Tickets []model.Ticket `json:"tickets"`
	Version int            `json:"version"`
}

// WriteSnapshot serializes all tickets to w as JSON.
func WriteSnapshot(w io.Writer, tickets []model.Ticket) error {
	snap := Snapshot{
		Version: snapshotVersion,
		SavedAt: time.Now().UTC(),
		Tickets: tickets,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot deserializes a snapshot and validates every ticket in it.
func ReadSnapshot(r io.Reader) ([]model.Ticket, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version > snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	for i := range snap.Tickets {
		if err := snap.Tickets[i].Validate(); err != nil {
			return nil, fmt.Errorf("ticket %d: %w", i, err)
		}
	}
	return snap.Tickets, nil
}
