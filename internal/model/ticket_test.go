package model

import (
	"testing"
	"time"
)

func TestSource_Key(t *testing.T) {
	base := Source{
		Name:    "Ticket-01.JPG",
		Path:    "/photos/Ticket-01.JPG",
		Size:    2048,
		ModTime: time.Date(2024, 4, 5, 12, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		other    Source
		wantSame bool
	}{
		{
			name:     "same file yields same key across re-imports",
			other:    base,
			wantSame: true,
		},
		{
			name: "path does not matter, only name size and mtime",
			other: Source{
				Name:    "Ticket-01.JPG",
				Path:    "/elsewhere/Ticket-01.JPG",
				Size:    2048,
				ModTime: base.ModTime,
			},
			wantSame: true,
		},
		{
			name: "name casing is ignored",
			other: Source{
				Name:    "ticket-01.jpg",
				Size:    2048,
				ModTime: base.ModTime,
			},
			wantSame: true,
		},
		{
			name: "same name different size is a different file",
			other: Source{
				Name:    "Ticket-01.JPG",
				Size:    4096,
				ModTime: base.ModTime,
			},
			wantSame: false,
		},
		{
			name: "same name different mtime is a different file",
			other: Source{
				Name:    "Ticket-01.JPG",
				Size:    2048,
				ModTime: base.ModTime.Add(time.Second),
			},
			wantSame: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			same := base.Key() == tt.other.Key()
			if same != tt.wantSame {
				t.Errorf("Key() equality = %v, want %v (%q vs %q)", same, tt.wantSame, base.Key(), tt.other.Key())
			}
		})
	}
}

func TestNewTicket(t *testing.T) {
	src := Source{Name: "a.jpg", Size: 10, ModTime: time.Now()}

	ticket := NewTicket(src)
	if ticket.Status != StatusPending {
		t.Errorf("new ticket status = %q, want pending", ticket.Status)
	}
	if ticket.Provider != ProviderNone {
		t.Errorf("new ticket provider = %q, want sentinel", ticket.Provider)
	}
	if ticket.Rail != RailUnknown {
		t.Errorf("new ticket rail = %q, want INCONNU", ticket.Rail)
	}
	if err := ticket.Validate(); err != nil {
		t.Errorf("new ticket should validate, got %v", err)
	}

	other := NewTicket(src)
	if other.ID == ticket.ID {
		t.Error("two tickets should never share an identity")
	}
	if other.SourceKey != ticket.SourceKey {
		t.Error("tickets for the same source must share the source key")
	}
}

func TestTicket_Validate(t *testing.T) {
	valid := func() Ticket {
		amount := 12.5
		return Ticket{
			ID:         "id-1",
			SourceKey:  "a.jpg__10__1",
			FileName:   "a.jpg",
			Rail:       RailCard,
			Provider:   "Inconnu (rails bancaires)",
			Amount:     &amount,
			Confidence: 4,
			Status:     StatusDone,
		}
	}

	tests := []struct {
		mutate  func(*Ticket)
		name    string
		wantErr bool
	}{
		{name: "valid done ticket", mutate: func(*Ticket) {}, wantErr: false},
		{name: "missing id", mutate: func(t *Ticket) { t.ID = "" }, wantErr: true},
		{name: "missing source key", mutate: func(t *Ticket) { t.SourceKey = "" }, wantErr: true},
		{name: "bogus status", mutate: func(t *Ticket) { t.Status = "finished" }, wantErr: true},
		{name: "bogus rail", mutate: func(t *Ticket) { t.Rail = "CHEQUE" }, wantErr: true},
		{name: "done confidence below range", mutate: func(t *Ticket) { t.Confidence = 0 }, wantErr: true},
		{name: "done confidence above range", mutate: func(t *Ticket) { t.Confidence = 6 }, wantErr: true},
		{
			name: "error tickets carry no confidence",
			mutate: func(t *Ticket) {
				t.Status = StatusError
				t.Confidence = 3
			},
			wantErr: true,
		},
		{
			name: "pending duplicates are impossible",
			mutate: func(t *Ticket) {
				t.Status = StatusPending
				t.Confidence = 0
				t.Duplicate = true
			},
			wantErr: true,
		},
		{
			name:    "negative amount",
			mutate:  func(t *Ticket) { *t.Amount = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := valid()
			tt.mutate(&ticket)
			err := ticket.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
