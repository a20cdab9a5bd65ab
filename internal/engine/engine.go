// Package engine implements the batch pipeline: it drives each admitted
// source through OCR and parsing to a terminal state, then exposes the
// whole-batch deduplication pass.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mpetit/ticketscan/internal/model"
	"github.com/mpetit/ticketscan/internal/parse"
	"github.com/mpetit/ticketscan/internal/service"
)

// Progress reports how many sources of the batch reached a terminal state.
type Progress func(done, total int)

// Engine orchestrates sequential batch processing against the external OCR
// collaborator. Parsing itself is synchronous and CPU-only; the engine only
// waits on the recognizer.
type Engine struct {
	storage    service.Storage
	recognizer service.Recognizer
	parser     *parse.Parser
}

// New creates a batch engine with the given dependencies.
func New(storage service.Storage, recognizer service.Recognizer, parser *parse.Parser) *Engine {
	return &Engine{
		storage:    storage,
		recognizer: recognizer,
		parser:     parser,
	}
}

// ScanBatch processes sources strictly one at a time, in admission order.
// Every source gets a pending ticket up front; each ticket then moves to
// done or error independently, so one failing source never affects the
// others. A canceled context abandons the batch between items, leaving the
// remaining tickets pending.
func (e *Engine) ScanBatch(ctx context.Context, sources []model.Source, progress Progress) error {
	if len(sources) == 0 {
		return nil
	}

	slog.Info("Starting batch", "sources", len(sources))

	// Admit the whole batch as pending before any OCR work starts.
	tickets := make([]model.Ticket, len(sources))
	for i, src := range sources {
		tickets[i] = model.NewTicket(src)
		if err := e.storage.SaveTicket(ctx, &tickets[i]); err != nil {
			return fmt.Errorf("admit source %s: %w", src.Name, err)
		}
	}

	for i, src := range sources {
		select {
		case <-ctx.Done():
			slog.Warn("Batch abandoned", "done", i, "total", len(sources))
			return ctx.Err()
		default:
		}

		ticket := e.processSource(ctx, tickets[i], src)
		if err := e.storage.SaveTicket(ctx, &ticket); err != nil {
			return fmt.Errorf("save ticket %s: %w", src.Name, err)
		}

		if progress != nil {
			progress(i+1, len(sources))
		}
	}

	slog.Info("Batch complete", "sources", len(sources))
	return nil
}

// processSource runs OCR and parsing for one source and returns the ticket
// in its terminal state. All fields are set in one step; a ticket is never
// saved half-filled.
func (e *Engine) processSource(ctx context.Context, ticket model.Ticket, src model.Source) model.Ticket {
	text, err := e.recognizer.Recognize(ctx, src.Path)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			slog.Error("OCR failed", "file", src.Name, "error", err)
		} else {
			slog.Warn("OCR returned no text", "file", src.Name)
		}
		ticket.Text = model.OCRFailureText
		ticket.Status = model.StatusError
		return ticket
	}

	res := e.parser.Parse(text)

	ticket.Text = text
	ticket.Normalized = res.Normalized
	ticket.Rail = res.Rail
	ticket.Provider = res.Provider
	ticket.Amount = res.Amount
	ticket.Date = res.Date
	ticket.AuthCode = res.AuthCode
	ticket.Confidence = res.Confidence
	ticket.Status = model.StatusDone

	slog.Debug("Parsed ticket",
		"file", src.Name,
		"rail", ticket.Rail,
		"provider", ticket.Provider,
		"confidence", ticket.Confidence)

	return ticket
}
