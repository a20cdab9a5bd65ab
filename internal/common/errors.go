// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Export errors.
	ErrNoTickets = errors.New("no exportable tickets")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)
