// Package backend selects and constructs the ledger storage backend.
package backend

import (
	"context"

	"splitbook/internal/services"
	"splitbook/internal/sheets"
)

// Backend is the unified storage surface the application runs against.
type Backend interface {
	sheets.RecordAppender
	sheets.RecordSource
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// BackendResult bundles a constructed backend with its optional sync
// publisher and cleanup hook. Publisher is nil unless the backend has an
// asynchronous mirror pipeline.
type BackendResult struct {
	Backend   Backend
	Publisher services.SyncPublisher
	Cleanup   CleanupFunc
}

// Factory creates backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets specific
	GoogleSpreadsheetID      string
	GoogleSheetName          string
	GoogleServiceAccountJSON string
	GoogleServiceAccountFile string
}

// BackendType represents the type of backend.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	SheetsBackend BackendType = "sheets"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid.
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, SheetsBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
