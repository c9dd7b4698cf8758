// Package storage defines the persistence interface for evaluation records.
package storage

import (
	"context"

	"github.com/hyperjump/screener/internal/models"
)

// Store persists evaluation records. Records are append-only: there is no update or
// per-record delete, and filtering is left to callers over FetchAll.
type Store interface {
	// Insert stores rec, sets rec.ID and returns it.
	Insert(ctx context.Context, rec *models.EvaluationRecord) (int64, error)
	// FetchAll returns every record in id order.
	FetchAll(ctx context.Context) ([]*models.EvaluationRecord, error)
	// ClearAll removes every record. Identifiers are not reused afterwards.
	ClearAll(ctx context.Context) error
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
	// Close releases the underlying database.
	Close() error
}
