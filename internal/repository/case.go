package repository

import (
	"context"

	"acenteapi/internal/model"
)

// CaseRepository defines data access for value-loss case files using SQL
// queries only. No business logic here — the case service owns the
// lifecycle rules; this layer only persists whole case records.
type CaseRepository interface {
	// Create inserts a new case record and returns the stored row.
	Create(ctx context.Context, c *model.Case) (*model.Case, error)

	// FindByID returns a case by its ID.
	FindByID(ctx context.Context, id string) (*model.Case, error)

	// List returns a paginated list of cases and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Case], error)

	// ListAll returns every case, newest first. Used by the report snapshot.
	ListAll(ctx context.Context) ([]model.Case, error)

	// Update replaces the full mutable state of an existing case row.
	// The case ID, case number, fee percentage and created_at never change.
	Update(ctx context.Context, c *model.Case) (*model.Case, error)

	// Delete removes a case by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// NextCaseSeq returns the next free numeric suffix for case numbers
	// starting with the given prefix (e.g. "DK-2026-").
	NextCaseSeq(ctx context.Context, prefix string) (int, error)

	// CountActiveByLawyer counts cases assigned to the lawyer whose status
	// is not closed. Backs the lawyer deletion guard.
	CountActiveByLawyer(ctx context.Context, lawyerID string) (int, error)
}
