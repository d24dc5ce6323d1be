package repository

import (
	"context"

	"acenteapi/internal/model"
)

// LawyerRepository defines data access for the lawyer directory.
type LawyerRepository interface {
	// Create inserts a new lawyer and returns the stored row.
	Create(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error)

	// FindByID returns a lawyer by ID.
	FindByID(ctx context.Context, id string) (*model.Lawyer, error)

	// List returns all lawyers ordered by creation time.
	List(ctx context.Context) ([]model.Lawyer, error)

	// Update replaces the lawyer's editable fields.
	Update(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error)

	// Delete removes a lawyer by ID. The deletion guard lives in the
	// service layer, not here.
	Delete(ctx context.Context, id string) error
}
