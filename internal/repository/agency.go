package repository

import (
	"context"

	"acenteapi/internal/model"
)

// BranchRepository defines data access for agency branches.
type BranchRepository interface {
	Create(ctx context.Context, b *model.Branch) (*model.Branch, error)
	FindByID(ctx context.Context, id string) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, b *model.Branch) (*model.Branch, error)
	Delete(ctx context.Context, id string) error
}

// ProductionRepository defines data access for premium production records.
type ProductionRepository interface {
	Create(ctx context.Context, p *model.Production) (*model.Production, error)
	FindByID(ctx context.Context, id string) (*model.Production, error)
	List(ctx context.Context) ([]model.Production, error)
	Update(ctx context.Context, p *model.Production) (*model.Production, error)
	Delete(ctx context.Context, id string) error

	// DeleteByBranch removes all productions booked under a branch.
	// Called when the branch itself is removed.
	DeleteByBranch(ctx context.Context, branchID string) error
}
