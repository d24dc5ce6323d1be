package postgres

import (
	"context"
	"database/sql"

	"acenteapi/internal/model"
	"acenteapi/internal/repository"
)

// BranchPostgres is a PostgreSQL implementation of repository.BranchRepository.
type BranchPostgres struct {
	db *sql.DB
}

// NewBranchPostgres creates a new BranchPostgres repository.
func NewBranchPostgres(db *sql.DB) *BranchPostgres {
	return &BranchPostgres{db: db}
}

var _ repository.BranchRepository = (*BranchPostgres)(nil)

func (r *BranchPostgres) Create(ctx context.Context, b *model.Branch) (*model.Branch, error) {
	const q = `
		INSERT INTO branches (id, name, is_main)
		VALUES ($1, $2, $3)
		RETURNING id, name, is_main`
	row := r.db.QueryRowContext(ctx, q, b.ID, b.Name, b.IsMain)
	return scanBranch(row)
}

func (r *BranchPostgres) FindByID(ctx context.Context, id string) (*model.Branch, error) {
	const q = `SELECT id, name, is_main FROM branches WHERE id = $1`
	return scanBranch(r.db.QueryRowContext(ctx, q, id))
}

func (r *BranchPostgres) List(ctx context.Context) ([]model.Branch, error) {
	const q = `SELECT id, name, is_main FROM branches ORDER BY is_main DESC, name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Branch, 0)
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BranchPostgres) Update(ctx context.Context, b *model.Branch) (*model.Branch, error) {
	const q = `
		UPDATE branches SET name = $2 WHERE id = $1
		RETURNING id, name, is_main`
	row := r.db.QueryRowContext(ctx, q, b.ID, b.Name)
	return scanBranch(row)
}

func (r *BranchPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM branches WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanBranch(row rowScanner) (*model.Branch, error) {
	var b model.Branch
	if err := row.Scan(&b.ID, &b.Name, &b.IsMain); err != nil {
		return nil, err
	}
	return &b, nil
}

// ProductionPostgres is a PostgreSQL implementation of repository.ProductionRepository.
type ProductionPostgres struct {
	db *sql.DB
}

// NewProductionPostgres creates a new ProductionPostgres repository.
func NewProductionPostgres(db *sql.DB) *ProductionPostgres {
	return &ProductionPostgres{db: db}
}

var _ repository.ProductionRepository = (*ProductionPostgres)(nil)

const productionColumns = `id, branch_id, insurance_type, premium, policy_count, date, created_at`

func (r *ProductionPostgres) Create(ctx context.Context, p *model.Production) (*model.Production, error) {
	const q = `
		INSERT INTO productions (id, branch_id, insurance_type, premium, policy_count, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productionColumns
	row := r.db.QueryRowContext(ctx, q, p.ID, p.BranchID, p.InsuranceType, p.Premium, p.PolicyCount, p.Date, p.CreatedAt)
	return scanProduction(row)
}

func (r *ProductionPostgres) FindByID(ctx context.Context, id string) (*model.Production, error) {
	const q = `SELECT ` + productionColumns + ` FROM productions WHERE id = $1`
	return scanProduction(r.db.QueryRowContext(ctx, q, id))
}

func (r *ProductionPostgres) List(ctx context.Context) ([]model.Production, error) {
	const q = `SELECT ` + productionColumns + ` FROM productions ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Production, 0)
	for rows.Next() {
		p, err := scanProduction(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProductionPostgres) Update(ctx context.Context, p *model.Production) (*model.Production, error) {
	const q = `
		UPDATE productions
		SET branch_id = $2, insurance_type = $3, premium = $4, policy_count = $5, date = $6
		WHERE id = $1
		RETURNING ` + productionColumns
	row := r.db.QueryRowContext(ctx, q, p.ID, p.BranchID, p.InsuranceType, p.Premium, p.PolicyCount, p.Date)
	return scanProduction(row)
}

func (r *ProductionPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM productions WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func (r *ProductionPostgres) DeleteByBranch(ctx context.Context, branchID string) error {
	const q = `DELETE FROM productions WHERE branch_id = $1`
	_, err := r.db.ExecContext(ctx, q, branchID)
	return err
}

func scanProduction(row rowScanner) (*model.Production, error) {
	var p model.Production
	if err := row.Scan(&p.ID, &p.BranchID, &p.InsuranceType, &p.Premium, &p.PolicyCount, &p.Date, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
