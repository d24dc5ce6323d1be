package postgres

import (
	"context"
	"database/sql"

	"acenteapi/internal/model"
	"acenteapi/internal/repository"
)

// LawyerPostgres is a PostgreSQL implementation of repository.LawyerRepository.
type LawyerPostgres struct {
	db *sql.DB
}

// NewLawyerPostgres creates a new LawyerPostgres repository.
func NewLawyerPostgres(db *sql.DB) *LawyerPostgres {
	return &LawyerPostgres{db: db}
}

var _ repository.LawyerRepository = (*LawyerPostgres)(nil)

const lawyerColumns = `id, full_name, bar_number, phone, email, created_at`

// Create inserts a new lawyer row and returns the stored record.
func (r *LawyerPostgres) Create(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error) {
	const q = `
		INSERT INTO lawyers (id, full_name, bar_number, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + lawyerColumns
	row := r.db.QueryRowContext(ctx, q, l.ID, l.FullName, l.BarNumber, l.Phone, l.Email, l.CreatedAt)
	return scanLawyer(row)
}

// FindByID fetches a single lawyer by ID.
func (r *LawyerPostgres) FindByID(ctx context.Context, id string) (*model.Lawyer, error) {
	const q = `SELECT ` + lawyerColumns + ` FROM lawyers WHERE id = $1`
	return scanLawyer(r.db.QueryRowContext(ctx, q, id))
}

// List returns all lawyers ordered by creation time.
func (r *LawyerPostgres) List(ctx context.Context) ([]model.Lawyer, error) {
	const q = `SELECT ` + lawyerColumns + ` FROM lawyers ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Lawyer, 0)
	for rows.Next() {
		l, err := scanLawyer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the lawyer's editable fields.
func (r *LawyerPostgres) Update(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error) {
	const q = `
		UPDATE lawyers
		SET full_name = $2, bar_number = $3, phone = $4, email = $5
		WHERE id = $1
		RETURNING ` + lawyerColumns
	row := r.db.QueryRowContext(ctx, q, l.ID, l.FullName, l.BarNumber, l.Phone, l.Email)
	return scanLawyer(row)
}

// Delete removes a lawyer by ID. It does not return an error if the row does not exist.
func (r *LawyerPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM lawyers WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanLawyer(row rowScanner) (*model.Lawyer, error) {
	var l model.Lawyer
	if err := row.Scan(&l.ID, &l.FullName, &l.BarNumber, &l.Phone, &l.Email, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
