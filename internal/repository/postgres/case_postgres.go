package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"acenteapi/internal/model"
	"acenteapi/internal/repository"
)

// CasePostgres is a PostgreSQL implementation of repository.CaseRepository.
// The structured record groups (vehicle, driver, accident, client), the
// stage history, the expense ledger and the settlement are stored as JSONB
// so an update replaces the whole case record in one row write.
type CasePostgres struct {
	db *sql.DB
}

// NewCasePostgres creates a new CasePostgres repository.
func NewCasePostgres(db *sql.DB) *CasePostgres {
	return &CasePostgres{db: db}
}

var _ repository.CaseRepository = (*CasePostgres)(nil)

const caseColumns = `id, case_no, vehicle, driver, accident, client, fee_percentage,
		lawyer_id, assigned_at, status, stage_history, expenses, settlement, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*model.Case, error) {
	var (
		c          model.Case
		vehicle    []byte
		driver     []byte
		accident   []byte
		client     []byte
		history    []byte
		expenses   []byte
		settlement []byte
		lawyerID   sql.NullString
		assignedAt sql.NullTime
		status     string
	)
	if err := row.Scan(
		&c.ID,
		&c.CaseNo,
		&vehicle,
		&driver,
		&accident,
		&client,
		&c.FeePercentage,
		&lawyerID,
		&assignedAt,
		&status,
		&history,
		&expenses,
		&settlement,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = model.Stage(status)
	if lawyerID.Valid {
		c.LawyerID = &lawyerID.String
	}
	if assignedAt.Valid {
		t := assignedAt.Time
		c.AssignedAt = &t
	}
	for _, f := range []struct {
		raw []byte
		dst any
	}{
		{vehicle, &c.Vehicle},
		{driver, &c.Driver},
		{accident, &c.Accident},
		{client, &c.Client},
		{history, &c.StageHistory},
		{expenses, &c.Expenses},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("decode case column: %w", err)
		}
	}
	if settlement != nil {
		var s model.Settlement
		if err := json.Unmarshal(settlement, &s); err != nil {
			return nil, fmt.Errorf("decode settlement: %w", err)
		}
		c.Settlement = &s
	}
	return &c, nil
}

// encodedCase holds a case's column values ready for binding, with the
// JSONB groups marshaled and the nullable columns widened to any.
type encodedCase struct {
	vehicle    []byte
	driver     []byte
	accident   []byte
	client     []byte
	lawyerID   any
	assignedAt any
	status     string
	history    []byte
	expenses   []byte
	settlement any
}

func encodeCase(c *model.Case) (e encodedCase, err error) {
	if e.vehicle, err = json.Marshal(c.Vehicle); err != nil {
		return e, err
	}
	if e.driver, err = json.Marshal(c.Driver); err != nil {
		return e, err
	}
	if e.accident, err = json.Marshal(c.Accident); err != nil {
		return e, err
	}
	if e.client, err = json.Marshal(c.Client); err != nil {
		return e, err
	}
	if e.history, err = json.Marshal(c.StageHistory); err != nil {
		return e, err
	}
	if e.expenses, err = json.Marshal(c.Expenses); err != nil {
		return e, err
	}

	if c.LawyerID != nil {
		e.lawyerID = *c.LawyerID
	}
	if c.AssignedAt != nil {
		e.assignedAt = *c.AssignedAt
	}
	if c.Settlement != nil {
		b, err := json.Marshal(c.Settlement)
		if err != nil {
			return e, err
		}
		e.settlement = b
	}
	e.status = string(c.Status)

	return e, nil
}

// Create inserts a new case row and returns the stored record.
func (r *CasePostgres) Create(ctx context.Context, c *model.Case) (*model.Case, error) {
	const q = `
		INSERT INTO cases (id, case_no, vehicle, driver, accident, client, fee_percentage,
			lawyer_id, assigned_at, status, stage_history, expenses, settlement, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + caseColumns

	e, err := encodeCase(c)
	if err != nil {
		return nil, fmt.Errorf("encode case: %w", err)
	}

	row := r.db.QueryRowContext(ctx, q,
		c.ID, c.CaseNo, e.vehicle, e.driver, e.accident, e.client, c.FeePercentage,
		e.lawyerID, e.assignedAt, e.status, e.history, e.expenses, e.settlement,
		c.CreatedAt, c.UpdatedAt,
	)
	return scanCase(row)
}

// FindByID fetches a single case by its ID.
func (r *CasePostgres) FindByID(ctx context.Context, id string) (*model.Case, error) {
	const q = `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`
	return scanCase(r.db.QueryRowContext(ctx, q, id))
}

// List returns cases using LIMIT/OFFSET pagination and a total count.
func (r *CasePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Case], error) {
	const qCount = `SELECT COUNT(*) FROM cases`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + caseColumns + `
		FROM cases
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := collectCases(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Case]{Items: items, Total: total}, nil
}

// ListAll returns every case, newest first.
func (r *CasePostgres) ListAll(ctx context.Context) ([]model.Case, error) {
	const q = `SELECT ` + caseColumns + ` FROM cases ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCases(rows)
}

func collectCases(rows *sql.Rows) ([]model.Case, error) {
	items := make([]model.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the mutable state of a case row. Identity columns
// (id, case_no, fee_percentage, created_at) are never touched.
func (r *CasePostgres) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	const q = `
		UPDATE cases
		SET vehicle = $2, driver = $3, accident = $4, client = $5,
			lawyer_id = $6, assigned_at = $7, status = $8,
			stage_history = $9, expenses = $10, settlement = $11, updated_at = $12
		WHERE id = $1
		RETURNING ` + caseColumns

	e, err := encodeCase(c)
	if err != nil {
		return nil, fmt.Errorf("encode case: %w", err)
	}

	row := r.db.QueryRowContext(ctx, q,
		c.ID, e.vehicle, e.driver, e.accident, e.client,
		e.lawyerID, e.assignedAt, e.status,
		e.history, e.expenses, e.settlement, c.UpdatedAt,
	)
	return scanCase(row)
}

// Delete removes a case by ID. It does not return an error if the row does not exist.
func (r *CasePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM cases WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// NextCaseSeq returns MAX(numeric suffix)+1 over case numbers with the given
// prefix. Unlike a plain COUNT+1 this cannot reissue a number after a case
// is removed mid-year.
func (r *CasePostgres) NextCaseSeq(ctx context.Context, prefix string) (int, error) {
	const q = `
		SELECT COALESCE(MAX(CAST(SUBSTRING(case_no FROM CHAR_LENGTH($1) + 1) AS INTEGER)), 0) + 1
		FROM cases
		WHERE case_no LIKE $1 || '%'`
	var next int
	if err := r.db.QueryRowContext(ctx, q, prefix).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// CountActiveByLawyer counts non-closed cases referencing the lawyer.
func (r *CasePostgres) CountActiveByLawyer(ctx context.Context, lawyerID string) (int, error) {
	const q = `SELECT COUNT(*) FROM cases WHERE lawyer_id = $1 AND status <> $2`
	var count int
	if err := r.db.QueryRowContext(ctx, q, lawyerID, string(model.StageClosed)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
