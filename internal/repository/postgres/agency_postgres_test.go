package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acenteapi/internal/model"
)

func TestBranchPostgres_CRUD(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBranchPostgres(db)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO branches").
			WithArgs("b1", "Kadikoy", false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_main"}).AddRow("b1", "Kadikoy", false))

		created, err := repo.Create(ctx, &model.Branch{ID: "b1", Name: "Kadikoy"})
		require.NoError(t, err)
		assert.Equal(t, "Kadikoy", created.Name)
	})

	t.Run("list orders main branch first", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "is_main"}).
			AddRow("main", "Merkez Sube", true).
			AddRow("b1", "Kadikoy", false)
		mock.ExpectQuery("SELECT id, name, is_main FROM branches ORDER BY").WillReturnRows(rows)

		branches, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, branches, 2)
		assert.True(t, branches[0].IsMain)
	})

	t.Run("find missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, is_main FROM branches WHERE id =").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM branches").
			WithArgs("b1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "b1"))
	})
}

func TestProductionPostgres_CRUD(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductionPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	cols := []string{"id", "branch_id", "insurance_type", "premium", "policy_count", "date", "created_at"}

	t.Run("create", func(t *testing.T) {
		p := &model.Production{
			ID:            "p1",
			BranchID:      "b1",
			InsuranceType: "trafik",
			Premium:       1500,
			PolicyCount:   3,
			Date:          now,
			CreatedAt:     now,
		}

		mock.ExpectQuery("INSERT INTO productions").
			WithArgs(p.ID, p.BranchID, p.InsuranceType, p.Premium, p.PolicyCount, p.Date, p.CreatedAt).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(p.ID, p.BranchID, p.InsuranceType, p.Premium, p.PolicyCount, p.Date, p.CreatedAt))

		created, err := repo.Create(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, created.Premium)
	})

	t.Run("list newest first", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow("p2", "b1", "kasko", 2000.0, 1, now, now).
			AddRow("p1", "b1", "trafik", 1500.0, 3, now.AddDate(0, -1, 0), now)
		mock.ExpectQuery("SELECT (.+) FROM productions ORDER BY date DESC").WillReturnRows(rows)

		productions, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, productions, 2)
		assert.Equal(t, "p2", productions[0].ID)
	})

	t.Run("delete by branch", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM productions WHERE branch_id =").
			WithArgs("b1").
			WillReturnResult(sqlmock.NewResult(0, 4))

		assert.NoError(t, repo.DeleteByBranch(ctx, "b1"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
