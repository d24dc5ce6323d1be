package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acenteapi/internal/repository"
)

func TestKVPostgres_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewKVPostgres(db)
	ctx := context.Background()

	t.Run("stored value", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs(repository.KeyTargets).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"trafik":{"premium":1}}`)))

		raw, err := repo.Load(ctx, repository.KeyTargets)
		require.NoError(t, err)
		assert.JSONEq(t, `{"trafik":{"premium":1}}`, string(raw))
	})

	t.Run("absent key yields nil, not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv_store").
			WithArgs("unknown").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		raw, err := repo.Load(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})
}

func TestKVPostgres_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewKVPostgres(db)
	ctx := context.Background()

	value := json.RawMessage(`{"default_fee_percentage":20,"profit_split":50}`)

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(repository.KeyValueLossSettings, []byte(value)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(ctx, repository.KeyValueLossSettings, value))
	assert.NoError(t, mock.ExpectationsWereMet())
}
