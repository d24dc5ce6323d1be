package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	repoMocks "acenteapi/internal/repository/mocks"
)

func TestCaseNumberSequencer_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("formats with zero-padded sequence", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		seq := NewCaseNumberSequencer(mRepo)
		seq.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

		mRepo.On("NextCaseSeq", ctx, "DK-2026-").Return(1, nil).Once()
		mRepo.On("NextCaseSeq", ctx, "DK-2026-").Return(42, nil).Once()
		mRepo.On("NextCaseSeq", ctx, "DK-2026-").Return(12345, nil).Once()

		no, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "DK-2026-0001", no)

		no, err = seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "DK-2026-0042", no)

		// Above 9999 the number keeps growing instead of wrapping.
		no, err = seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "DK-2026-12345", no)
	})

	t.Run("sequence restarts with the year prefix", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		seq := NewCaseNumberSequencer(mRepo)
		seq.now = func() time.Time { return time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC) }

		mRepo.On("NextCaseSeq", ctx, "DK-2027-").Return(1, nil)

		no, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "DK-2027-0001", no)
	})

	t.Run("repo error wrapped", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		seq := NewCaseNumberSequencer(mRepo)

		boom := errors.New("db down")
		mRepo.On("NextCaseSeq", ctx, mock.Anything).Return(0, boom)

		_, err := seq.Next(ctx)
		assert.ErrorIs(t, err, boom)
	})
}
