package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"acenteapi/internal/config"
	"acenteapi/internal/model"
	"acenteapi/internal/repository"
	repoMocks "acenteapi/internal/repository/mocks"
)

// newTestCaseService wires a case service with no stored value-loss
// settings, so the configured defaults (fee 20, split 50) apply.
func newTestCaseService(cases *repoMocks.MockCaseRepository, lawyers *repoMocks.MockLawyerRepository) CaseService {
	kv := new(repoMocks.MockKVRepository)
	kv.On("Load", mock.Anything, repository.KeyValueLossSettings).Return(nil, nil).Maybe()
	return newTestCaseServiceWithKV(cases, lawyers, kv)
}

func newTestCaseServiceWithKV(cases *repoMocks.MockCaseRepository, lawyers *repoMocks.MockLawyerRepository, kv *repoMocks.MockKVRepository) CaseService {
	defaults := config.ValueLossConfig{DefaultFeePercentage: 20, ProfitSplitPercent: 50}
	return NewCaseService(cases, lawyers, NewCaseNumberSequencer(cases), kv, defaults)
}

func TestCaseService_Create(t *testing.T) {
	ctx := context.Background()
	year := time.Now().Year()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		mLawyers := new(repoMocks.MockLawyerRepository)
		svc := newTestCaseService(mRepo, mLawyers)

		mRepo.On("NextCaseSeq", ctx, fmt.Sprintf("DK-%d-", year)).Return(1, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Case) bool {
			return c.Status == model.StageOpen &&
				c.CaseNo == fmt.Sprintf("DK-%d-0001", year) &&
				c.FeePercentage == 20 &&
				len(c.StageHistory) == 1 &&
				c.StageHistory[0].Stage == model.StageOpen &&
				c.Settlement == nil
		})).Return(&model.Case{ID: "gen-id"}, nil)

		created, err := svc.Create(ctx, CreateCaseInput{
			Vehicle: model.Vehicle{Plate: "34ABC123"},
			Client:  model.Client{FullName: "Ali Veli"},
		})
		require.NoError(t, err)
		assert.Equal(t, "gen-id", created.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("explicit fee percentage", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		mLawyers := new(repoMocks.MockLawyerRepository)
		svc := newTestCaseService(mRepo, mLawyers)

		fee := 15.0
		mRepo.On("NextCaseSeq", ctx, mock.Anything).Return(7, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Case) bool {
			return c.FeePercentage == 15 && c.CaseNo == fmt.Sprintf("DK-%d-0007", year)
		})).Return(&model.Case{ID: "x"}, nil)

		_, err := svc.Create(ctx, CreateCaseInput{
			Vehicle:       model.Vehicle{Plate: "06XYZ99"},
			Client:        model.Client{FullName: "Ayse"},
			FeePercentage: &fee,
		})
		require.NoError(t, err)
	})

	t.Run("missing plate", func(t *testing.T) {
		svc := newTestCaseService(new(repoMocks.MockCaseRepository), new(repoMocks.MockLawyerRepository))
		_, err := svc.Create(ctx, CreateCaseInput{Client: model.Client{FullName: "Ali"}})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing client name", func(t *testing.T) {
		svc := newTestCaseService(new(repoMocks.MockCaseRepository), new(repoMocks.MockLawyerRepository))
		_, err := svc.Create(ctx, CreateCaseInput{Vehicle: model.Vehicle{Plate: "34A1"}})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("fee out of range", func(t *testing.T) {
		svc := newTestCaseService(new(repoMocks.MockCaseRepository), new(repoMocks.MockLawyerRepository))
		fee := 150.0
		_, err := svc.Create(ctx, CreateCaseInput{
			Vehicle:       model.Vehicle{Plate: "34A1"},
			Client:        model.Client{FullName: "Ali"},
			FeePercentage: &fee,
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown lawyer", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		mLawyers := new(repoMocks.MockLawyerRepository)
		svc := newTestCaseService(mRepo, mLawyers)

		lawyerID := "missing-id"
		mLawyers.On("FindByID", ctx, lawyerID).Return(nil, sql.ErrNoRows)

		_, err := svc.Create(ctx, CreateCaseInput{
			Vehicle:  model.Vehicle{Plate: "34A1"},
			Client:   model.Client{FullName: "Ali"},
			LawyerID: &lawyerID,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func openCase(status model.Stage) *model.Case {
	history := []model.StageEntry{{Stage: model.StageOpen, Date: time.Now(), Note: "Dosya olusturuldu"}}
	return &model.Case{
		ID:            "case-1",
		CaseNo:        "DK-2026-0001",
		Vehicle:       model.Vehicle{Plate: "34ABC123"},
		Client:        model.Client{FullName: "Ali Veli"},
		FeePercentage: 20,
		Status:        status,
		StageHistory:  history,
		Expenses:      []model.Expense{},
	}
}

func TestCaseService_AssignLawyer(t *testing.T) {
	ctx := context.Background()

	t.Run("sets lawyer without changing stage", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		mLawyers := new(repoMocks.MockLawyerRepository)
		svc := newTestCaseService(mRepo, mLawyers)

		c := openCase(model.StageOpen)
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mLawyers.On("FindByID", ctx, "lawyer-1").Return(&model.Lawyer{ID: "lawyer-1"}, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		updated, err := svc.AssignLawyer(ctx, "case-1", "lawyer-1")
		require.NoError(t, err)
		require.NotNil(t, updated.LawyerID)
		assert.Equal(t, "lawyer-1", *updated.LawyerID)
		assert.NotNil(t, updated.AssignedAt)
		assert.Equal(t, model.StageOpen, updated.Status)
		assert.Len(t, updated.StageHistory, 1)
	})

	t.Run("closed case rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		mLawyers := new(repoMocks.MockLawyerRepository)
		svc := newTestCaseService(mRepo, mLawyers)

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageClosed), nil)

		_, err := svc.AssignLawyer(ctx, "case-1", "lawyer-1")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCaseService_AdvanceStage(t *testing.T) {
	ctx := context.Background()

	t.Run("advances to immediate successor", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		c := openCase(model.StageOpen)
		lawyerID := "lawyer-1"
		c.LawyerID = &lawyerID
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		updated, err := svc.AdvanceStage(ctx, "case-1", model.StageAssigned, "")
		require.NoError(t, err)
		assert.Equal(t, model.StageAssigned, updated.Status)
		require.Len(t, updated.StageHistory, 2)
		assert.Equal(t, model.StageAssigned, updated.StageHistory[1].Stage)
		assert.Equal(t, model.StageAssigned.Label(), updated.StageHistory[1].Note)
	})

	t.Run("skipping a stage rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageOpen), nil)

		_, err := svc.AdvanceStage(ctx, "case-1", model.StageApplied, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("backwards rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageApplied), nil)

		_, err := svc.AdvanceStage(ctx, "case-1", model.StageAssigned, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("assigned requires a lawyer", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageOpen), nil)

		_, err := svc.AdvanceStage(ctx, "case-1", model.StageAssigned, "")
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("closing requires a settlement", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageConcluded), nil)

		_, err := svc.AdvanceStage(ctx, "case-1", model.StageClosed, "")
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("unknown stage rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageOpen), nil)

		_, err := svc.AdvanceStage(ctx, "case-1", model.Stage("bogus"), "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("closed case immutable", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageClosed), nil)

		_, err := svc.AdvanceStage(ctx, "case-1", model.StageOpen, "")
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCaseService_Expenses(t *testing.T) {
	ctx := context.Background()

	t.Run("add appends a dated entry", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		c := openCase(model.StageApplied)
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		updated, err := svc.AddExpense(ctx, "case-1", "ekspertiz", 1500)
		require.NoError(t, err)
		require.Len(t, updated.Expenses, 1)
		assert.Equal(t, "ekspertiz", updated.Expenses[0].Label)
		assert.Equal(t, 1500.0, updated.Expenses[0].Amount)
		assert.NotEmpty(t, updated.Expenses[0].ID)
		assert.Equal(t, 1500.0, updated.ExpenseTotal())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageOpen), nil)

		_, err := svc.AddExpense(ctx, "case-1", "noter", -5)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("closed ledger immutable", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageClosed), nil)

		_, err := svc.AddExpense(ctx, "case-1", "noter", 5)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("remove filters by id, unknown id is a no-op", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		c := openCase(model.StageApplied)
		c.Expenses = []model.Expense{
			{ID: "e1", Label: "noter", Amount: 100},
			{ID: "e2", Label: "posta", Amount: 50},
		}
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		updated, err := svc.RemoveExpense(ctx, "case-1", "e1")
		require.NoError(t, err)
		require.Len(t, updated.Expenses, 1)
		assert.Equal(t, "e2", updated.Expenses[0].ID)

		updated, err = svc.RemoveExpense(ctx, "case-1", "does-not-exist")
		require.NoError(t, err)
		assert.Len(t, updated.Expenses, 1)
	})
}

func TestCaseService_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("computes, freezes and closes", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		c := openCase(model.StageConcluded)
		c.Expenses = []model.Expense{{ID: "e1", Label: "ekspertiz", Amount: 3000}}
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		settled, err := svc.Settle(ctx, "case-1", SettlementInput{
			CompensationAmount: 100000,
			CounterAttorneyFee: 5000,
			WithholdingTax:     1000,
			InterestAmount:     2000,
			OtherIncomeItems:   []model.IncomeItem{{Label: "x", Amount: 500}},
		})
		require.NoError(t, err)
		require.NotNil(t, settled.Settlement)
		assert.Equal(t, model.StageClosed, settled.Status)
		assert.Equal(t, 20000.0, settled.Settlement.FeeFromCompensation)
		assert.Equal(t, 28500.0, settled.Settlement.TotalRevenue)
		assert.Equal(t, 25500.0, settled.Settlement.NetProfit)
		assert.Equal(t, 12750.0, settled.Settlement.OwnerShare)
		assert.Equal(t, 12750.0, settled.Settlement.LawyerShare)
		assert.Equal(t, 80000.0, settled.Settlement.ClientPayment)
		last := settled.StageHistory[len(settled.StageHistory)-1]
		assert.Equal(t, model.StageClosed, last.Stage)
		assert.Equal(t, "Dosya kapandi - hesaplama tamamlandi", last.Note)
	})

	t.Run("already closed", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageClosed), nil)

		_, err := svc.Settle(ctx, "case-1", SettlementInput{CompensationAmount: 1000})
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("compensation required", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "case-1").Return(openCase(model.StageConcluded), nil)

		_, err := svc.Settle(ctx, "case-1", SettlementInput{})
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	t.Run("settle allowed from any open stage", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		c := openCase(model.StageOpen)
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		settled, err := svc.Settle(ctx, "case-1", SettlementInput{CompensationAmount: 1000})
		require.NoError(t, err)
		assert.Equal(t, model.StageClosed, settled.Status)
	})
}

func TestCaseService_StoredSettings(t *testing.T) {
	ctx := context.Background()
	stored := json.RawMessage(`{"default_fee_percentage":35,"profit_split":70}`)

	t.Run("new case fee default comes from saved settings", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		kv := new(repoMocks.MockKVRepository)
		kv.On("Load", mock.Anything, repository.KeyValueLossSettings).Return(stored, nil)
		svc := newTestCaseServiceWithKV(mRepo, new(repoMocks.MockLawyerRepository), kv)

		mRepo.On("NextCaseSeq", ctx, mock.Anything).Return(1, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Case) bool {
			return c.FeePercentage == 35
		})).Return(&model.Case{ID: "x", FeePercentage: 35}, nil)

		created, err := svc.Create(ctx, CreateCaseInput{
			Vehicle: model.Vehicle{Plate: "34ABC123"},
			Client:  model.Client{FullName: "Ali Veli"},
		})
		require.NoError(t, err)
		assert.Equal(t, 35.0, created.FeePercentage)
		mRepo.AssertExpectations(t)
	})

	t.Run("explicit fee still wins over saved settings", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		kv := new(repoMocks.MockKVRepository)
		kv.On("Load", mock.Anything, repository.KeyValueLossSettings).Return(stored, nil).Maybe()
		svc := newTestCaseServiceWithKV(mRepo, new(repoMocks.MockLawyerRepository), kv)

		fee := 10.0
		mRepo.On("NextCaseSeq", ctx, mock.Anything).Return(2, nil)
		mRepo.On("Create", ctx, mock.MatchedBy(func(c *model.Case) bool {
			return c.FeePercentage == 10
		})).Return(&model.Case{ID: "y"}, nil)

		_, err := svc.Create(ctx, CreateCaseInput{
			Vehicle:       model.Vehicle{Plate: "06XYZ99"},
			Client:        model.Client{FullName: "Ayse"},
			FeePercentage: &fee,
		})
		require.NoError(t, err)
		kv.AssertNotCalled(t, "Load", mock.Anything, repository.KeyValueLossSettings)
	})

	t.Run("settlement split comes from saved settings", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		kv := new(repoMocks.MockKVRepository)
		kv.On("Load", mock.Anything, repository.KeyValueLossSettings).Return(stored, nil)
		svc := newTestCaseServiceWithKV(mRepo, new(repoMocks.MockLawyerRepository), kv)

		c := openCase(model.StageConcluded)
		mRepo.On("FindByID", ctx, "case-1").Return(c, nil)
		mRepo.On("Update", ctx, c).Return(c, nil)

		settled, err := svc.Settle(ctx, "case-1", SettlementInput{CompensationAmount: 100000})
		require.NoError(t, err)
		require.NotNil(t, settled.Settlement)
		assert.Equal(t, 20000.0, settled.Settlement.NetProfit)
		assert.Equal(t, 14000.0, settled.Settlement.OwnerShare)
		assert.Equal(t, 6000.0, settled.Settlement.LawyerShare)
	})

	t.Run("settings load failure fails the operation", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		kv := new(repoMocks.MockKVRepository)
		boom := errors.New("kv down")
		kv.On("Load", mock.Anything, repository.KeyValueLossSettings).Return(nil, boom)
		svc := newTestCaseServiceWithKV(mRepo, new(repoMocks.MockLawyerRepository), kv)

		mRepo.On("NextCaseSeq", ctx, mock.Anything).Return(1, nil).Maybe()

		_, err := svc.Create(ctx, CreateCaseInput{
			Vehicle: model.Vehicle{Plate: "34ABC123"},
			Client:  model.Client{FullName: "Ali Veli"},
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCaseService_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		mRepo.On("FindByID", ctx, "nope").Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("repo error passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockCaseRepository)
		svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

		boom := errors.New("connection reset")
		mRepo.On("FindByID", ctx, "case-1").Return(nil, boom)

		_, err := svc.Get(ctx, "case-1")
		assert.ErrorIs(t, err, boom)
	})
}

func TestCaseService_Remove(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockCaseRepository)
	svc := newTestCaseService(mRepo, new(repoMocks.MockLawyerRepository))

	mRepo.On("Delete", ctx, "case-1").Return(nil)

	assert.NoError(t, svc.Remove(ctx, "case-1"))
	mRepo.AssertExpectations(t)
}
