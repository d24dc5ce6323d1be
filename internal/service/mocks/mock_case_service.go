package mocks

import (
	"context"

	"acenteapi/internal/model"
	"acenteapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) Create(ctx context.Context, in service.CreateCaseInput) (*model.Case, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) Get(ctx context.Context, id string) (*model.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) List(ctx context.Context, limit, offset int) (*service.CaseListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CaseListResult), args.Error(1)
}

func (m *MockCaseService) AssignLawyer(ctx context.Context, caseID, lawyerID string) (*model.Case, error) {
	args := m.Called(ctx, caseID, lawyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) AdvanceStage(ctx context.Context, caseID string, target model.Stage, note string) (*model.Case, error) {
	args := m.Called(ctx, caseID, target, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) AddExpense(ctx context.Context, caseID, label string, amount float64) (*model.Case, error) {
	args := m.Called(ctx, caseID, label, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) RemoveExpense(ctx context.Context, caseID, expenseID string) (*model.Case, error) {
	args := m.Called(ctx, caseID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) Settle(ctx context.Context, caseID string, in service.SettlementInput) (*model.Case, error) {
	args := m.Called(ctx, caseID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Case), args.Error(1)
}

func (m *MockCaseService) Remove(ctx context.Context, caseID string) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}
