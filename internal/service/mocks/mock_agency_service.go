package mocks

import (
	"context"

	"acenteapi/internal/model"
	"acenteapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAgencyService struct {
	mock.Mock
}

func (m *MockAgencyService) CreateBranch(ctx context.Context, name string) (*model.Branch, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Branch), args.Error(1)
}

func (m *MockAgencyService) ListBranches(ctx context.Context) ([]model.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Branch), args.Error(1)
}

func (m *MockAgencyService) UpdateBranch(ctx context.Context, id, name string) (*model.Branch, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Branch), args.Error(1)
}

func (m *MockAgencyService) RemoveBranch(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAgencyService) CreateProduction(ctx context.Context, in service.ProductionInput) (*model.Production, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Production), args.Error(1)
}

func (m *MockAgencyService) ListProductions(ctx context.Context, period string) ([]model.Production, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Production), args.Error(1)
}

func (m *MockAgencyService) UpdateProduction(ctx context.Context, id string, in service.ProductionInput) (*model.Production, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Production), args.Error(1)
}

func (m *MockAgencyService) RemoveProduction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAgencyService) Targets(ctx context.Context) (model.Targets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Targets), args.Error(1)
}

func (m *MockAgencyService) UpdateTargets(ctx context.Context, targets model.Targets) error {
	args := m.Called(ctx, targets)
	return args.Error(0)
}

func (m *MockAgencyService) AgencySettings(ctx context.Context) (*model.AgencySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgencySettings), args.Error(1)
}

func (m *MockAgencyService) UpdateAgencySettings(ctx context.Context, s model.AgencySettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockAgencyService) ValueLossSettings(ctx context.Context) (*model.ValueLossSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ValueLossSettings), args.Error(1)
}

func (m *MockAgencyService) UpdateValueLossSettings(ctx context.Context, s model.ValueLossSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockAgencyService) Summary(ctx context.Context, branchID string, stepLevel int) (*service.ProductionSummary, error) {
	args := m.Called(ctx, branchID, stepLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductionSummary), args.Error(1)
}
