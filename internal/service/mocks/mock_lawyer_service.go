package mocks

import (
	"context"

	"acenteapi/internal/model"
	"acenteapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockLawyerService struct {
	mock.Mock
}

func (m *MockLawyerService) Create(ctx context.Context, in service.LawyerInput) (*model.Lawyer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *MockLawyerService) Get(ctx context.Context, id string) (*model.Lawyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *MockLawyerService) List(ctx context.Context) ([]model.Lawyer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lawyer), args.Error(1)
}

func (m *MockLawyerService) Update(ctx context.Context, id string, in service.LawyerInput) (*model.Lawyer, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *MockLawyerService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
