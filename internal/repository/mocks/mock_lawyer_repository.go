package mocks

import (
	"context"

	"acenteapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockLawyerRepository struct {
	mock.Mock
}

func (m *MockLawyerRepository) Create(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *MockLawyerRepository) FindByID(ctx context.Context, id string) (*model.Lawyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *MockLawyerRepository) List(ctx context.Context) ([]model.Lawyer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Lawyer), args.Error(1)
}

func (m *MockLawyerRepository) Update(ctx context.Context, l *model.Lawyer) (*model.Lawyer, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Lawyer), args.Error(1)
}

func (m *MockLawyerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
