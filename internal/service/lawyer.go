package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"acenteapi/internal/model"
	"acenteapi/internal/repository"
)

// LawyerInput carries the editable lawyer directory fields.
type LawyerInput struct {
	FullName  string `json:"full_name"`
	BarNumber string `json:"bar_number"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// LawyerService manages the lawyer directory. Removal is guarded: a lawyer
// with cases in any non-closed status cannot be removed.
type LawyerService interface {
	Create(ctx context.Context, in LawyerInput) (*model.Lawyer, error)
	Get(ctx context.Context, id string) (*model.Lawyer, error)
	List(ctx context.Context) ([]model.Lawyer, error)
	Update(ctx context.Context, id string, in LawyerInput) (*model.Lawyer, error)

	// Remove deletes the lawyer unless cases still reference them in a
	// non-closed status, in which case it fails with a ConflictError
	// carrying the blocking count. No cases are reassigned automatically.
	Remove(ctx context.Context, id string) error
}

type lawyerService struct {
	repo  repository.LawyerRepository
	cases repository.CaseRepository
	now   func() time.Time
}

// NewLawyerService constructs a LawyerService. The case repository backs
// the deletion guard.
func NewLawyerService(repo repository.LawyerRepository, cases repository.CaseRepository) LawyerService {
	return &lawyerService{
		repo:  repo,
		cases: cases,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *lawyerService) Create(ctx context.Context, in LawyerInput) (*model.Lawyer, error) {
	if in.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}

	l := &model.Lawyer{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		BarNumber: in.BarNumber,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: s.now(),
	}
	stored, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("create lawyer: %w", err)
	}
	return stored, nil
}

func (s *lawyerService) Get(ctx context.Context, id string) (*model.Lawyer, error) {
	return s.find(ctx, id)
}

func (s *lawyerService) List(ctx context.Context) ([]model.Lawyer, error) {
	return s.repo.List(ctx)
}

func (s *lawyerService) Update(ctx context.Context, id string, in LawyerInput) (*model.Lawyer, error) {
	if in.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidation)
	}

	l, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	l.FullName = in.FullName
	l.BarNumber = in.BarNumber
	l.Phone = in.Phone
	l.Email = in.Email

	stored, err := s.repo.Update(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("update lawyer: %w", err)
	}
	return stored, nil
}

func (s *lawyerService) Remove(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	active, err := s.cases.CountActiveByLawyer(ctx, id)
	if err != nil {
		return fmt.Errorf("count active cases: %w", err)
	}
	if active > 0 {
		return &ConflictError{ActiveCases: active}
	}

	return s.repo.Delete(ctx, id)
}

func (s *lawyerService) find(ctx context.Context, id string) (*model.Lawyer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: lawyer %s", ErrNotFound, id)
		}
		return nil, err
	}
	return l, nil
}
