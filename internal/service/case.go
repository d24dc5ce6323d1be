package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"acenteapi/internal/config"
	"acenteapi/internal/model"
	"acenteapi/internal/repository"
)

// CreateCaseInput carries the fields collected by the new-case form.
// FeePercentage is optional; when nil the configured default applies.
type CreateCaseInput struct {
	Vehicle       model.Vehicle
	Driver        model.Driver
	Accident      model.Accident
	Client        model.Client
	FeePercentage *float64
	LawyerID      *string
}

// CaseListResult is the service-level DTO for paginated cases.
type CaseListResult struct {
	Items []model.Case `json:"data"`
	Total int          `json:"total"`
}

// CaseService owns the value-loss case lifecycle: it is the sole mutator of
// case state and enforces the stage machine and ledger rules. Every
// operation either fully applies its mutation in one row write or fully
// fails with no mutation.
type CaseService interface {
	// Create opens a new case file in the open stage with a seeded history
	// entry, an empty expense ledger and no settlement.
	Create(ctx context.Context, in CreateCaseInput) (*model.Case, error)

	// Get returns a single case by ID.
	Get(ctx context.Context, id string) (*model.Case, error)

	// List returns cases using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*CaseListResult, error)

	// AssignLawyer attaches a lawyer to the case. It does not change the
	// stage; advancing into assigned is AdvanceStage's job and requires the
	// lawyer reference this call sets.
	AssignLawyer(ctx context.Context, caseID, lawyerID string) (*model.Case, error)

	// AdvanceStage moves the case to the immediate successor stage.
	AdvanceStage(ctx context.Context, caseID string, target model.Stage, note string) (*model.Case, error)

	// AddExpense appends an entry to the case's expense ledger.
	AddExpense(ctx context.Context, caseID, label string, amount float64) (*model.Case, error)

	// RemoveExpense removes a ledger entry; unknown IDs are a no-op.
	RemoveExpense(ctx context.Context, caseID, expenseID string) (*model.Case, error)

	// Settle computes and freezes the settlement and closes the case.
	// Terminal: no further mutation is permitted afterwards.
	Settle(ctx context.Context, caseID string, in SettlementInput) (*model.Case, error)

	// Remove deletes a case unconditionally. Guarding an in-progress case
	// against removal is the caller's confirmation step, not enforced here.
	Remove(ctx context.Context, caseID string) error
}

type caseService struct {
	repo     repository.CaseRepository
	lawyers  repository.LawyerRepository
	seq      *CaseNumberSequencer
	kv       repository.KVRepository
	defaults config.ValueLossConfig
	now      func() time.Time
}

// NewCaseService constructs a CaseService.
//
// The fee-percentage default for new cases and the owner's share of
// settlement net profit come from the stored value-loss settings; defaults
// covers an agency that has never saved them.
func NewCaseService(repo repository.CaseRepository, lawyers repository.LawyerRepository, seq *CaseNumberSequencer, kv repository.KVRepository, defaults config.ValueLossConfig) CaseService {
	return &caseService{
		repo:     repo,
		lawyers:  lawyers,
		seq:      seq,
		kv:       kv,
		defaults: defaults,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// settings returns the current value-loss settings, falling back to the
// configured defaults when the agency has never saved any.
func (s *caseService) settings(ctx context.Context) (model.ValueLossSettings, error) {
	raw, err := s.kv.Load(ctx, repository.KeyValueLossSettings)
	if err != nil {
		return model.ValueLossSettings{}, fmt.Errorf("load value-loss settings: %w", err)
	}
	if raw == nil {
		return model.ValueLossSettings{
			DefaultFeePercentage: s.defaults.DefaultFeePercentage,
			ProfitSplit:          s.defaults.ProfitSplitPercent,
		}, nil
	}
	var out model.ValueLossSettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.ValueLossSettings{}, fmt.Errorf("decode value-loss settings: %w", err)
	}
	return out, nil
}

func (s *caseService) Create(ctx context.Context, in CreateCaseInput) (*model.Case, error) {
	if in.Vehicle.Plate == "" {
		return nil, fmt.Errorf("%w: vehicle plate is required", ErrValidation)
	}
	if in.Client.FullName == "" {
		return nil, fmt.Errorf("%w: client full name is required", ErrValidation)
	}

	var fee float64
	if in.FeePercentage != nil {
		fee = *in.FeePercentage
	} else {
		settings, err := s.settings(ctx)
		if err != nil {
			return nil, err
		}
		fee = settings.DefaultFeePercentage
	}
	if fee < 0 || fee > 100 {
		return nil, fmt.Errorf("%w: fee percentage must be between 0 and 100", ErrValidation)
	}

	var lawyerID *string
	var assignedAt *time.Time
	if in.LawyerID != nil && *in.LawyerID != "" {
		if _, err := s.findLawyer(ctx, *in.LawyerID); err != nil {
			return nil, err
		}
		id := *in.LawyerID
		at := s.now()
		lawyerID, assignedAt = &id, &at
	}

	caseNo, err := s.seq.Next(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := &model.Case{
		ID:            uuid.New().String(),
		CaseNo:        caseNo,
		Vehicle:       in.Vehicle,
		Driver:        in.Driver,
		Accident:      in.Accident,
		Client:        in.Client,
		FeePercentage: fee,
		LawyerID:      lawyerID,
		AssignedAt:    assignedAt,
		Status:        model.StageOpen,
		StageHistory: []model.StageEntry{
			{Stage: model.StageOpen, Date: now, Note: "Dosya olusturuldu"},
		},
		Expenses:  []model.Expense{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create case: %w", err)
	}
	return stored, nil
}

func (s *caseService) Get(ctx context.Context, id string) (*model.Case, error) {
	return s.findCase(ctx, id)
}

func (s *caseService) List(ctx context.Context, limit, offset int) (*CaseListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &CaseListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *caseService) AssignLawyer(ctx context.Context, caseID, lawyerID string) (*model.Case, error) {
	c, err := s.findCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Closed() {
		return nil, fmt.Errorf("%w: case %s is closed", ErrInvalidState, c.CaseNo)
	}
	if _, err := s.findLawyer(ctx, lawyerID); err != nil {
		return nil, err
	}

	now := s.now()
	c.LawyerID = &lawyerID
	c.AssignedAt = &now
	c.UpdatedAt = now

	return s.update(ctx, c)
}

func (s *caseService) AdvanceStage(ctx context.Context, caseID string, target model.Stage, note string) (*model.Case, error) {
	c, err := s.findCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Closed() {
		return nil, fmt.Errorf("%w: case %s is closed", ErrInvalidState, c.CaseNo)
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %q", ErrValidation, target)
	}

	next, ok := c.Status.Next()
	if !ok || target != next {
		return nil, fmt.Errorf("%w: %s cannot advance to %s", ErrInvalidTransition, c.Status, target)
	}
	if target == model.StageAssigned && c.LawyerID == nil {
		return nil, fmt.Errorf("%w: a lawyer must be assigned first", ErrPrecondition)
	}
	if target == model.StageClosed {
		// Closing happens through Settle, which freezes the settlement.
		return nil, fmt.Errorf("%w: closing requires a settlement", ErrPrecondition)
	}

	if note == "" {
		note = target.Label()
	}

	now := s.now()
	c.Status = target
	c.StageHistory = append(c.StageHistory, model.StageEntry{Stage: target, Date: now, Note: note})
	c.UpdatedAt = now

	return s.update(ctx, c)
}

func (s *caseService) AddExpense(ctx context.Context, caseID, label string, amount float64) (*model.Case, error) {
	c, err := s.findCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Closed() {
		return nil, fmt.Errorf("%w: case %s is closed", ErrInvalidState, c.CaseNo)
	}
	if label == "" {
		return nil, fmt.Errorf("%w: expense label is required", ErrValidation)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: expense amount cannot be negative", ErrValidation)
	}

	now := s.now()
	c.Expenses = append(c.Expenses, model.Expense{
		ID:     uuid.New().String(),
		Label:  label,
		Amount: amount,
		Date:   now,
	})
	c.UpdatedAt = now

	return s.update(ctx, c)
}

func (s *caseService) RemoveExpense(ctx context.Context, caseID, expenseID string) (*model.Case, error) {
	c, err := s.findCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Closed() {
		return nil, fmt.Errorf("%w: case %s is closed", ErrInvalidState, c.CaseNo)
	}

	kept := c.Expenses[:0]
	for _, e := range c.Expenses {
		if e.ID != expenseID {
			kept = append(kept, e)
		}
	}
	c.Expenses = kept
	c.UpdatedAt = s.now()

	return s.update(ctx, c)
}

func (s *caseService) Settle(ctx context.Context, caseID string, in SettlementInput) (*model.Case, error) {
	c, err := s.findCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Closed() {
		return nil, fmt.Errorf("%w: case %s is already closed", ErrPrecondition, c.CaseNo)
	}
	if in.CompensationAmount <= 0 {
		return nil, fmt.Errorf("%w: compensation amount is required", ErrPrecondition)
	}

	settings, err := s.settings(ctx)
	if err != nil {
		return nil, err
	}

	settlement := CalculateSettlement(in, c.FeePercentage, c.ExpenseTotal(), settings.ProfitSplit/100)

	now := s.now()
	c.Settlement = &settlement
	c.Status = model.StageClosed
	c.StageHistory = append(c.StageHistory, model.StageEntry{
		Stage: model.StageClosed,
		Date:  now,
		Note:  "Dosya kapandi - hesaplama tamamlandi",
	})
	c.UpdatedAt = now

	return s.update(ctx, c)
}

func (s *caseService) Remove(ctx context.Context, caseID string) error {
	if caseID == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.repo.Delete(ctx, caseID)
}

func (s *caseService) findCase(ctx context.Context, id string) (*model.Case, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: case %s", ErrNotFound, id)
		}
		return nil, err
	}
	return c, nil
}

func (s *caseService) findLawyer(ctx context.Context, id string) (*model.Lawyer, error) {
	l, err := s.lawyers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: lawyer %s", ErrNotFound, id)
		}
		return nil, err
	}
	return l, nil
}

func (s *caseService) update(ctx context.Context, c *model.Case) (*model.Case, error) {
	stored, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update case: %w", err)
	}
	return stored, nil
}
