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

// ProductionInput carries the editable production record fields.
type ProductionInput struct {
	BranchID      string    `json:"branch_id"`
	InsuranceType string    `json:"insurance_type"`
	Premium       float64   `json:"premium"`
	PolicyCount   int       `json:"policy_count"`
	Date          time.Time `json:"date"`
}

// TypeSummary aggregates one insurance type for one branch scope:
// current vs previous year, against the step-scaled targets.
type TypeSummary struct {
	Key                    string  `json:"key"`
	Label                  string  `json:"label"`
	CurrentPremium         float64 `json:"current_premium"`
	PrevPremium            float64 `json:"prev_premium"`
	PremiumChangeRate      float64 `json:"premium_change_rate"`
	CurrentPolicyCount     int     `json:"current_policy_count"`
	PrevPolicyCount        int     `json:"prev_policy_count"`
	PolicyChangeRate       float64 `json:"policy_change_rate"`
	TargetPremium          float64 `json:"target_premium"`
	TargetPolicyCount      float64 `json:"target_policy_count"`
	PremiumAchievementRate float64 `json:"premium_achievement_rate"`
	PolicyAchievementRate  float64 `json:"policy_achievement_rate"`
}

// SummaryTotals are the grand totals across all insurance types.
type SummaryTotals struct {
	TotalCurrentPremium     float64 `json:"total_current_premium"`
	TotalPrevPremium        float64 `json:"total_prev_premium"`
	TotalTargetPremium      float64 `json:"total_target_premium"`
	TotalCurrentPolicyCount int     `json:"total_current_policy_count"`
	TotalPrevPolicyCount    int     `json:"total_prev_policy_count"`
	TotalTargetPolicyCount  float64 `json:"total_target_policy_count"`
	TrafikRate              float64 `json:"trafik_rate"`
	KaskoRate               float64 `json:"kasko_rate"`
	OverallAchievementRate  float64 `json:"overall_achievement_rate"`
	OverallChangeRate       float64 `json:"overall_change_rate"`
}

// ProductionSummary is the full per-branch production scoreboard.
type ProductionSummary struct {
	BranchID string        `json:"branch_id"`
	Step     model.Step    `json:"step"`
	Types    []TypeSummary `json:"types"`
	Totals   SummaryTotals `json:"totals"`
}

// AgencyService manages the production-tracking module: branches,
// production records, targets, settings and the summary reduction.
type AgencyService interface {
	CreateBranch(ctx context.Context, name string) (*model.Branch, error)
	ListBranches(ctx context.Context) ([]model.Branch, error)
	UpdateBranch(ctx context.Context, id, name string) (*model.Branch, error)

	// RemoveBranch deletes a branch and its productions. The main branch
	// cannot be removed.
	RemoveBranch(ctx context.Context, id string) error

	CreateProduction(ctx context.Context, in ProductionInput) (*model.Production, error)

	// ListProductions returns productions, optionally filtered to the
	// given period: "daily", "monthly" or "yearly" ("" means all).
	ListProductions(ctx context.Context, period string) ([]model.Production, error)
	UpdateProduction(ctx context.Context, id string, in ProductionInput) (*model.Production, error)
	RemoveProduction(ctx context.Context, id string) error

	Targets(ctx context.Context) (model.Targets, error)
	UpdateTargets(ctx context.Context, targets model.Targets) error

	AgencySettings(ctx context.Context) (*model.AgencySettings, error)
	UpdateAgencySettings(ctx context.Context, s model.AgencySettings) error
	ValueLossSettings(ctx context.Context) (*model.ValueLossSettings, error)
	UpdateValueLossSettings(ctx context.Context, s model.ValueLossSettings) error

	// Summary reduces all productions for a branch ("all" for every branch)
	// into the per-type scoreboard using the given target step level.
	Summary(ctx context.Context, branchID string, stepLevel int) (*ProductionSummary, error)
}

type agencyService struct {
	branches    repository.BranchRepository
	productions repository.ProductionRepository
	kv          repository.KVRepository
	defaults    *config.AppConfig
	now         func() time.Time
}

// NewAgencyService constructs an AgencyService. Config supplies the
// defaults returned until the agency saves its own settings.
func NewAgencyService(branches repository.BranchRepository, productions repository.ProductionRepository, kv repository.KVRepository, cfg *config.AppConfig) AgencyService {
	return &agencyService{
		branches:    branches,
		productions: productions,
		kv:          kv,
		defaults:    cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *agencyService) CreateBranch(ctx context.Context, name string) (*model.Branch, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrValidation)
	}
	b := &model.Branch{ID: uuid.New().String(), Name: name}
	stored, err := s.branches.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	return stored, nil
}

func (s *agencyService) ListBranches(ctx context.Context) ([]model.Branch, error) {
	return s.branches.List(ctx)
}

func (s *agencyService) UpdateBranch(ctx context.Context, id, name string) (*model.Branch, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrValidation)
	}
	b, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = name
	stored, err := s.branches.Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("update branch: %w", err)
	}
	return stored, nil
}

func (s *agencyService) RemoveBranch(ctx context.Context, id string) error {
	b, err := s.findBranch(ctx, id)
	if err != nil {
		return err
	}
	if b.IsMain {
		return fmt.Errorf("%w: the main branch cannot be removed", ErrValidation)
	}
	if err := s.productions.DeleteByBranch(ctx, id); err != nil {
		return fmt.Errorf("delete branch productions: %w", err)
	}
	return s.branches.Delete(ctx, id)
}

func (s *agencyService) CreateProduction(ctx context.Context, in ProductionInput) (*model.Production, error) {
	if err := s.validateProduction(ctx, in); err != nil {
		return nil, err
	}
	p := &model.Production{
		ID:            uuid.New().String(),
		BranchID:      in.BranchID,
		InsuranceType: in.InsuranceType,
		Premium:       in.Premium,
		PolicyCount:   in.PolicyCount,
		Date:          in.Date,
		CreatedAt:     s.now(),
	}
	stored, err := s.productions.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create production: %w", err)
	}
	return stored, nil
}

func (s *agencyService) ListProductions(ctx context.Context, period string) ([]model.Production, error) {
	items, err := s.productions.List(ctx)
	if err != nil {
		return nil, err
	}
	if period == "" {
		return items, nil
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	filtered := make([]model.Production, 0, len(items))
	for _, p := range items {
		switch period {
		case "daily":
			if !p.Date.Before(today) {
				filtered = append(filtered, p)
			}
		case "monthly":
			if p.Date.Month() == now.Month() && p.Date.Year() == now.Year() {
				filtered = append(filtered, p)
			}
		case "yearly":
			if p.Date.Year() == now.Year() {
				filtered = append(filtered, p)
			}
		default:
			return nil, fmt.Errorf("%w: unknown period %q", ErrValidation, period)
		}
	}
	return filtered, nil
}

func (s *agencyService) UpdateProduction(ctx context.Context, id string, in ProductionInput) (*model.Production, error) {
	if err := s.validateProduction(ctx, in); err != nil {
		return nil, err
	}
	p, err := s.findProduction(ctx, id)
	if err != nil {
		return nil, err
	}
	p.BranchID = in.BranchID
	p.InsuranceType = in.InsuranceType
	p.Premium = in.Premium
	p.PolicyCount = in.PolicyCount
	p.Date = in.Date

	stored, err := s.productions.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update production: %w", err)
	}
	return stored, nil
}

func (s *agencyService) RemoveProduction(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	return s.productions.Delete(ctx, id)
}

func (s *agencyService) Targets(ctx context.Context) (model.Targets, error) {
	raw, err := s.kv.Load(ctx, repository.KeyTargets)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return model.DefaultTargets(), nil
	}
	var t model.Targets
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode targets: %w", err)
	}
	return t, nil
}

func (s *agencyService) UpdateTargets(ctx context.Context, targets model.Targets) error {
	for key := range targets {
		if !model.ValidInsuranceType(key) {
			return fmt.Errorf("%w: unknown insurance type %q", ErrValidation, key)
		}
	}
	raw, err := json.Marshal(targets)
	if err != nil {
		return fmt.Errorf("encode targets: %w", err)
	}
	return s.kv.Save(ctx, repository.KeyTargets, raw)
}

func (s *agencyService) AgencySettings(ctx context.Context) (*model.AgencySettings, error) {
	raw, err := s.kv.Load(ctx, repository.KeyAgencySettings)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.AgencySettings{
			CompanyName: s.defaults.Agency.CompanyName,
			CurrentYear: s.defaults.Agency.CurrentYear(),
			CurrentStep: s.defaults.Agency.CurrentStep,
		}, nil
	}
	var out model.AgencySettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode agency settings: %w", err)
	}
	return &out, nil
}

func (s *agencyService) UpdateAgencySettings(ctx context.Context, in model.AgencySettings) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode agency settings: %w", err)
	}
	return s.kv.Save(ctx, repository.KeyAgencySettings, raw)
}

func (s *agencyService) ValueLossSettings(ctx context.Context) (*model.ValueLossSettings, error) {
	raw, err := s.kv.Load(ctx, repository.KeyValueLossSettings)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.ValueLossSettings{
			DefaultFeePercentage: s.defaults.ValueLoss.DefaultFeePercentage,
			ProfitSplit:          s.defaults.ValueLoss.ProfitSplitPercent,
		}, nil
	}
	var out model.ValueLossSettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode value-loss settings: %w", err)
	}
	return &out, nil
}

func (s *agencyService) UpdateValueLossSettings(ctx context.Context, in model.ValueLossSettings) error {
	if in.DefaultFeePercentage < 0 || in.DefaultFeePercentage > 100 {
		return fmt.Errorf("%w: fee percentage must be between 0 and 100", ErrValidation)
	}
	if in.ProfitSplit < 0 || in.ProfitSplit > 100 {
		return fmt.Errorf("%w: profit split must be between 0 and 100", ErrValidation)
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode value-loss settings: %w", err)
	}
	return s.kv.Save(ctx, repository.KeyValueLossSettings, raw)
}

func (s *agencyService) Summary(ctx context.Context, branchID string, stepLevel int) (*ProductionSummary, error) {
	if branchID == "" {
		branchID = "all"
	}
	if branchID != "all" {
		if _, err := s.findBranch(ctx, branchID); err != nil {
			return nil, err
		}
	}

	productions, err := s.productions.List(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.Targets(ctx)
	if err != nil {
		return nil, err
	}

	step := model.StepByLevel(stepLevel)
	currentYear := s.now().Year()
	prevYear := currentYear - 1

	summary := &ProductionSummary{BranchID: branchID, Step: step}
	var totals SummaryTotals

	for _, t := range model.InsuranceTypes {
		var ts TypeSummary
		ts.Key = t.Key
		ts.Label = t.Label

		for _, p := range productions {
			if branchID != "all" && p.BranchID != branchID {
				continue
			}
			if p.InsuranceType != t.Key {
				continue
			}
			switch p.Date.Year() {
			case currentYear:
				ts.CurrentPremium += p.Premium
				ts.CurrentPolicyCount += p.PolicyCount
			case prevYear:
				ts.PrevPremium += p.Premium
				ts.PrevPolicyCount += p.PolicyCount
			}
		}

		if target, ok := targets[t.Key]; ok {
			ts.TargetPremium = target.Premium * step.Multiplier
			ts.TargetPolicyCount = float64(target.PolicyCount) * step.Multiplier
		}

		if ts.PrevPremium > 0 {
			ts.PremiumChangeRate = (ts.CurrentPremium - ts.PrevPremium) / ts.PrevPremium * 100
		}
		if ts.PrevPolicyCount > 0 {
			ts.PolicyChangeRate = float64(ts.CurrentPolicyCount-ts.PrevPolicyCount) / float64(ts.PrevPolicyCount) * 100
		}
		if ts.TargetPremium > 0 {
			ts.PremiumAchievementRate = ts.CurrentPremium / ts.TargetPremium * 100
		}
		if ts.TargetPolicyCount > 0 {
			ts.PolicyAchievementRate = float64(ts.CurrentPolicyCount) / ts.TargetPolicyCount * 100
		}

		totals.TotalCurrentPremium += ts.CurrentPremium
		totals.TotalPrevPremium += ts.PrevPremium
		totals.TotalTargetPremium += ts.TargetPremium
		totals.TotalCurrentPolicyCount += ts.CurrentPolicyCount
		totals.TotalPrevPolicyCount += ts.PrevPolicyCount
		totals.TotalTargetPolicyCount += ts.TargetPolicyCount

		summary.Types = append(summary.Types, ts)
	}

	// Premium shares need the final grand total, so recompute once all
	// types are summed.
	if totals.TotalCurrentPremium > 0 {
		for _, ts := range summary.Types {
			switch ts.Key {
			case "trafik":
				totals.TrafikRate = ts.CurrentPremium / totals.TotalCurrentPremium * 100
			case "kasko":
				totals.KaskoRate = ts.CurrentPremium / totals.TotalCurrentPremium * 100
			}
		}
	}
	if totals.TotalTargetPremium > 0 {
		totals.OverallAchievementRate = totals.TotalCurrentPremium / totals.TotalTargetPremium * 100
	}
	if totals.TotalPrevPremium > 0 {
		totals.OverallChangeRate = (totals.TotalCurrentPremium - totals.TotalPrevPremium) / totals.TotalPrevPremium * 100
	}

	summary.Totals = totals
	return summary, nil
}

func (s *agencyService) validateProduction(ctx context.Context, in ProductionInput) error {
	if in.BranchID == "" {
		return fmt.Errorf("%w: branch id is required", ErrValidation)
	}
	if !model.ValidInsuranceType(in.InsuranceType) {
		return fmt.Errorf("%w: unknown insurance type %q", ErrValidation, in.InsuranceType)
	}
	if in.Premium < 0 {
		return fmt.Errorf("%w: premium cannot be negative", ErrValidation)
	}
	if in.PolicyCount < 0 {
		return fmt.Errorf("%w: policy count cannot be negative", ErrValidation)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: production date is required", ErrValidation)
	}
	if _, err := s.findBranch(ctx, in.BranchID); err != nil {
		return err
	}
	return nil
}

func (s *agencyService) findBranch(ctx context.Context, id string) (*model.Branch, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	b, err := s.branches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: branch %s", ErrNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

func (s *agencyService) findProduction(ctx context.Context, id string) (*model.Production, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	p, err := s.productions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: production %s", ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}
