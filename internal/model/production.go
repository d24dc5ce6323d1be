package model

import "time"

// Branch is an agency office that productions are booked under.
type Branch struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsMain bool   `json:"is_main"`
}

// Production is a premium production record for one insurance type.
type Production struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	InsuranceType string    `json:"insurance_type"`
	Premium       float64   `json:"premium"`
	PolicyCount   int       `json:"policy_count"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

// Target holds the yearly premium and policy-count targets for one
// insurance type, before the step multiplier is applied.
type Target struct {
	Premium     float64 `json:"premium"`
	PolicyCount int     `json:"policy_count"`
}

// Targets maps insurance type keys to their targets.
type Targets map[string]Target

// AgencySettings are the production module's settings blob.
type AgencySettings struct {
	CompanyName string `json:"company_name"`
	CurrentYear int    `json:"current_year"`
	CurrentStep int    `json:"current_step"`
}

// ValueLossSettings are the value-loss module's settings blob.
// ProfitSplit is the owner's percentage of net profit (0-100).
type ValueLossSettings struct {
	DefaultFeePercentage float64 `json:"default_fee_percentage"`
	ProfitSplit          float64 `json:"profit_split"`
}

// InsuranceType is a fixed production category.
type InsuranceType struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// InsuranceTypes is the fixed set of production categories.
var InsuranceTypes = []InsuranceType{
	{Key: "trafik", Label: "Trafik"},
	{Key: "kasko", Label: "Kasko"},
	{Key: "isyeri", Label: "Isyeri"},
	{Key: "konut", Label: "Konut"},
	{Key: "saglik", Label: "Saglik"},
	{Key: "dask", Label: "DASK"},
	{Key: "diger", Label: "Diger"},
}

// ValidInsuranceType reports whether key is a known production category.
func ValidInsuranceType(key string) bool {
	for _, t := range InsuranceTypes {
		if t.Key == key {
			return true
		}
	}
	return false
}

// Step is a target-scaling tier. The multiplier scales the base targets.
type Step struct {
	Level      int     `json:"level"`
	Multiplier float64 `json:"multiplier"`
}

// Steps are the available target tiers.
var Steps = []Step{
	{Level: 1, Multiplier: 1.0},
	{Level: 2, Multiplier: 1.15},
	{Level: 3, Multiplier: 1.30},
	{Level: 4, Multiplier: 1.50},
	{Level: 5, Multiplier: 1.75},
}

// StepByLevel returns the step for the given level, falling back to level 1.
func StepByLevel(level int) Step {
	for _, s := range Steps {
		if s.Level == level {
			return s
		}
	}
	return Steps[0]
}

// DefaultTargets returns the built-in yearly targets used until the agency
// saves its own.
func DefaultTargets() Targets {
	return Targets{
		"trafik": {Premium: 5000000, PolicyCount: 2000},
		"kasko":  {Premium: 8000000, PolicyCount: 800},
		"isyeri": {Premium: 3000000, PolicyCount: 500},
		"konut":  {Premium: 2000000, PolicyCount: 1000},
		"saglik": {Premium: 4000000, PolicyCount: 600},
		"dask":   {Premium: 1500000, PolicyCount: 1500},
		"diger":  {Premium: 2000000, PolicyCount: 400},
	}
}
