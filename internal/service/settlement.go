package service

import "acenteapi/internal/model"

// SettlementInput carries the caller-supplied figures for closing a case.
// The fee percentage and the expense ledger total come from the case itself.
type SettlementInput struct {
	CompensationAmount float64            `json:"compensation_amount"`
	CounterAttorneyFee float64            `json:"counter_attorney_fee"`
	WithholdingTax     float64            `json:"withholding_tax"`
	InterestAmount     float64            `json:"interest_amount"`
	OtherIncomeItems   []model.IncomeItem `json:"other_income_items,omitempty"`
}

// CalculateSettlement computes the full settlement record for a case.
// Pure and deterministic: the output is fully determined by the arguments.
//
// ownerSplit is the owner's fraction of net profit (0-1); the assigned
// lawyer receives the remainder. A negative net profit propagates unclamped
// into both shares — a loss-making case is a valid outcome.
func CalculateSettlement(in SettlementInput, feePercentage, expenseTotal, ownerSplit float64) model.Settlement {
	fee := in.CompensationAmount * feePercentage / 100

	var otherTotal float64
	for _, item := range in.OtherIncomeItems {
		otherTotal += item.Amount
	}

	totalRevenue := fee + in.CounterAttorneyFee + in.WithholdingTax + in.InterestAmount + otherTotal
	netProfit := totalRevenue - expenseTotal

	return model.Settlement{
		CompensationAmount:  in.CompensationAmount,
		FeeFromCompensation: fee,
		CounterAttorneyFee:  in.CounterAttorneyFee,
		WithholdingTax:      in.WithholdingTax,
		InterestAmount:      in.InterestAmount,
		OtherIncomeItems:    in.OtherIncomeItems,
		TotalRevenue:        totalRevenue,
		TotalExpenses:       expenseTotal,
		NetProfit:           netProfit,
		OwnerShare:          netProfit * ownerSplit,
		LawyerShare:         netProfit * (1 - ownerSplit),
		ClientPayment:       in.CompensationAmount - fee,
	}
}
