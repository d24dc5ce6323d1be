package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acenteapi/internal/model"
)

func TestCalculateSettlement(t *testing.T) {
	tests := []struct {
		name         string
		in           SettlementInput
		feePct       float64
		expenseTotal float64
		ownerSplit   float64
		want         model.Settlement
	}{
		{
			name: "full breakdown",
			in: SettlementInput{
				CompensationAmount: 100000,
				CounterAttorneyFee: 5000,
				WithholdingTax:     1000,
				InterestAmount:     2000,
				OtherIncomeItems:   []model.IncomeItem{{Label: "x", Amount: 500}},
			},
			feePct:       20,
			expenseTotal: 3000,
			ownerSplit:   0.5,
			want: model.Settlement{
				CompensationAmount:  100000,
				FeeFromCompensation: 20000,
				CounterAttorneyFee:  5000,
				WithholdingTax:      1000,
				InterestAmount:      2000,
				OtherIncomeItems:    []model.IncomeItem{{Label: "x", Amount: 500}},
				TotalRevenue:        28500,
				TotalExpenses:       3000,
				NetProfit:           25500,
				OwnerShare:          12750,
				LawyerShare:         12750,
				ClientPayment:       80000,
			},
		},
		{
			name: "expenses exceed revenue",
			in: SettlementInput{
				CompensationAmount: 10000,
			},
			feePct:       10,
			expenseTotal: 5000,
			ownerSplit:   0.5,
			want: model.Settlement{
				CompensationAmount:  10000,
				FeeFromCompensation: 1000,
				TotalRevenue:        1000,
				TotalExpenses:       5000,
				NetProfit:           -4000,
				OwnerShare:          -2000,
				LawyerShare:         -2000,
				ClientPayment:       9000,
			},
		},
		{
			name: "zero fee percentage",
			in: SettlementInput{
				CompensationAmount: 50000,
				InterestAmount:     1000,
			},
			feePct:       0,
			expenseTotal: 0,
			ownerSplit:   0.5,
			want: model.Settlement{
				CompensationAmount: 50000,
				InterestAmount:     1000,
				TotalRevenue:       1000,
				NetProfit:          1000,
				OwnerShare:         500,
				LawyerShare:        500,
				ClientPayment:      50000,
			},
		},
		{
			name: "uneven split",
			in: SettlementInput{
				CompensationAmount: 100000,
			},
			feePct:       20,
			expenseTotal: 0,
			ownerSplit:   0.7,
			want: model.Settlement{
				CompensationAmount:  100000,
				FeeFromCompensation: 20000,
				TotalRevenue:        20000,
				NetProfit:           20000,
				OwnerShare:          20000 * 0.7,
				LawyerShare:         20000 * 0.3,
				ClientPayment:       80000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSettlement(tt.in, tt.feePct, tt.expenseTotal, tt.ownerSplit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateSettlementDeterministic(t *testing.T) {
	in := SettlementInput{
		CompensationAmount: 123456.78,
		CounterAttorneyFee: 910.11,
		WithholdingTax:     12.13,
		InterestAmount:     1415.16,
		OtherIncomeItems:   []model.IncomeItem{{Label: "a", Amount: 17.18}, {Label: "b", Amount: 19.20}},
	}

	first := CalculateSettlement(in, 17.5, 2345.67, 0.5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateSettlement(in, 17.5, 2345.67, 0.5))
	}
}
