package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageNext(t *testing.T) {
	tests := []struct {
		stage    Stage
		wantNext Stage
		wantOK   bool
	}{
		{StageOpen, StageAssigned, true},
		{StageAssigned, StageApplied, true},
		{StageApplied, StageInProgress, true},
		{StageInProgress, StageConcluded, true},
		{StageConcluded, StageClosed, true},
		{StageClosed, "", false},
		{Stage("bogus"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			next, ok := tt.stage.Next()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestStageValid(t *testing.T) {
	for _, s := range Stages() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Stage("").Valid())
	assert.False(t, Stage("Open").Valid())
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "Dosya Acildi", StageOpen.Label())
	assert.Equal(t, "Dosya Kapandi", StageClosed.Label())
	assert.Equal(t, "bogus", Stage("bogus").Label())
}

func TestStagesOrderImmutable(t *testing.T) {
	first := Stages()
	require.Len(t, first, 6)
	first[0] = StageClosed

	again := Stages()
	assert.Equal(t, StageOpen, again[0])
}

func TestCaseExpenseTotal(t *testing.T) {
	c := Case{Expenses: []Expense{{Amount: 100.5}, {Amount: 49.5}}}
	assert.Equal(t, 150.0, c.ExpenseTotal())

	empty := Case{}
	assert.Zero(t, empty.ExpenseTotal())
}

func TestCaseClosed(t *testing.T) {
	assert.True(t, (&Case{Status: StageClosed}).Closed())
	assert.False(t, (&Case{Status: StageConcluded}).Closed())
}
