package service

import (
	"context"
	"fmt"
	"time"

	"acenteapi/internal/repository"
)

// caseNoPrefix is the fixed case-number namespace ("deger kaybi").
const caseNoPrefix = "DK"

// CaseNumberSequencer produces human-facing case numbers unique within the
// current year, formatted DK-<year>-<4-digit sequence>.
//
// The sequence is derived from the existing case set on every call, so it
// is not safe against concurrent creations. That matches the single-user,
// single-writer deployment this system targets.
type CaseNumberSequencer struct {
	repo repository.CaseRepository
	now  func() time.Time
}

// NewCaseNumberSequencer creates a sequencer backed by the case repository.
func NewCaseNumberSequencer(repo repository.CaseRepository) *CaseNumberSequencer {
	return &CaseNumberSequencer{repo: repo, now: time.Now}
}

// Next returns the next free case number for the current year.
func (s *CaseNumberSequencer) Next(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("%s-%d-", caseNoPrefix, s.now().Year())
	seq, err := s.repo.NextCaseSeq(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("next case sequence: %w", err)
	}
	return fmt.Sprintf("%s%04d", prefix, seq), nil
}
