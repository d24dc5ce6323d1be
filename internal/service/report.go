package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"acenteapi/internal/model"
	"acenteapi/internal/repository"
	"acenteapi/internal/storage"
)

// exportExpiry is how long a presigned export download link stays valid.
const exportExpiry = 24 * time.Hour

// ReportStats are the headline numbers of a value-loss snapshot.
type ReportStats struct {
	TotalCases    int     `json:"total_cases"`
	ActiveCases   int     `json:"active_cases"`
	ClosedCases   int     `json:"closed_cases"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
}

// ReportSnapshot is a point-in-time dump of the value-loss module.
type ReportSnapshot struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Stats       ReportStats    `json:"stats"`
	Cases       []model.Case   `json:"cases"`
	Lawyers     []model.Lawyer `json:"lawyers"`
}

// ExportResult points at an uploaded snapshot artifact.
type ExportResult struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ReportService builds value-loss snapshots and exports them to object
// storage as downloadable JSON artifacts.
type ReportService interface {
	Snapshot(ctx context.Context) (*ReportSnapshot, error)
	Export(ctx context.Context) (*ExportResult, error)
}

type reportService struct {
	cases   repository.CaseRepository
	lawyers repository.LawyerRepository
	store   storage.Storage
	now     func() time.Time
}

// NewReportService constructs a ReportService backed by the given
// repositories and object store.
func NewReportService(cases repository.CaseRepository, lawyers repository.LawyerRepository, store storage.Storage) ReportService {
	return &reportService{
		cases:   cases,
		lawyers: lawyers,
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *reportService) Snapshot(ctx context.Context) (*ReportSnapshot, error) {
	cases, err := s.cases.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	lawyers, err := s.lawyers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lawyers: %w", err)
	}

	var stats ReportStats
	stats.TotalCases = len(cases)
	for _, c := range cases {
		if c.Status == model.StageClosed {
			stats.ClosedCases++
		} else {
			stats.ActiveCases++
		}
		stats.TotalExpenses += c.ExpenseTotal()
		if c.Settlement != nil {
			stats.TotalRevenue += c.Settlement.TotalRevenue
		}
	}

	return &ReportSnapshot{
		GeneratedAt: s.now(),
		Stats:       stats,
		Cases:       cases,
		Lawyers:     lawyers,
	}, nil
}

func (s *reportService) Export(ctx context.Context) (*ExportResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := fmt.Sprintf("exports/value-loss-%s.json", snap.GeneratedAt.Format("20060102-150405"))
	info, err := s.store.Put(ctx, key, bytes.NewReader(payload), storage.PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	url, err := s.store.PresignGet(ctx, key, exportExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign snapshot: %w", err)
	}

	return &ExportResult{
		Key:         key,
		URL:         url,
		Size:        info.Size,
		GeneratedAt: snap.GeneratedAt,
	}, nil
}
