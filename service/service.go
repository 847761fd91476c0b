package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/apex/log"

	"waste-impact-service/classification"
	"waste-impact-service/geoarea"
	"waste-impact-service/impact"
	"waste-impact-service/models"
	"waste-impact-service/recommend"
	"waste-impact-service/trend"
)

// Validation errors. Both are raised before any data is fetched.
var (
	ErrMissingDateBound = errors.New("both start and end dates are required")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

const noDataMessage = "No waste reports in this period"

// ReportStore is the read-only view of the report persistence the
// orchestrator needs. Date ranges are inclusive on both ends.
type ReportStore interface {
	GetReportsByDateRange(ctx context.Context, start, end time.Time) ([]models.ReportRecord, error)
	CountReportsByDateRange(ctx context.Context, start, end time.Time) (int, error)
	CountCompletedByDateRange(ctx context.Context, start, end time.Time) (int, error)
	GetRecentReports(ctx context.Context, start, end time.Time, limit int) ([]models.ReportRecord, error)
}

// Service orchestrates one environmental-impact analysis per request. It is
// stateless apart from its dependencies: every derived entity is local to
// one call, so concurrent requests never share mutable state.
type Service struct {
	store       ReportStore
	sampleLimit int
}

// NewService creates the orchestrator. sampleLimit caps how many records
// the public variant analyzes; zero or negative falls back to 1000.
func NewService(store ReportStore, sampleLimit int) *Service {
	if sampleLimit <= 0 {
		sampleLimit = 1000
	}
	return &Service{store: store, sampleLimit: sampleLimit}
}

// GenerateImpactReport runs the full analysis over every report in the
// inclusive date range and assembles the structured result.
func (s *Service) GenerateImpactReport(ctx context.Context, start, end time.Time) (*models.ImpactReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	reports, err := s.store.GetReportsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}

	total := len(reports)
	completed := 0
	for i := range reports {
		if reports[i].Status == models.StatusCompleted {
			completed++
		}
	}

	log.Infof("Generating impact report for %s..%s over %d reports",
		start.Format("2006-01-02"), end.Format("2006-01-02"), total)

	result := s.assemble(reports, start, end, total, completed)
	return result, nil
}

// GeneratePublicImpactReport is the unauthenticated variant. Analysis runs
// over at most sampleLimit most-recent reports for performance, while the
// summary still carries the true totals, so headline counts and analysis
// percentages stay honest about their different bases.
func (s *Service) GeneratePublicImpactReport(ctx context.Context, start, end time.Time) (*models.ImpactReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	trueTotal, err := s.store.CountReportsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	trueCompleted, err := s.store.CountCompletedByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed reports: %w", err)
	}
	sample, err := s.store.GetRecentReports(ctx, start, end, s.sampleLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report sample: %w", err)
	}

	log.Infof("Generating public impact report: analyzing %d of %d reports", len(sample), trueTotal)

	result := s.assemble(sample, start, end, trueTotal, trueCompleted)
	result.AnalyzedReports = len(sample)
	return result, nil
}

func (s *Service) assemble(reports []models.ReportRecord, start, end time.Time, total, completed int) *models.ImpactReport {
	c := classification.ClassifyAll(reports)
	analysis := impact.Analyze(reports, c)
	rankings := geoarea.Rank(geoarea.Aggregate(reports))
	series := trend.Build(reports, start, end)
	efficacy := handlingEfficacy(total, completed)
	recs := recommend.Generate(c, rankings, analysis, efficacy)

	summary := models.Summary{
		TotalReports:      total,
		CompletedReports:  completed,
		CompletionPercent: efficacy.CompletionPercent,
	}
	if total == 0 {
		summary.Message = noDataMessage
	}

	return &models.ImpactReport{
		Period:          formatPeriod(start, end),
		Summary:         summary,
		Classification:  *c,
		ImpactAnalysis:  *analysis,
		AreaRankings:    rankings,
		Trend:           series,
		Efficacy:        efficacy,
		Recommendations: recs,
		GeneratedAt:     time.Now().UTC(),
	}
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrMissingDateBound
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

func formatPeriod(start, end time.Time) models.Period {
	return models.Period{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Label:     fmt.Sprintf("%s - %s", start.Format("02 Jan 2006"), end.Format("02 Jan 2006")),
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
	}
}

func handlingEfficacy(total, completed int) models.HandlingEfficacy {
	percent := 0.0
	if total > 0 {
		percent = math.Round(float64(completed)/float64(total)*1000) / 10
	}
	return models.HandlingEfficacy{
		TotalReports:      total,
		CompletedReports:  completed,
		PendingReports:    total - completed,
		CompletionPercent: percent,
	}
}
