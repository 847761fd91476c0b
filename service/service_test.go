package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-impact-service/classification"
	"waste-impact-service/models"
)

type fakeStore struct {
	reports    []models.ReportRecord
	fetchCalls int
	failWith   error
}

func (f *fakeStore) GetReportsByDateRange(_ context.Context, start, end time.Time) ([]models.ReportRecord, error) {
	f.fetchCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.inRange(start, end), nil
}

func (f *fakeStore) CountReportsByDateRange(_ context.Context, start, end time.Time) (int, error) {
	f.fetchCalls++
	if f.failWith != nil {
		return 0, f.failWith
	}
	return len(f.inRange(start, end)), nil
}

func (f *fakeStore) CountCompletedByDateRange(_ context.Context, start, end time.Time) (int, error) {
	f.fetchCalls++
	if f.failWith != nil {
		return 0, f.failWith
	}
	n := 0
	for _, r := range f.inRange(start, end) {
		if r.Status == models.StatusCompleted {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetRecentReports(_ context.Context, start, end time.Time, limit int) ([]models.ReportRecord, error) {
	f.fetchCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	in := f.inRange(start, end)
	if len(in) > limit {
		in = in[len(in)-limit:]
	}
	return in, nil
}

func (f *fakeStore) inRange(start, end time.Time) []models.ReportRecord {
	var out []models.ReportRecord
	for _, r := range f.reports {
		if !r.ReportedAt.Before(start) && r.ReportedAt.Before(end.AddDate(0, 0, 1)) {
			out = append(out, r)
		}
	}
	return out
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 10, 0, 0, 0, time.UTC)
}

func makeReports() []models.ReportRecord {
	var reports []models.ReportRecord
	for i := 0; i < 3; i++ {
		reports = append(reports, models.ReportRecord{
			ID:          int64(i + 1),
			Description: strPtr("tumpukan limbah b3 di pinggir jalan"),
			Address:     "Jl. Sudirman No. 1, Jakarta Pusat",
			ReportedAt:  day(1),
			Status:      models.StatusPending,
		})
	}
	done := day(3)
	for i := 0; i < 7; i++ {
		reports = append(reports, models.ReportRecord{
			ID:          int64(i + 4),
			Description: strPtr("sisa sayur dan kulit buah"),
			Address:     "Jl. Thamrin No. 5, Jakarta Pusat",
			ReportedAt:  day(2),
			CompletedAt: &done,
			Status:      models.StatusCompleted,
		})
	}
	return reports
}

func strPtr(s string) *string { return &s }

func TestGenerateImpactReport(t *testing.T) {
	store := &fakeStore{reports: makeReports()}
	svc := NewService(store, 0)

	report, err := svc.GenerateImpactReport(context.Background(), day(1), day(5))
	require.NoError(t, err)

	assert.Equal(t, "2025-03-01", report.Period.StartDate)
	assert.Equal(t, "2025-03-05", report.Period.EndDate)
	assert.Equal(t, "01 Mar 2025 - 05 Mar 2025", report.Period.Label)
	assert.Equal(t, 5, report.Period.TotalDays)

	assert.Equal(t, 10, report.Summary.TotalReports)
	assert.Equal(t, 7, report.Summary.CompletedReports)
	assert.Equal(t, 70.0, report.Summary.CompletionPercent)
	assert.Empty(t, report.Summary.Message)

	require.NotEmpty(t, report.Classification.Detail)
	assert.Equal(t, classification.CategoryHazardous, report.Classification.Detail[0].Category)
	assert.Equal(t, 3, report.Classification.Detail[0].Count)
	assert.Equal(t, 30.0, report.Classification.Detail[0].Percentage)

	// A single hazardous-tier occurrence is enough to escalate.
	assert.Equal(t, models.LevelVeryHigh, report.ImpactAnalysis.OverallRiskLevel)
	require.NotEmpty(t, report.ImpactAnalysis.Warnings)
	assert.Equal(t, classification.CategoryHazardous, report.ImpactAnalysis.Warnings[0].Category)

	assert.Equal(t, 2, report.AreaRankings.TotalAreas)
	assert.Len(t, report.Trend.Labels, 5)
	assert.Equal(t, 3, report.Trend.Total[0])
	assert.Equal(t, 7, report.Trend.Total[1])
	assert.Equal(t, 0, report.Trend.Total[4])

	assert.NotEmpty(t, report.Recommendations)
	assert.Zero(t, report.AnalyzedReports)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestGenerateImpactReportEmptyPeriod(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, 0)

	report, err := svc.GenerateImpactReport(context.Background(), day(1), day(3))
	require.NoError(t, err)

	assert.Equal(t, 0, report.Summary.TotalReports)
	assert.Equal(t, "No waste reports in this period", report.Summary.Message)
	assert.Equal(t, models.LevelSafe, report.ImpactAnalysis.OverallRiskLevel)
	assert.Equal(t, 0.0, report.Efficacy.CompletionPercent)
	assert.Len(t, report.Trend.Labels, 3)
	assert.Equal(t, []int{0, 0, 0}, report.Trend.Total)
}

func TestGenerateImpactReportValidation(t *testing.T) {
	store := &fakeStore{reports: makeReports()}
	svc := NewService(store, 0)

	_, err := svc.GenerateImpactReport(context.Background(), day(5), day(1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.GenerateImpactReport(context.Background(), time.Time{}, day(1))
	assert.ErrorIs(t, err, ErrMissingDateBound)

	_, err = svc.GeneratePublicImpactReport(context.Background(), day(5), day(1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Validation failures must not touch the store.
	assert.Zero(t, store.fetchCalls)
}

func TestGenerateImpactReportStoreError(t *testing.T) {
	store := &fakeStore{failWith: errors.New("connection refused")}
	svc := NewService(store, 0)

	_, err := svc.GenerateImpactReport(context.Background(), day(1), day(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch reports")
}

func TestGeneratePublicImpactReportSampling(t *testing.T) {
	store := &fakeStore{reports: makeReports()}
	svc := NewService(store, 4)

	report, err := svc.GeneratePublicImpactReport(context.Background(), day(1), day(5))
	require.NoError(t, err)

	// Totals stay true while the analysis base is capped at the sample.
	assert.Equal(t, 10, report.Summary.TotalReports)
	assert.Equal(t, 7, report.Summary.CompletedReports)
	assert.Equal(t, 4, report.AnalyzedReports)
	assert.Equal(t, 4, report.Classification.TotalReports)

	require.NotEmpty(t, report.Classification.Detail)
	assert.Equal(t, classification.CategoryOrganic, report.Classification.Detail[0].Category)
	assert.Equal(t, 100.0, report.Classification.Detail[0].Percentage)
}

func TestGeneratePublicImpactReportNoSamplingNeeded(t *testing.T) {
	store := &fakeStore{reports: makeReports()}
	svc := NewService(store, 0) // default limit 1000

	report, err := svc.GeneratePublicImpactReport(context.Background(), day(1), day(5))
	require.NoError(t, err)

	assert.Equal(t, 10, report.AnalyzedReports)
	assert.Equal(t, 10, report.Classification.TotalReports)
	assert.Equal(t, models.LevelVeryHigh, report.ImpactAnalysis.OverallRiskLevel)
}
