package trend

import (
	"testing"
	"time"

	"waste-impact-service/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func onDay(t time.Time, status string) models.ReportRecord {
	return models.ReportRecord{ReportedAt: t, Status: status}
}

func TestBuildCoversEveryDay(t *testing.T) {
	start := day(2024, time.January, 1)
	end := day(2024, time.January, 3)
	reports := []models.ReportRecord{
		onDay(start, models.StatusCompleted),
		onDay(start, models.StatusPending),
		onDay(end, models.StatusCompleted),
	}

	s := Build(reports, start, end)

	wantLabels := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if len(s.Labels) != 3 {
		t.Fatalf("got %d labels, want 3", len(s.Labels))
	}
	for i, l := range wantLabels {
		if s.Labels[i] != l {
			t.Errorf("Labels[%d] = %q, want %q", i, s.Labels[i], l)
		}
	}

	wantTotal := []int{2, 0, 1}
	wantCompleted := []int{1, 0, 1}
	wantPending := []int{1, 0, 0}
	for i := range wantTotal {
		if s.Total[i] != wantTotal[i] || s.Completed[i] != wantCompleted[i] || s.Pending[i] != wantPending[i] {
			t.Errorf("day %d = total %d / completed %d / pending %d, want %d/%d/%d",
				i, s.Total[i], s.Completed[i], s.Pending[i],
				wantTotal[i], wantCompleted[i], wantPending[i])
		}
	}
}

func TestBuildSingleDayRange(t *testing.T) {
	d := day(2024, time.June, 15)
	s := Build([]models.ReportRecord{onDay(d, models.StatusPending)}, d, d)
	if len(s.Labels) != 1 || s.Labels[0] != "2024-06-15" {
		t.Fatalf("labels = %v, want single 2024-06-15", s.Labels)
	}
	if s.Total[0] != 1 || s.Completed[0] != 0 || s.Pending[0] != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/0/1", s.Total[0], s.Completed[0], s.Pending[0])
	}
}

func TestBuildNoReports(t *testing.T) {
	s := Build(nil, day(2024, time.March, 1), day(2024, time.March, 5))
	if len(s.Labels) != 5 {
		t.Fatalf("got %d labels, want 5", len(s.Labels))
	}
	for i := range s.Labels {
		if s.Total[i] != 0 || s.Completed[i] != 0 || s.Pending[i] != 0 {
			t.Errorf("day %d not zero-filled", i)
		}
	}
}

func TestBuildIgnoresTimeOfDay(t *testing.T) {
	d := day(2024, time.May, 10)
	late := time.Date(2024, time.May, 10, 23, 45, 0, 0, time.UTC)
	s := Build([]models.ReportRecord{onDay(late, models.StatusCompleted)}, d, d)
	if s.Total[0] != 1 {
		t.Errorf("report at 23:45 not counted on its day")
	}
}
