package geoarea

import (
	"strings"
	"testing"

	"waste-impact-service/models"
)

func atArea(address, status string) models.ReportRecord {
	return models.ReportRecord{Address: address, Status: status}
}

func TestAreaKeyDerivation(t *testing.T) {
	lat, lon := -6.20041, 106.81672

	cases := []struct {
		name string
		r    models.ReportRecord
		want string
	}{
		{"first three address tokens", atArea("Jl. Merdeka Barat No. 12 Jakarta", models.StatusPending), "Jl. Merdeka Barat"},
		{"short address kept whole", atArea("Kampung Baru", models.StatusPending), "Kampung Baru"},
		{"coordinates when no address", models.ReportRecord{Latitude: &lat, Longitude: &lon}, "Grid -6.200,106.817"},
		{"sentinel when nothing", models.ReportRecord{}, UnknownAreaKey},
		{"whitespace address treated as missing", atArea("   ", models.StatusPending), UnknownAreaKey},
	}
	for _, tc := range cases {
		if got := AreaKey(&tc.r); got != tc.want {
			t.Errorf("%s: AreaKey = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAggregateCompletionInvariant(t *testing.T) {
	reports := []models.ReportRecord{
		atArea("Jl. Mawar I Blok A", models.StatusCompleted),
		atArea("Jl. Mawar I Blok B", models.StatusPending),
		atArea("Jl. Mawar I Blok C", models.StatusInProgress),
		atArea("Jl. Melati II", models.StatusCompleted),
	}
	for _, a := range Aggregate(reports) {
		if a.CompletedReports+a.PendingReports != a.TotalReports {
			t.Errorf("area %q: %d completed + %d pending != %d total",
				a.AreaKey, a.CompletedReports, a.PendingReports, a.TotalReports)
		}
	}
}

func TestAggregateSamplesCappedAndTruncated(t *testing.T) {
	long := "Jl. Pahlawan " + strings.Repeat("x", 80)
	reports := make([]models.ReportRecord, 0, 5)
	for i := 0; i < 5; i++ {
		reports = append(reports, atArea(long, models.StatusPending))
	}
	got := Aggregate(reports)
	if len(got) != 1 {
		t.Fatalf("got %d areas, want 1", len(got))
	}
	if len(got[0].SampleAddresses) != 3 {
		t.Errorf("got %d samples, want 3", len(got[0].SampleAddresses))
	}
	for _, s := range got[0].SampleAddresses {
		if len(s) > 50 {
			t.Errorf("sample address length %d exceeds 50", len(s))
		}
	}
}

func TestCleanlinessScoreBounds(t *testing.T) {
	for _, rate := range []float64{0, 25, 50, 75, 100} {
		for _, total := range []int{1, 10, 49, 50, 500} {
			s := CleanlinessScore(rate, total)
			if s < 0 || s > 100 {
				t.Errorf("score(%v, %d) = %v out of [0, 100]", rate, total, s)
			}
		}
	}
	// At or past the density cap the density bonus is gone entirely.
	if got := CleanlinessScore(100, 50); got != 60.0 {
		t.Errorf("score(100, 50) = %v, want 60.0", got)
	}
	if got := CleanlinessScore(100, 500); got != 60.0 {
		t.Errorf("score(100, 500) = %v, want 60.0", got)
	}
}

func TestCleanlinessScoreMonotonicInCompletion(t *testing.T) {
	for _, total := range []int{1, 10, 50, 100} {
		prev := -1.0
		for rate := 0.0; rate <= 100.0; rate += 5 {
			s := CleanlinessScore(rate, total)
			if s < prev {
				t.Errorf("score decreased at rate %v total %d: %v < %v", rate, total, s, prev)
			}
			prev = s
		}
	}
}

func TestCleanlinessLabels(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Very Clean"},
		{80, "Very Clean"},
		{79.9, "Clean"},
		{60, "Clean"},
		{45, "Fairly Clean"},
		{20, "Dirty"},
		{19.9, "Very Dirty"},
		{0, "Very Dirty"},
	}
	for _, tc := range cases {
		if got := CleanlinessLabel(tc.score); got != tc.want {
			t.Errorf("CleanlinessLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
