package trend

import (
	"time"

	"waste-impact-service/models"
)

const dateLayout = "2006-01-02"

// Build produces the daily total/completed/pending series across the
// inclusive [start, end] range. Every calendar day appears exactly once,
// zero-filled when no reports landed on it, so the output is directly
// chartable.
func Build(reports []models.ReportRecord, start, end time.Time) models.TrendSeries {
	s := models.TrendSeries{
		Labels:    []string{},
		Total:     []int{},
		Completed: []int{},
		Pending:   []int{},
	}

	perDay := make(map[string][2]int)
	for i := range reports {
		day := reports[i].ReportedAt.Format(dateLayout)
		counts := perDay[day]
		counts[0]++
		if reports[i].Status == models.StatusCompleted {
			counts[1]++
		}
		perDay[day] = counts
	}

	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		label := d.Format(dateLayout)
		counts := perDay[label]
		s.Labels = append(s.Labels, label)
		s.Total = append(s.Total, counts[0])
		s.Completed = append(s.Completed, counts[1])
		s.Pending = append(s.Pending, counts[0]-counts[1])
	}
	return s
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
