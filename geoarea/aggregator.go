package geoarea

import (
	"fmt"
	"math"
	"strings"

	"waste-impact-service/models"
)

// UnknownAreaKey buckets reports that carry neither an address nor
// coordinates.
const UnknownAreaKey = "Unknown Location"

const (
	maxSampleAddresses = 3
	sampleAddressLen   = 50

	// Cleanliness score weights. Completion rate dominates, but report
	// density depresses the score even at full completion; the density
	// bonus bottoms out at 50 reports per area. Tuned values, keep as-is.
	completionWeight = 0.6
	densityWeight    = 40.0
	densityCap       = 50.0
)

// AreaKey derives the bucketing key for one report: the first three
// address tokens when an address exists, otherwise a 3-decimal coordinate
// grid key, otherwise the unknown-location sentinel.
func AreaKey(r *models.ReportRecord) string {
	if addr := strings.TrimSpace(r.Address); addr != "" {
		parts := strings.Fields(addr)
		if len(parts) > 3 {
			parts = parts[:3]
		}
		return strings.Join(parts, " ")
	}
	if r.Latitude != nil && r.Longitude != nil {
		return fmt.Sprintf("Grid %.3f,%.3f", *r.Latitude, *r.Longitude)
	}
	return UnknownAreaKey
}

// Aggregate buckets reports by area key and computes per-area totals,
// completion counts and the composite cleanliness score. Output order is
// unspecified; Rank sorts.
func Aggregate(reports []models.ReportRecord) []models.AreaAggregate {
	type bucket struct {
		total, completed int
		samples          []string
	}
	buckets := make(map[string]*bucket)

	for i := range reports {
		r := &reports[i]
		key := AreaKey(r)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total++
		if r.Status == models.StatusCompleted {
			b.completed++
		}
		if len(b.samples) < maxSampleAddresses && strings.TrimSpace(r.Address) != "" {
			b.samples = append(b.samples, truncate(r.Address, sampleAddressLen))
		}
	}

	out := make([]models.AreaAggregate, 0, len(buckets))
	for key, b := range buckets {
		rate := float64(b.completed) / float64(b.total) * 100
		score := CleanlinessScore(rate, b.total)
		out = append(out, models.AreaAggregate{
			AreaKey:          key,
			TotalReports:     b.total,
			CompletedReports: b.completed,
			PendingReports:   b.total - b.completed,
			CompletionRate:   round1(rate),
			CleanlinessScore: score,
			SampleAddresses:  b.samples,
			Category:         CleanlinessLabel(score),
		})
	}
	return out
}

// CleanlinessScore blends completion rate and report density into one
// 0-100 score; higher is cleaner.
func CleanlinessScore(completionRate float64, totalReports int) float64 {
	density := math.Min(float64(totalReports)/densityCap, 1.0)
	return round1(completionRate*completionWeight + (1-density)*densityWeight)
}

// CleanlinessLabel maps a score onto the fixed human-readable buckets.
func CleanlinessLabel(score float64) string {
	switch {
	case score >= 80:
		return "Very Clean"
	case score >= 60:
		return "Clean"
	case score >= 40:
		return "Fairly Clean"
	case score >= 20:
		return "Dirty"
	default:
		return "Very Dirty"
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
