package impact

import (
	"fmt"
	"math"
	"sort"

	"waste-impact-service/classification"
	"waste-impact-service/models"
)

const (
	statusSafe      = "safe"
	statusAttention = "attention"

	maxHotspots         = 10
	maxHotspotSamples   = 3
	hotspotSampleMaxLen = 50
	plasticHotspotFloor = 5
	overallHotspotFloor = 10
	lowTierWarningFloor = 50
)

// Analyze produces the environmental impact assessment for one analysis
// run: per-category assessments, triggered warnings, the hazardous-category
// summary, the overall risk level, plus the hotspot and remediation
// sub-analyses where the underlying data allows them.
func Analyze(reports []models.ReportRecord, c *models.Classification) *models.ImpactAnalysis {
	out := &models.ImpactAnalysis{
		Assessments:         []models.ImpactAssessment{},
		Warnings:            []models.ImpactWarning{},
		HazardousCategories: []models.HazardousCategory{},
	}

	for _, item := range c.Detail {
		if item.Count == 0 {
			continue
		}
		a := assess(item)
		out.Assessments = append(out.Assessments, a)

		if a.WarningLevel != "" {
			out.Warnings = append(out.Warnings, models.ImpactWarning{
				Category:         a.Category,
				Severity:         a.WarningLevel,
				Count:            a.Count,
				Percentage:       a.Percentage,
				PotentialImpacts: a.PotentialImpacts,
				Recommendation:   a.Recommendation,
			})
		}
		if IsHazardousTier(a.HazardTier) {
			out.HazardousCategories = append(out.HazardousCategories, models.HazardousCategory{
				Category:   a.Category,
				Count:      a.Count,
				Percentage: a.Percentage,
				HazardTier: a.HazardTier,
				Impacts:    a.PotentialImpacts,
			})
		}
	}

	out.Hotspots = detectHotspots(reports)
	out.Remediation = remediationStats(reports)
	out.OverallRiskLevel = overallRiskLevel(out)
	return out
}

// assess applies the warning trigger rules to one classified category.
// Any occurrence of the most severe tier warns; otherwise the category's
// share has to clear its threshold, and a low-tier category additionally
// needs more than half of all reports.
func assess(item models.ClassificationResult) models.ImpactAssessment {
	p := ProfileFor(item.Category)

	level := ""
	if p.Tier == models.LevelVeryHigh && item.Count > 0 {
		level = models.LevelVeryHigh
	} else if item.Percentage > p.WarningThreshold {
		switch p.Tier {
		case models.LevelVeryHigh:
			level = models.LevelVeryHigh
		case models.LevelHigh:
			level = models.LevelHigh
		case models.LevelMedium:
			level = models.LevelMedium
		case models.LevelLow:
			if item.Percentage > lowTierWarningFloor {
				level = models.LevelLow
			}
		}
	}

	status := statusSafe
	if level != "" {
		status = statusAttention
	}

	return models.ImpactAssessment{
		Category:         item.Category,
		Count:            item.Count,
		Percentage:       item.Percentage,
		HazardTier:       p.Tier,
		PotentialImpacts: p.PotentialImpacts,
		Recommendation:   p.Recommendation,
		WarningThreshold: p.WarningThreshold,
		WarningLevel:     level,
		Status:           status,
	}
}

// overallRiskLevel collapses the warning set into one level. The precedence
// order matters: each check is only reached when the previous one failed.
func overallRiskLevel(a *models.ImpactAnalysis) string {
	veryHigh, high, medium := 0, 0, 0
	for _, w := range a.Warnings {
		switch w.Severity {
		case models.LevelVeryHigh:
			veryHigh++
		case models.LevelHigh:
			high++
		case models.LevelMedium:
			medium++
		}
	}

	switch {
	case veryHigh > 0:
		return models.LevelVeryHigh
	case high > 0:
		return models.LevelHigh
	case medium > 2:
		return models.LevelMedium
	case len(a.HazardousCategories) > 0:
		return models.LevelLow
	default:
		return models.LevelSafe
	}
}

type hotspotCell struct {
	lat, lon float64
	counts   map[string]int
	total    int
	samples  []string
}

// detectHotspots buckets hazardous-category reports into a coordinate grid
// rounded to 3 decimal places (roughly 111m cells) and flags cells with a
// significant concentration. Reports without coordinates are skipped here;
// they still count everywhere else.
func detectHotspots(reports []models.ReportRecord) []models.HazardHotspot {
	cells := make(map[string]*hotspotCell)

	for i := range reports {
		r := &reports[i]
		category := classification.Classify(r)
		if !IsHazardousTier(ProfileFor(category).Tier) {
			continue
		}
		if r.Latitude == nil || r.Longitude == nil {
			continue
		}
		lat := round3(*r.Latitude)
		lon := round3(*r.Longitude)
		key := fmt.Sprintf("%.3f,%.3f", lat, lon)

		cell, ok := cells[key]
		if !ok {
			cell = &hotspotCell{lat: lat, lon: lon, counts: make(map[string]int)}
			cells[key] = cell
		}
		cell.counts[category]++
		cell.total++
		if len(cell.samples) < maxHotspotSamples && r.Address != "" {
			cell.samples = append(cell.samples, truncate(r.Address, hotspotSampleMaxLen))
		}
	}

	var hotspots []models.HazardHotspot
	for key, cell := range cells {
		veryHigh := 0
		for category, n := range cell.counts {
			if ProfileFor(category).Tier == models.LevelVeryHigh {
				veryHigh += n
			}
		}
		if veryHigh == 0 &&
			cell.counts[classification.CategoryPlastic] <= plasticHotspotFloor &&
			cell.total <= overallHotspotFloor {
			continue
		}

		risk := models.LevelMedium
		if veryHigh > 0 {
			risk = models.LevelHigh
		}
		hotspots = append(hotspots, models.HazardHotspot{
			Location:        fmt.Sprintf("%.4f, %.4f", cell.lat, cell.lon),
			GridKey:         key,
			Latitude:        cell.lat,
			Longitude:       cell.lon,
			CountByCategory: cell.counts,
			TotalHazardous:  cell.total,
			SampleAddresses: cell.samples,
			RiskLevel:       risk,
		})
	}

	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].RiskLevel != hotspots[j].RiskLevel {
			return hotspots[i].RiskLevel == models.LevelHigh
		}
		if hotspots[i].TotalHazardous != hotspots[j].TotalHazardous {
			return hotspots[i].TotalHazardous > hotspots[j].TotalHazardous
		}
		return hotspots[i].GridKey < hotspots[j].GridKey
	})
	if len(hotspots) > maxHotspots {
		hotspots = hotspots[:maxHotspots]
	}
	return hotspots
}

// remediationStats averages the resolution time of hazardous-category
// reports. Returns nil when no hazardous report carries enough data.
func remediationStats(reports []models.ReportRecord) *models.RemediationStats {
	total, completed := 0, 0
	var completedDays float64

	for i := range reports {
		r := &reports[i]
		category := classification.Classify(r)
		if !IsHazardousTier(ProfileFor(category).Tier) {
			continue
		}
		total++
		if r.Status == models.StatusCompleted && r.CompletedAt != nil {
			completed++
			completedDays += r.CompletedAt.Sub(r.ReportedAt).Hours() / 24
		}
	}

	if total == 0 {
		return nil
	}

	avg := 0.0
	rate := 0.0
	if completed > 0 {
		avg = round1(completedDays / float64(completed))
	}
	rate = round1(float64(completed) / float64(total) * 100)

	return &models.RemediationStats{
		TotalHazardous: total,
		Completed:      completed,
		Pending:        total - completed,
		AverageDays:    avg,
		HandlingRate:   rate,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
