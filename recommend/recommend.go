package recommend

import (
	"fmt"
	"strings"

	"waste-impact-service/classification"
	"waste-impact-service/models"
)

// MaxRecommendations caps the assembled list. Assembly order doubles as
// priority order, so the cap never drops an earlier-priority item in favor
// of a later one.
const MaxRecommendations = 6

const (
	lowEfficacyPercent  = 50.0
	plasticSharePercent = 20.0
	structuredDataFloor = 50.0

	sourceImpactAnalysis = "impact_analysis"
	sourceEfficacy       = "handling_efficacy"
	sourceAreaRankings   = "area_rankings"
	sourceClassification = "classification"
)

// Generate assembles the prioritized recommendation list from the other
// components' outputs. Rules fire in fixed order: hazard warnings first,
// then the worst hotspot, operational efficacy, the dirtiest area, plastic
// share, and finally data quality.
func Generate(
	c *models.Classification,
	rankings models.AreaRankings,
	analysis *models.ImpactAnalysis,
	efficacy models.HandlingEfficacy,
) []models.Recommendation {
	recs := []models.Recommendation{}

	// 1. One recommendation per severe impact warning.
	for _, w := range analysis.Warnings {
		switch w.Severity {
		case models.LevelVeryHigh:
			recs = append(recs, models.Recommendation{
				Priority:  models.LevelVeryHigh,
				Category:  "safety",
				Text:      fmt.Sprintf("IMMEDIATE ACTION: %s waste", strings.ToUpper(w.Category)),
				Rationale: fmt.Sprintf("%d hazardous waste reports (%.1f%% of total)", w.Count, w.Percentage),
				Source:    sourceImpactAnalysis,
			})
		case models.LevelHigh:
			recs = append(recs, models.Recommendation{
				Priority:  models.LevelHigh,
				Category:  "environment",
				Text:      fmt.Sprintf("Dedicated program for %s waste", w.Category),
				Rationale: fmt.Sprintf("%s waste reached %.1f%% of all reports", w.Category, w.Percentage),
				Source:    sourceImpactAnalysis,
			})
		}
	}

	// 2. The single highest-risk hazardous hotspot, if any.
	for _, h := range analysis.Hotspots {
		if h.RiskLevel != models.LevelHigh {
			continue
		}
		recs = append(recs, models.Recommendation{
			Priority:  models.LevelHigh,
			Category:  "location",
			Text:      fmt.Sprintf("Focus cleanup at %s", h.Location),
			Rationale: "Highest concentration of hazardous waste reports",
			Source:    sourceImpactAnalysis,
		})
		break
	}

	// 3. Low overall completion rate.
	if efficacy.TotalReports > 0 && efficacy.CompletionPercent < lowEfficacyPercent {
		recs = append(recs, models.Recommendation{
			Priority:  models.LevelHigh,
			Category:  "operations",
			Text:      "Optimise field teams and improve response time",
			Rationale: fmt.Sprintf("Completion rate is only %.1f%%", efficacy.CompletionPercent),
			Source:    sourceEfficacy,
		})
	}

	// 4. The dirtiest area.
	if len(rankings.Dirtiest) > 0 {
		worst := rankings.Dirtiest[0]
		recs = append(recs, models.Recommendation{
			Priority:  models.LevelMedium,
			Category:  "area",
			Text:      fmt.Sprintf("Special attention for %s", worst.AreaKey),
			Rationale: fmt.Sprintf("Lowest cleanliness score (%.1f)", worst.CleanlinessScore),
			Source:    sourceAreaRankings,
		})
	}

	// 5. Plastic share above the awareness threshold.
	for _, d := range c.Detail {
		if d.Category == classification.CategoryPlastic && d.Percentage > plasticSharePercent {
			recs = append(recs, models.Recommendation{
				Priority:  models.LevelMedium,
				Category:  "education",
				Text:      "Campaign to reduce plastic waste",
				Rationale: fmt.Sprintf("Plastic waste reached %.1f%% of all reports", d.Percentage),
				Source:    sourceClassification,
			})
			break
		}
	}

	// 6. Too little structured waste-type data.
	if c.TotalReports > 0 && c.StructuredPercent < structuredDataFloor {
		recs = append(recs, models.Recommendation{
			Priority:  models.LevelLow,
			Category:  "data_quality",
			Text:      "Improve structured waste-type data capture",
			Rationale: fmt.Sprintf("Only %.1f%% of reports carry an explicit waste type", c.StructuredPercent),
			Source:    sourceClassification,
		})
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
