package recommend

import (
	"testing"

	"waste-impact-service/models"
)

func classificationWith(detail []models.ClassificationResult, total int, structuredPercent float64) *models.Classification {
	return &models.Classification{
		Detail:            detail,
		TotalReports:      total,
		StructuredPercent: structuredPercent,
	}
}

func TestGenerateNeverExceedsCap(t *testing.T) {
	// Fire every rule at once, with several warnings.
	analysis := &models.ImpactAnalysis{
		Warnings: []models.ImpactWarning{
			{Category: "b3", Severity: models.LevelVeryHigh, Count: 3, Percentage: 30},
			{Category: "logam", Severity: models.LevelHigh, Count: 4, Percentage: 40},
			{Category: "kaca", Severity: models.LevelHigh, Count: 2, Percentage: 20},
		},
		Hotspots: []models.HazardHotspot{
			{Location: "-6.2000, 106.8170", RiskLevel: models.LevelHigh},
		},
	}
	rankings := models.AreaRankings{
		Dirtiest: []models.AreaAggregate{{AreaKey: "Kel. Cempaka", CleanlinessScore: 8.5}},
	}
	c := classificationWith([]models.ClassificationResult{
		{Category: "plastik", Count: 5, Percentage: 25},
	}, 20, 10)
	efficacy := models.HandlingEfficacy{TotalReports: 20, CompletionPercent: 30}

	recs := Generate(c, rankings, analysis, efficacy)
	if len(recs) > MaxRecommendations {
		t.Fatalf("got %d recommendations, cap is %d", len(recs), MaxRecommendations)
	}
	if len(recs) != MaxRecommendations {
		t.Errorf("expected a full list when every rule fires, got %d", len(recs))
	}

	// Earlier-priority items survive the cap.
	if recs[0].Priority != models.LevelVeryHigh || recs[0].Category != "safety" {
		t.Errorf("recs[0] = %+v, want the very_high safety item first", recs[0])
	}
}

func TestGenerateWarningRules(t *testing.T) {
	analysis := &models.ImpactAnalysis{
		Warnings: []models.ImpactWarning{
			{Category: "b3", Severity: models.LevelVeryHigh, Count: 1, Percentage: 10},
			{Category: "plastik", Severity: models.LevelMedium, Count: 4, Percentage: 40},
		},
	}
	recs := Generate(classificationWith(nil, 10, 100), models.AreaRankings{}, analysis, models.HandlingEfficacy{TotalReports: 10, CompletionPercent: 80})

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1 (medium warnings produce none)", len(recs))
	}
	if recs[0].Text != "IMMEDIATE ACTION: B3 waste" {
		t.Errorf("text = %q", recs[0].Text)
	}
	if recs[0].Source != "impact_analysis" {
		t.Errorf("source = %q, want impact_analysis", recs[0].Source)
	}
}

func TestGenerateOperationalRule(t *testing.T) {
	recs := Generate(classificationWith(nil, 10, 100), models.AreaRankings{}, &models.ImpactAnalysis{},
		models.HandlingEfficacy{TotalReports: 10, CompletionPercent: 49.9})
	if len(recs) != 1 || recs[0].Category != "operations" {
		t.Fatalf("got %+v, want a single operations item", recs)
	}

	recs = Generate(classificationWith(nil, 10, 100), models.AreaRankings{}, &models.ImpactAnalysis{},
		models.HandlingEfficacy{TotalReports: 10, CompletionPercent: 50})
	if len(recs) != 0 {
		t.Errorf("50%% completion should not trigger the operational rule, got %+v", recs)
	}
}

func TestGeneratePlasticAndDataQualityRules(t *testing.T) {
	c := classificationWith([]models.ClassificationResult{
		{Category: "plastik", Count: 5, Percentage: 25},
		{Category: "organik", Count: 15, Percentage: 75},
	}, 20, 40)
	recs := Generate(c, models.AreaRankings{}, &models.ImpactAnalysis{},
		models.HandlingEfficacy{TotalReports: 20, CompletionPercent: 90})

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want plastic + data quality", len(recs))
	}
	if recs[0].Category != "education" || recs[0].Priority != models.LevelMedium {
		t.Errorf("recs[0] = %+v, want medium education item", recs[0])
	}
	if recs[1].Category != "data_quality" || recs[1].Priority != models.LevelLow {
		t.Errorf("recs[1] = %+v, want low data_quality item", recs[1])
	}
}

func TestGenerateEmptyInputs(t *testing.T) {
	recs := Generate(classificationWith(nil, 0, 0), models.AreaRankings{}, &models.ImpactAnalysis{}, models.HandlingEfficacy{})
	if len(recs) != 0 {
		t.Errorf("empty inputs produced %+v", recs)
	}
}
