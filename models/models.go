package models

import "time"

// Report status values as stored by the intake service.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Hazard tiers, warning severities, recommendation priorities and the
// overall risk level all share one ordinal scale.
const (
	LevelVeryHigh = "very_high"
	LevelHigh     = "high"
	LevelMedium   = "medium"
	LevelLow      = "low"
	LevelSafe     = "safe"
)

// ReportRecord is a single waste report as read from the store. The
// analytics never mutate it. Optional columns map to nil pointers, never
// to zero values, so downstream code can tell "absent" from "empty".
type ReportRecord struct {
	ID           int64      `json:"id"`
	ReporterName string     `json:"reporter_name"`
	WasteType    *string    `json:"waste_type,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Address      string     `json:"address"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	ReportedAt   time.Time  `json:"reported_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Status       string     `json:"status"`
	UserID       *int64     `json:"user_id,omitempty"`
}

// ClassificationResult is the per-category outcome of one classification run.
type ClassificationResult struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Classification is the full classifier output for one batch of reports.
// StructuredPercent is the share of reports that carried an explicit
// waste-type tag rather than relying on keyword detection.
type Classification struct {
	Detail            []ClassificationResult `json:"detail"`
	TotalReports      int                    `json:"total_reports"`
	StructuredCount   int                    `json:"structured_count"`
	StructuredPercent float64                `json:"structured_percent"`
}

// ImpactAssessment is the per-category environmental impact detail.
type ImpactAssessment struct {
	Category         string   `json:"category"`
	Count            int      `json:"count"`
	Percentage       float64  `json:"percentage"`
	HazardTier       string   `json:"hazard_tier"`
	PotentialImpacts []string `json:"potential_impacts"`
	Recommendation   string   `json:"recommendation"`
	WarningThreshold float64  `json:"warning_threshold"`
	WarningLevel     string   `json:"warning_level,omitempty"`
	Status           string   `json:"status"`
}

// ImpactWarning fires when a category trips its threshold rule.
type ImpactWarning struct {
	Category         string   `json:"category"`
	Severity         string   `json:"severity"`
	Count            int      `json:"count"`
	Percentage       float64  `json:"percentage"`
	PotentialImpacts []string `json:"potential_impacts"`
	Recommendation   string   `json:"recommendation"`
}

// HazardousCategory summarises one category from the hazardous tier set.
type HazardousCategory struct {
	Category   string   `json:"category"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
	HazardTier string   `json:"hazard_tier"`
	Impacts    []string `json:"impacts"`
}

// HazardHotspot is a coordinate-grid cell with a significant concentration
// of hazardous-category reports. Grid cells are 3-decimal-degree squares,
// roughly 111m on a side.
type HazardHotspot struct {
	Location        string         `json:"location"`
	GridKey         string         `json:"grid_key"`
	Latitude        float64        `json:"latitude"`
	Longitude       float64        `json:"longitude"`
	CountByCategory map[string]int `json:"count_by_category"`
	TotalHazardous  int            `json:"total_hazardous"`
	SampleAddresses []string       `json:"sample_addresses"`
	RiskLevel       string         `json:"risk_level"`
}

// RemediationStats describes how fast hazardous-category reports get
// resolved, when completion timestamps are available.
type RemediationStats struct {
	TotalHazardous int     `json:"total_hazardous"`
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	AverageDays    float64 `json:"average_days"`
	HandlingRate   float64 `json:"handling_rate"`
}

// ImpactAnalysis is the full output of the impact analyzer.
type ImpactAnalysis struct {
	Assessments         []ImpactAssessment  `json:"assessments"`
	Warnings            []ImpactWarning     `json:"warnings"`
	HazardousCategories []HazardousCategory `json:"hazardous_categories"`
	Hotspots            []HazardHotspot     `json:"hotspots,omitempty"`
	Remediation         *RemediationStats   `json:"remediation,omitempty"`
	OverallRiskLevel    string              `json:"overall_risk_level"`
}

// AreaAggregate holds the per-area totals and the composite cleanliness
// score. Completed plus pending always equals the total.
type AreaAggregate struct {
	AreaKey          string   `json:"area_key"`
	TotalReports     int      `json:"total_reports"`
	CompletedReports int      `json:"completed_reports"`
	PendingReports   int      `json:"pending_reports"`
	CompletionRate   float64  `json:"completion_rate"`
	CleanlinessScore float64  `json:"cleanliness_score"`
	SampleAddresses  []string `json:"sample_addresses"`
	Rank             int      `json:"rank,omitempty"`
	Category         string   `json:"category,omitempty"`
}

// AreaRankings is the output of the ranking engine. Ranks are 1-based and
// assigned independently within each list.
type AreaRankings struct {
	Dirtiest   []AreaAggregate `json:"dirtiest"`
	Cleanest   []AreaAggregate `json:"cleanest"`
	TotalAreas int             `json:"total_areas_analyzed"`
}

// Recommendation is one prioritized action item. Source names the analysis
// component that produced it, for traceability.
type Recommendation struct {
	Priority  string `json:"priority"`
	Category  string `json:"category"`
	Text      string `json:"text"`
	Rationale string `json:"rationale"`
	Source    string `json:"source"`
}

// TrendSeries is a daily count series across an inclusive date range,
// shaped for direct chart rendering. All four slices share one length.
type TrendSeries struct {
	Labels    []string `json:"labels"`
	Total     []int    `json:"total"`
	Completed []int    `json:"completed"`
	Pending   []int    `json:"pending"`
}

// Period describes the requested date range.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Label     string `json:"label"`
	TotalDays int    `json:"total_days"`
}

// Summary holds the headline counts for the period. Message is only set
// when the period contains no reports at all.
type Summary struct {
	TotalReports      int     `json:"total_reports"`
	CompletedReports  int     `json:"completed_reports"`
	CompletionPercent float64 `json:"completion_percent"`
	Message           string  `json:"message,omitempty"`
}

// HandlingEfficacy mirrors the summary counts as their own result section;
// it feeds the operational recommendation rule.
type HandlingEfficacy struct {
	TotalReports      int     `json:"total_reports"`
	CompletedReports  int     `json:"completed_reports"`
	PendingReports    int     `json:"pending_reports"`
	CompletionPercent float64 `json:"completion_percent"`
}

// ImpactReport is the assembled result of one orchestration run.
// AnalyzedReports is only set by the public variant, where analysis runs
// over a most-recent sample while the summary reports true totals.
type ImpactReport struct {
	Period          Period           `json:"period"`
	Summary         Summary          `json:"summary"`
	Classification  Classification   `json:"classification"`
	ImpactAnalysis  ImpactAnalysis   `json:"impact_analysis"`
	AreaRankings    AreaRankings     `json:"area_rankings"`
	Trend           TrendSeries      `json:"trend"`
	Efficacy        HandlingEfficacy `json:"handling_efficacy"`
	Recommendations []Recommendation `json:"recommendations"`
	AnalyzedReports int              `json:"analyzed_reports,omitempty"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// MapPoint is one aggregated cell for map rendering.
type MapPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Count     int64   `json:"count"`
}
