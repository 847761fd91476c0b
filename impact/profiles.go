package impact

import (
	"waste-impact-service/classification"
	"waste-impact-service/models"
)

// Profile describes the environmental hazard attached to one waste-type
// category. WarningThreshold is the percentage of total reports above which
// the category's presence escalates to a warning.
type Profile struct {
	Tier             string
	PotentialImpacts []string
	Recommendation   string
	WarningThreshold float64
}

// DefaultProfile covers categories unknown to the table, including
// free-form explicit tags coming straight from intake forms.
var DefaultProfile = Profile{
	Tier:             models.LevelLow,
	PotentialImpacts: []string{"Environmental impact requires further investigation"},
	Recommendation:   "Identify the waste type more precisely",
	WarningThreshold: 50,
}

// Profiles is the static hazard table, keyed by category code. Loaded once,
// never mutated, safe for concurrent reads. The threshold values are tuned
// heuristics carried over from operations; keep them as constants.
var Profiles = map[string]Profile{
	classification.CategoryHazardous: {
		Tier: models.LevelVeryHigh,
		PotentialImpacts: []string{
			"Soil and water contamination",
			"Health hazard for residents",
			"Fire or explosion risk",
			"Toxic to ecosystems",
		},
		Recommendation:   "Specialised handling by an authorised team, waste segregation, public education",
		WarningThreshold: 1,
	},
	classification.CategoryPlastic: {
		Tier: models.LevelMedium,
		PotentialImpacts: []string{
			"Long-term soil pollution",
			"Clogged waterways",
			"Danger to wildlife",
			"Microplastics in the environment",
		},
		Recommendation:   "Recycling programs, plastic usage reduction, waste banks",
		WarningThreshold: 30,
	},
	classification.CategoryOrganic: {
		Tier: models.LevelLow,
		PotentialImpacts: []string{
			"Foul odour",
			"Disease spread",
			"Attracts pests",
			"Air pollution",
		},
		Recommendation:   "Composting, routine collection, integrated waste depots",
		WarningThreshold: 40,
	},
	classification.CategoryMetal: {
		Tier: models.LevelMedium,
		PotentialImpacts: []string{
			"Physical injury",
			"Rust leaching into soil",
			"Dangerous to children",
		},
		Recommendation:   "Recycling, separate collection",
		WarningThreshold: 20,
	},
	classification.CategoryGlass: {
		Tier: models.LevelMedium,
		PotentialImpacts: []string{
			"Physical injury",
			"Danger to wildlife",
			"Slow to degrade",
		},
		Recommendation:   "Separate collection, recycling",
		WarningThreshold: 15,
	},
	classification.CategoryMixed: {
		Tier: models.LevelLow,
		PotentialImpacts: []string{
			"Hard to recycle",
			"Increased landfill volume",
			"Mixed contamination risk",
		},
		Recommendation:   "Waste sorting programs, public education",
		WarningThreshold: 50,
	},
	classification.CategoryPaper: {
		Tier: models.LevelLow,
		PotentialImpacts: []string{
			"Easily flammable",
			"Clogged waterways",
			"Disease-prone when wet",
		},
		Recommendation:   "Recycling, waste banks",
		WarningThreshold: 25,
	},
}

// ProfileFor returns the category's profile, falling back to the default.
func ProfileFor(category string) Profile {
	if p, ok := Profiles[category]; ok {
		return p
	}
	return DefaultProfile
}

// IsHazardousTier reports whether a tier belongs to the hazardous set.
func IsHazardousTier(tier string) bool {
	switch tier {
	case models.LevelVeryHigh, models.LevelHigh, models.LevelMedium:
		return true
	}
	return false
}
