package geoarea

import (
	"sort"

	"waste-impact-service/models"
)

const rankingTopN = 5

// Rank sorts area aggregates by cleanliness score and builds the dirtiest
// (lowest score first) and cleanest (highest score first) top-5 lists.
// Ranks are 1-based and assigned independently within each list. Score ties
// break on the area key so results are reproducible.
func Rank(aggregates []models.AreaAggregate) models.AreaRankings {
	sorted := make([]models.AreaAggregate, len(aggregates))
	copy(sorted, aggregates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CleanlinessScore != sorted[j].CleanlinessScore {
			return sorted[i].CleanlinessScore < sorted[j].CleanlinessScore
		}
		return sorted[i].AreaKey < sorted[j].AreaKey
	})

	n := len(sorted)
	dirtyN := rankingTopN
	if n < dirtyN {
		dirtyN = n
	}

	dirtiest := make([]models.AreaAggregate, dirtyN)
	copy(dirtiest, sorted[:dirtyN])
	for i := range dirtiest {
		dirtiest[i].Rank = i + 1
	}

	cleanest := make([]models.AreaAggregate, dirtyN)
	for i := 0; i < dirtyN; i++ {
		cleanest[i] = sorted[n-1-i]
		cleanest[i].Rank = i + 1
	}

	return models.AreaRankings{
		Dirtiest:   dirtiest,
		Cleanest:   cleanest,
		TotalAreas: n,
	}
}
