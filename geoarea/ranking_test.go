package geoarea

import (
	"fmt"
	"testing"

	"waste-impact-service/models"
)

func area(key string, score float64) models.AreaAggregate {
	return models.AreaAggregate{AreaKey: key, CleanlinessScore: score, TotalReports: 1}
}

func TestRankOrdersAndRanks(t *testing.T) {
	aggregates := []models.AreaAggregate{
		area("Kel. Sukamaju", 72.5),
		area("Kel. Cempaka", 15.0),
		area("Kel. Harapan", 44.0),
		area("Kel. Melati", 88.0),
		area("Kel. Anggrek", 30.5),
		area("Kel. Kenanga", 60.0),
		area("Kel. Dahlia", 5.5),
	}
	r := Rank(aggregates)

	if r.TotalAreas != 7 {
		t.Errorf("TotalAreas = %d, want 7", r.TotalAreas)
	}
	if len(r.Dirtiest) != 5 || len(r.Cleanest) != 5 {
		t.Fatalf("got %d dirtiest and %d cleanest, want 5/5", len(r.Dirtiest), len(r.Cleanest))
	}

	for i := 1; i < len(r.Dirtiest); i++ {
		if r.Dirtiest[i].CleanlinessScore < r.Dirtiest[i-1].CleanlinessScore {
			t.Errorf("dirtiest not ascending at %d", i)
		}
	}
	for i := 1; i < len(r.Cleanest); i++ {
		if r.Cleanest[i].CleanlinessScore > r.Cleanest[i-1].CleanlinessScore {
			t.Errorf("cleanest not descending at %d", i)
		}
	}

	if r.Dirtiest[0].AreaKey != "Kel. Dahlia" {
		t.Errorf("dirtiest[0] = %q, want Kel. Dahlia", r.Dirtiest[0].AreaKey)
	}
	if r.Cleanest[0].AreaKey != "Kel. Melati" {
		t.Errorf("cleanest[0] = %q, want Kel. Melati", r.Cleanest[0].AreaKey)
	}

	for i, a := range r.Dirtiest {
		if a.Rank != i+1 {
			t.Errorf("dirtiest[%d].Rank = %d, want %d", i, a.Rank, i+1)
		}
	}
	for i, a := range r.Cleanest {
		if a.Rank != i+1 {
			t.Errorf("cleanest[%d].Rank = %d, want %d", i, a.Rank, i+1)
		}
	}
}

func TestRankFewerAreasThanTopN(t *testing.T) {
	aggregates := []models.AreaAggregate{area("A", 10), area("B", 90)}
	r := Rank(aggregates)
	if len(r.Dirtiest) != 2 || len(r.Cleanest) != 2 || r.TotalAreas != 2 {
		t.Errorf("got %d/%d/%d, want 2/2/2", len(r.Dirtiest), len(r.Cleanest), r.TotalAreas)
	}
	if r.Dirtiest[0].AreaKey != "A" || r.Cleanest[0].AreaKey != "B" {
		t.Errorf("unexpected ordering: dirtiest[0]=%q cleanest[0]=%q",
			r.Dirtiest[0].AreaKey, r.Cleanest[0].AreaKey)
	}
}

func TestRankEmpty(t *testing.T) {
	r := Rank(nil)
	if len(r.Dirtiest) != 0 || len(r.Cleanest) != 0 || r.TotalAreas != 0 {
		t.Errorf("empty input gave %+v", r)
	}
}

func TestRankDeterministicOnTies(t *testing.T) {
	aggregates := []models.AreaAggregate{}
	for i := 0; i < 6; i++ {
		aggregates = append(aggregates, area(fmt.Sprintf("Area %d", i), 50.0))
	}
	first := Rank(aggregates)
	for i := 0; i < 5; i++ {
		again := Rank(aggregates)
		for j := range first.Dirtiest {
			if first.Dirtiest[j].AreaKey != again.Dirtiest[j].AreaKey {
				t.Fatalf("tie ordering not stable at %d", j)
			}
		}
	}
}
