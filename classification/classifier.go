package classification

import (
	"math"
	"sort"
	"strings"

	"waste-impact-service/models"
)

// Classify maps one report to a waste-type category code.
//
// An explicit waste-type tag always wins: it is normalized and returned
// without any keyword matching. Otherwise the description is matched
// against the taxonomy in order, first matching category wins. Reports
// with neither a tag nor a matching description come back unclassified.
func Classify(r *models.ReportRecord) string {
	if r.WasteType != nil {
		if tag := strings.ToLower(strings.TrimSpace(*r.WasteType)); tag != "" {
			return tag
		}
	}

	if r.Description == nil {
		return CategoryUnclassified
	}
	desc := strings.ToLower(*r.Description)
	if strings.TrimSpace(desc) == "" {
		return CategoryUnclassified
	}

	for _, cat := range Taxonomy {
		for _, kw := range cat.Keywords {
			if strings.Contains(desc, kw) {
				return cat.Code
			}
		}
	}
	return CategoryUnclassified
}

// ClassifyAll classifies a batch of reports and returns per-category counts
// and percentages. Percentages are rounded to one decimal and sum to 100
// within rounding tolerance. Known categories are listed in taxonomy order;
// tag-only categories and the unclassified bucket follow alphabetically.
func ClassifyAll(reports []models.ReportRecord) *models.Classification {
	counts := make(map[string]int)
	structured := 0
	for i := range reports {
		if reports[i].WasteType != nil && strings.TrimSpace(*reports[i].WasteType) != "" {
			structured++
		}
		counts[Classify(&reports[i])]++
	}

	total := len(reports)
	denom := total
	if denom == 0 {
		denom = 1
	}

	detail := make([]models.ClassificationResult, 0, len(counts))
	seen := make(map[string]bool, len(counts))
	appendCategory := func(code string) {
		n, ok := counts[code]
		if !ok || seen[code] {
			return
		}
		seen[code] = true
		detail = append(detail, models.ClassificationResult{
			Category:   code,
			Count:      n,
			Percentage: round1(float64(n) / float64(denom) * 100),
		})
	}

	for _, cat := range Taxonomy {
		appendCategory(cat.Code)
	}
	rest := make([]string, 0, len(counts))
	for code := range counts {
		if !seen[code] {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)
	for _, code := range rest {
		appendCategory(code)
	}

	structuredPercent := 0.0
	if total > 0 {
		structuredPercent = round1(float64(structured) / float64(total) * 100)
	}

	return &models.Classification{
		Detail:            detail,
		TotalReports:      total,
		StructuredCount:   structured,
		StructuredPercent: structuredPercent,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
