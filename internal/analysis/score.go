package analysis

import (
	"math"

	"careerprep/internal/domain"
)

// Component weights of the overall answer score. Keyword coverage
// dominates; length, structure and sentiment share the remainder.
const (
	weightKeywords  = 0.4
	weightLength    = 0.2
	weightStructure = 0.2
	weightSentiment = 0.2
)

// OverallScore combines the component analyses into a single score on
// a 0-100 scale, rounded to one decimal place. The sentiment input is
// expected on a [0, 1] scale.
func OverallScore(kw *domain.KeywordAnalysis, length *domain.LengthAnalysis, structure *domain.StructureAnalysis, sentiment float64) float64 {
	score := weightKeywords*kw.CoveragePercentage +
		weightLength*length.LengthScore +
		weightStructure*structure.OverallStructureScore +
		weightSentiment*(sentiment*100)
	return Round1(score)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
