// Package analysis scores free-text interview answers against the
// expectations attached to a question: keyword coverage, answer length,
// discourse structure and an overall weighted score.
package analysis

import (
	"strings"

	"careerprep/internal/domain"
)

// AnalyzeKeywords checks which of the question's keywords appear in the
// answer. Matching is a case-insensitive substring test, so "REST APIs"
// in the answer covers the keyword "rest". All keywords carry equal
// weight in the coverage percentage.
func AnalyzeKeywords(answerText string, keywords []string) *domain.KeywordAnalysis {
	lowered := strings.ToLower(answerText)

	result := &domain.KeywordAnalysis{
		CoveredKeywords:  []string{},
		MissingKeywords:  []string{},
		KeywordFrequency: make(map[string]int),
	}
	if len(keywords) == 0 {
		result.CoveragePercentage = 100
		return result
	}

	for _, kw := range keywords {
		needle := strings.ToLower(kw)
		if n := strings.Count(lowered, needle); n > 0 {
			result.CoveredKeywords = append(result.CoveredKeywords, kw)
			result.KeywordFrequency[kw] = n
		} else {
			result.MissingKeywords = append(result.MissingKeywords, kw)
		}
	}

	result.CoveragePercentage = float64(len(result.CoveredKeywords)) / float64(len(keywords)) * 100
	return result
}
