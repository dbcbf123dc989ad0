package analysis

import (
	"fmt"
	"strings"

	"careerprep/internal/domain"
)

const (
	keywordStrengthThreshold = 70.0
	lengthAdviceThreshold    = 60.0
	structureAdviceThreshold = 60.0
)

// BuildFeedback derives qualitative feedback from the component
// analyses. Empty slices are kept non-nil so the JSON payload always
// carries arrays.
func BuildFeedback(q *domain.Question, kw *domain.KeywordAnalysis, length *domain.LengthAnalysis, structure *domain.StructureAnalysis, answerText string) *domain.Feedback {
	fb := &domain.Feedback{
		Strengths:           []string{},
		AreasForImprovement: []string{},
		SpecificSuggestions: []string{},
	}

	if kw.CoveragePercentage > keywordStrengthThreshold {
		fb.Strengths = append(fb.Strengths, "Good coverage of key technical concepts")
	} else if len(kw.MissingKeywords) > 0 {
		missing := kw.MissingKeywords
		if len(missing) > 3 {
			missing = missing[:3]
		}
		fb.AreasForImprovement = append(fb.AreasForImprovement,
			fmt.Sprintf("Consider discussing: %s", strings.Join(missing, ", ")))
	}

	if length.LengthScore < lengthAdviceThreshold {
		if length.EstimatedMinutes < length.ExpectedMinutes {
			fb.AreasForImprovement = append(fb.AreasForImprovement,
				"Try to elaborate more on your points with additional details")
		} else {
			fb.AreasForImprovement = append(fb.AreasForImprovement,
				"Try to be more concise and focus on the most important points")
		}
	}

	if structure.OverallStructureScore < structureAdviceThreshold {
		fb.SpecificSuggestions = append(fb.SpecificSuggestions,
			"Structure your answer with a clear introduction, main points, and conclusion")
	}

	if q.Type == "technical" && !mentionsExamples(answerText) {
		fb.SpecificSuggestions = append(fb.SpecificSuggestions,
			"Include specific examples to support your points")
	}

	return fb
}

func mentionsExamples(answerText string) bool {
	lowered := strings.ToLower(answerText)
	return strings.Contains(lowered, "example") || strings.Contains(lowered, "for instance")
}
