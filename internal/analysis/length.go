package analysis

import (
	"strings"

	"careerprep/internal/domain"
)

// speakingRateWPM is the assumed speaking pace used to convert a word
// count into spoken minutes.
const speakingRateWPM = 150.0

// AnalyzeLength compares the answer's estimated spoken duration against
// the expected duration for the question. The score decays linearly
// with the relative deviation in either direction and is clamped to
// [0, 100], so an answer twice (or half) the expected length scores 0.
// The reported minutes and score carry one decimal.
func AnalyzeLength(answerText string, expectedMinutes float64) *domain.LengthAnalysis {
	words := len(strings.Fields(answerText))
	estimated := float64(words) / speakingRateWPM

	score := 1 - abs(estimated-expectedMinutes)/expectedMinutes
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return &domain.LengthAnalysis{
		WordCount:        words,
		EstimatedMinutes: Round1(estimated),
		ExpectedMinutes:  expectedMinutes,
		LengthScore:      Round1(score * 100),
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
