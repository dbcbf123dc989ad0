// Package sentiment provides the domain.SentimentAnalyzer adapters: a
// self-contained lexicon scorer and an Ollama-backed scorer.
package sentiment

import (
	"context"
	"strings"
)

// positiveWords and negativeWords form a small opinion lexicon tuned
// for interview answers. Matching is on whole lowercased tokens.
var (
	positiveWords = map[string]struct{}{
		"good": {}, "great": {}, "excellent": {}, "effective": {}, "efficient": {},
		"improve": {}, "improved": {}, "success": {}, "successful": {}, "benefit": {},
		"benefits": {}, "clear": {}, "clearly": {}, "robust": {}, "reliable": {},
		"scalable": {}, "maintainable": {}, "confident": {}, "positive": {},
		"best": {}, "optimal": {}, "helpful": {}, "strong": {}, "well": {},
	}
	negativeWords = map[string]struct{}{
		"bad": {}, "poor": {}, "fail": {}, "failed": {}, "failure": {},
		"problem": {}, "problems": {}, "difficult": {}, "hard": {}, "slow": {},
		"broken": {}, "wrong": {}, "error": {}, "errors": {}, "worst": {},
		"never": {}, "cannot": {}, "unreliable": {}, "confusing": {}, "negative": {},
	}
)

// LexiconAnalyzer scores sentiment from word counts alone. It needs no
// external service, so it is the default analyzer.
type LexiconAnalyzer struct{}

func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{}
}

// AnalyzeSentiment returns a score in [0, 1]. A text with no opinion
// words is neutral (0.5); the score shifts toward 1 or 0 with the
// balance of positive and negative tokens.
func (a *LexiconAnalyzer) AnalyzeSentiment(_ context.Context, text string) (float64, error) {
	var positives, negatives int
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?\"'()")
		if _, ok := positiveWords[token]; ok {
			positives++
		} else if _, ok := negativeWords[token]; ok {
			negatives++
		}
	}

	total := positives + negatives
	if total == 0 {
		return 0.5, nil
	}
	return float64(positives) / float64(total), nil
}
