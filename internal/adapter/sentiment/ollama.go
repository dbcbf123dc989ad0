package sentiment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"careerprep/internal/domain"
	"careerprep/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaAnalyzer asks a local LLM for a sentiment score. It trades
// latency for a much better read on hedged or sarcastic answers than
// the lexicon gives.
type OllamaAnalyzer struct {
	llmClient *ollama.LLM
}

func NewOllamaAnalyzer(llm *ollama.LLM) *OllamaAnalyzer {
	return &OllamaAnalyzer{llmClient: llm}
}

const sentimentPrompt = `You are a sentiment rater. Rate the sentiment of the following text on a scale from 0.0 (very negative) to 1.0 (very positive), where 0.5 is neutral. Respond with ONLY the number, nothing else.

Text: %s`

// AnalyzeSentiment returns a score in [0, 1].
func (a *OllamaAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (float64, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	response, err := a.llmClient.Call(ctx, fmt.Sprintf(sentimentPrompt, text), llms.WithTemperature(0.1))
	if err != nil {
		l.Error("sentiment LLM call failed", zap.Error(err))
		return 0, domain.NewSentimentServiceError(err)
	}

	score, err := parseScore(response)
	if err != nil {
		l.Error("unparseable sentiment response",
			zap.String("response", response), zap.Error(err))
		return 0, domain.NewSentimentServiceError(err)
	}
	return score, nil
}

// parseScore pulls the first float out of the model's reply and clamps
// it to [0, 1]. Models occasionally wrap the number in prose despite
// the prompt.
func parseScore(response string) (float64, error) {
	for _, token := range strings.Fields(strings.TrimSpace(response)) {
		token = strings.Trim(token, ".,;:!?")
		score, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		return score, nil
	}
	return 0, fmt.Errorf("no numeric score in response: %q", response)
}
