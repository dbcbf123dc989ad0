package analysis

import (
	"strings"

	"careerprep/internal/domain"
)

// structureIndicators maps each discourse category to the phrases that
// signal it. A sentence counts toward a category when it contains any
// of the category's phrases (case-insensitive).
var structureIndicators = []struct {
	category string
	phrases  []string
}{
	{"introduction", []string{"first", "to begin", "initially", "starting with"}},
	{"main_points", []string{"second", "third", "additionally", "furthermore", "moreover"}},
	{"examples", []string{"for example", "such as", "specifically", "in particular"}},
	{"conclusion", []string{"finally", "in conclusion", "to summarize", "overall"}},
}

// structureHitCap caps the credited hits per category, so two signposted
// sentences already earn the full category score.
const structureHitCap = 2

// AnalyzeStructure measures how well the answer is organized. Each
// category score is the capped number of sentences carrying that
// category's indicator phrases, normalized to [0, 100]; the overall
// score is the mean across categories.
func AnalyzeStructure(answerText string) *domain.StructureAnalysis {
	sentences := splitSentences(answerText)

	scores := make(map[string]float64, len(structureIndicators))
	var total float64
	for _, ind := range structureIndicators {
		hits := 0
		for _, sentence := range sentences {
			if containsAny(sentence, ind.phrases) {
				hits++
			}
		}
		if hits > structureHitCap {
			hits = structureHitCap
		}
		score := float64(hits) / structureHitCap * 100
		scores[ind.category] = score
		total += score
	}

	return &domain.StructureAnalysis{
		StructureScores:       scores,
		OverallStructureScore: Round1(total / float64(len(structureIndicators))),
	}
}

func splitSentences(text string) []string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, strings.ToLower(s))
		}
	}
	return sentences
}

func containsAny(sentence string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(sentence, p) {
			return true
		}
	}
	return false
}
