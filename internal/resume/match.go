package resume

import (
	"sort"
	"strings"

	"careerprep/internal/analysis"
)

// Match weights: text similarity dominates, explicit skill overlap
// refines it.
const (
	weightSimilarity = 0.7
	weightSkillMatch = 0.3
)

// MatchResult reports how well a resume fits a job description.
type MatchResult struct {
	OverallScore    float64  `json:"overall_score"`
	SimilarityScore float64  `json:"similarity_score"`
	SkillMatchScore float64  `json:"skill_match_score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

// SkillGaps reports the skill overlap between a resume and a job
// description without the scoring.
type SkillGaps struct {
	MissingSkills  []string `json:"missing_skills"`
	ExtraSkills    []string `json:"extra_skills"`
	MatchingSkills []string `json:"matching_skills"`
}

// Match scores the resume against the job description. All component
// scores are on a 0-100 scale.
func Match(resumeText, jobDescription string) *MatchResult {
	similarity := textSimilarity(resumeText, jobDescription)

	resumeSkills := toSet(ExtractSkills(resumeText))
	jobSkills := toSet(ExtractSkills(jobDescription))

	skillMatch := 0.0
	if len(jobSkills) > 0 {
		skillMatch = float64(len(intersect(resumeSkills, jobSkills))) / float64(len(jobSkills))
	}

	return &MatchResult{
		OverallScore:    analysis.Round1((weightSimilarity*similarity + weightSkillMatch*skillMatch) * 100),
		SimilarityScore: analysis.Round1(similarity * 100),
		SkillMatchScore: analysis.Round1(skillMatch * 100),
		MatchingSkills:  sorted(intersect(resumeSkills, jobSkills)),
		MissingSkills:   sorted(subtract(jobSkills, resumeSkills)),
	}
}

// Gaps reports missing, extra and matching skills.
func Gaps(resumeText, jobDescription string) *SkillGaps {
	resumeSkills := toSet(ExtractSkills(resumeText))
	jobSkills := toSet(ExtractSkills(jobDescription))
	return &SkillGaps{
		MissingSkills:  sorted(subtract(jobSkills, resumeSkills)),
		ExtraSkills:    sorted(subtract(resumeSkills, jobSkills)),
		MatchingSkills: sorted(intersect(resumeSkills, jobSkills)),
	}
}

// textSimilarity is the Jaccard similarity of the lowercased token
// sets of both documents.
func textSimilarity(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	common := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			common++
		}
	}
	union := len(tokensA) + len(tokensB) - common
	return float64(common) / float64(union)
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?\"'()")
		if len(token) > 2 {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for item := range a {
		if _, ok := b[item]; ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func subtract(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for item := range a {
		if _, ok := b[item]; !ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
