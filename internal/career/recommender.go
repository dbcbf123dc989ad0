// Package career recommends career paths from a profile of skills,
// education and interests.
package career

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"careerprep/internal/analysis"
)

//go:embed data/paths.yaml
var pathData []byte

// Path is one career path with its requirements.
type Path struct {
	Description     string   `yaml:"description" json:"description"`
	RequiredSkills  []string `yaml:"required_skills" json:"required_skills"`
	PreferredSkills []string `yaml:"preferred_skills" json:"preferred_skills"`
	Education       []string `yaml:"education" json:"education"`
	GrowthPath      []string `yaml:"growth_path" json:"growth_path"`
}

// Component weights of the career score. Required skills count full,
// preferred skills and education less, stated interests least. The
// total is normalized by the weight sum, so the score lands in [0,1]
// before scaling.
const (
	weightRequired  = 1.0
	weightPreferred = 0.7
	weightEducation = 0.8
	weightInterests = 0.5
)

// Recommendation is one scored career path.
type Recommendation struct {
	Career         string   `json:"career"`
	Score          float64  `json:"score"`
	Description    string   `json:"description"`
	GrowthPath     []string `json:"growth_path"`
	MissingSkills  []string `json:"missing_skills"`
	MatchingSkills []string `json:"matching_skills"`
}

// Recommender scores career paths against a user profile.
type Recommender struct {
	paths map[string]Path
}

// NewRecommender loads the packaged career path catalog.
func NewRecommender() (*Recommender, error) {
	var paths map[string]Path
	if err := yaml.Unmarshal(pathData, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse career path catalog: %w", err)
	}
	return &Recommender{paths: paths}, nil
}

// Recommend returns all career paths with a positive score, best first.
// Interests may be empty; their weight still divides the total, so
// omitting them lowers every score uniformly rather than skewing the
// ranking.
func (r *Recommender) Recommend(skills, education, interests []string) []Recommendation {
	recommendations := make([]Recommendation, 0, len(r.paths))
	for name, path := range r.paths {
		score := r.score(skills, education, interests, path)
		if score <= 0 {
			continue
		}

		allSkills := append(append([]string{}, path.RequiredSkills...), path.PreferredSkills...)
		recommendations = append(recommendations, Recommendation{
			Career:         name,
			Score:          analysis.Round1(score * 100),
			Description:    path.Description,
			GrowthPath:     path.GrowthPath,
			MissingSkills:  missing(skills, allSkills),
			MatchingSkills: matching(skills, allSkills),
		})
	}

	sort.Slice(recommendations, func(i, j int) bool {
		if recommendations[i].Score != recommendations[j].Score {
			return recommendations[i].Score > recommendations[j].Score
		}
		return recommendations[i].Career < recommendations[j].Career
	})
	return recommendations
}

func (r *Recommender) score(skills, education, interests []string, path Path) float64 {
	total := overlapRatio(skills, path.RequiredSkills)*weightRequired +
		overlapRatio(skills, path.PreferredSkills)*weightPreferred +
		overlapRatio(education, path.Education)*weightEducation

	if len(interests) > 0 {
		allSkills := append(append([]string{}, path.RequiredSkills...), path.PreferredSkills...)
		total += overlapRatio(interests, allSkills) * weightInterests
	}

	return total / (weightRequired + weightPreferred + weightEducation + weightInterests)
}

// overlapRatio is the share of required items the user covers,
// compared on lowercased values.
func overlapRatio(user, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	userSet := lowerSet(user)
	requiredSet := lowerSet(required)

	match := 0
	for item := range requiredSet {
		if _, ok := userSet[item]; ok {
			match++
		}
	}
	return float64(match) / float64(len(requiredSet))
}

func missing(userSkills, required []string) []string {
	userSet := lowerSet(userSkills)
	out := []string{}
	for item := range lowerSet(required) {
		if _, ok := userSet[item]; !ok {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

func matching(userSkills, required []string) []string {
	requiredSet := lowerSet(required)
	out := []string{}
	for item := range lowerSet(userSkills) {
		if _, ok := requiredSet[item]; ok {
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
