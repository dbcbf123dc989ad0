package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep/internal/domain"
)

func TestAnalyzeKeywords(t *testing.T) {
	t.Run("full coverage with frequencies", func(t *testing.T) {
		answer := "REST APIs use HTTP methods. HTTP is stateless by design."
		result := AnalyzeKeywords(answer, []string{"rest", "api", "http"})

		assert.Equal(t, 100.0, result.CoveragePercentage)
		assert.ElementsMatch(t, []string{"rest", "api", "http"}, result.CoveredKeywords)
		assert.Empty(t, result.MissingKeywords)
		assert.Equal(t, 2, result.KeywordFrequency["http"])
	})

	t.Run("partial coverage", func(t *testing.T) {
		answer := "I would use caching to speed things up."
		result := AnalyzeKeywords(answer, []string{"caching", "cdn", "lazy loading", "minification"})

		assert.Equal(t, 25.0, result.CoveragePercentage)
		assert.Equal(t, []string{"caching"}, result.CoveredKeywords)
		assert.Equal(t, []string{"cdn", "lazy loading", "minification"}, result.MissingKeywords)
	})

	t.Run("no keywords defined scores full", func(t *testing.T) {
		result := AnalyzeKeywords("whatever", nil)
		assert.Equal(t, 100.0, result.CoveragePercentage)
	})
}

func TestAnalyzeLength(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	tests := []struct {
		name            string
		wordCount       int
		expectedMinutes float64
		wantScore       float64
	}{
		{"exact expected length", 150, 1, 100},
		{"half the expected length", 75, 1, 50},
		{"double the expected length scores zero", 300, 1, 0},
		{"far over expectation clamps at zero", 600, 1, 0},
		{"two minute question", 300, 2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeLength(words(tt.wordCount), tt.expectedMinutes)
			assert.Equal(t, tt.wordCount, result.WordCount)
			assert.InDelta(t, tt.wantScore, result.LengthScore, 0.001)
		})
	}

	t.Run("minutes and score carry one decimal", func(t *testing.T) {
		result := AnalyzeLength(words(100), 1)
		assert.Equal(t, 0.7, result.EstimatedMinutes)
		assert.Equal(t, 66.7, result.LengthScore)
	})
}

func TestAnalyzeStructure(t *testing.T) {
	t.Run("signposted answer", func(t *testing.T) {
		answer := "First, I will explain the concept. For example, caching helps a lot. Finally, overall it works well."
		result := AnalyzeStructure(answer)

		assert.Equal(t, 50.0, result.StructureScores["introduction"])
		assert.Equal(t, 0.0, result.StructureScores["main_points"])
		assert.Equal(t, 50.0, result.StructureScores["examples"])
		assert.Equal(t, 50.0, result.StructureScores["conclusion"])
		assert.InDelta(t, 37.5, result.OverallStructureScore, 0.001)
	})

	t.Run("category hits cap at two sentences", func(t *testing.T) {
		answer := "For example one. For example two. For example three."
		result := AnalyzeStructure(answer)
		assert.Equal(t, 100.0, result.StructureScores["examples"])
	})

	t.Run("unstructured answer scores zero", func(t *testing.T) {
		result := AnalyzeStructure("Caching is good. Databases are useful.")
		assert.Equal(t, 0.0, result.OverallStructureScore)
	})
}

func TestOverallScore(t *testing.T) {
	kw := &domain.KeywordAnalysis{CoveragePercentage: 100}
	length := &domain.LengthAnalysis{LengthScore: 100}
	structure := &domain.StructureAnalysis{OverallStructureScore: 37.5}

	got := OverallScore(kw, length, structure, 0.5)
	assert.Equal(t, 77.5, got)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, Round1(66.666))
	assert.Equal(t, 66.6, Round1(66.649))
}

func TestBuildFeedback(t *testing.T) {
	q := &domain.Question{Type: "technical"}

	t.Run("high coverage is a strength", func(t *testing.T) {
		kw := &domain.KeywordAnalysis{CoveragePercentage: 80}
		length := &domain.LengthAnalysis{LengthScore: 90, EstimatedMinutes: 1, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 75}

		fb := BuildFeedback(q, kw, length, structure, "for example this answer")
		require.NotEmpty(t, fb.Strengths)
		assert.Contains(t, fb.Strengths[0], "key technical concepts")
		assert.Empty(t, fb.SpecificSuggestions)
	})

	t.Run("missing keywords listed up to three", func(t *testing.T) {
		kw := &domain.KeywordAnalysis{
			CoveragePercentage: 20,
			MissingKeywords:    []string{"jwt", "oauth", "session", "cookie"},
		}
		length := &domain.LengthAnalysis{LengthScore: 90, EstimatedMinutes: 1, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 75}

		fb := BuildFeedback(q, kw, length, structure, "for example this answer")
		require.Len(t, fb.AreasForImprovement, 1)
		assert.Equal(t, "Consider discussing: jwt, oauth, session", fb.AreasForImprovement[0])
	})

	t.Run("short answer gets elaboration advice", func(t *testing.T) {
		kw := &domain.KeywordAnalysis{CoveragePercentage: 80}
		length := &domain.LengthAnalysis{LengthScore: 30, EstimatedMinutes: 0.3, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 75}

		fb := BuildFeedback(q, kw, length, structure, "for example this answer")
		require.NotEmpty(t, fb.AreasForImprovement)
		assert.Contains(t, fb.AreasForImprovement[0], "elaborate")
		assert.Empty(t, fb.SpecificSuggestions)
	})

	t.Run("long answer gets conciseness advice", func(t *testing.T) {
		kw := &domain.KeywordAnalysis{CoveragePercentage: 80}
		length := &domain.LengthAnalysis{LengthScore: 30, EstimatedMinutes: 2.5, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 75}

		fb := BuildFeedback(q, kw, length, structure, "for example this answer")
		require.NotEmpty(t, fb.AreasForImprovement)
		assert.Contains(t, fb.AreasForImprovement[0], "concise")
		assert.Empty(t, fb.SpecificSuggestions)
	})

	t.Run("weak structure gets structure advice", func(t *testing.T) {
		kw := &domain.KeywordAnalysis{CoveragePercentage: 80}
		length := &domain.LengthAnalysis{LengthScore: 90, EstimatedMinutes: 1, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 10}

		fb := BuildFeedback(q, kw, length, structure, "for example this answer")
		require.NotEmpty(t, fb.SpecificSuggestions)
		assert.Contains(t, fb.SpecificSuggestions[0], "introduction")
	})

	t.Run("technical answer without examples gets example advice", func(t *testing.T) {
		kw := &domain.KeywordAnalysis{CoveragePercentage: 80}
		length := &domain.LengthAnalysis{LengthScore: 90, EstimatedMinutes: 1, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 75}

		fb := BuildFeedback(q, kw, length, structure, "plain answer with no illustrations")
		require.NotEmpty(t, fb.SpecificSuggestions)
		assert.Contains(t, fb.SpecificSuggestions[0], "examples")
	})

	t.Run("behavioral answer without examples gets no example advice", func(t *testing.T) {
		behavioral := &domain.Question{Type: "behavioral"}
		kw := &domain.KeywordAnalysis{CoveragePercentage: 80}
		length := &domain.LengthAnalysis{LengthScore: 90, EstimatedMinutes: 1, ExpectedMinutes: 1}
		structure := &domain.StructureAnalysis{OverallStructureScore: 75}

		fb := BuildFeedback(behavioral, kw, length, structure, "plain answer")
		assert.Empty(t, fb.SpecificSuggestions)
	})
}
