package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Smith
Senior backend engineer with eight years building distributed systems.
Reach me at jane.smith@example.com or 415-555-0134.

EXPERIENCE
Led migration of a monolith to Go microservices on Kubernetes.
Improved API latency by 40% through caching and SQL tuning.

EDUCATION
BSc Computer Science, State University

SKILLS
Go, Python, SQL, Docker, Kubernetes, AWS, Git
`

func TestExtractData(t *testing.T) {
	data := ExtractData(sampleResume)

	assert.Equal(t, "Jane Smith", data.Name)
	assert.Equal(t, "jane.smith@example.com", data.Email)
	assert.Equal(t, "415-555-0134", data.Phone)
	assert.Contains(t, data.Summary, "Jane Smith")
	assert.Contains(t, data.Summary, "distributed systems")

	assert.Contains(t, data.Skills, "Go")
	assert.Contains(t, data.Skills, "Kubernetes")
	assert.Contains(t, data.Skills, "SQL")

	require.NotEmpty(t, data.Experience)
	assert.Contains(t, data.Experience[0], "microservices")
	require.NotEmpty(t, data.Education)
	assert.Contains(t, data.Education[0], "Computer Science")
}

func TestExtractData_SparseText(t *testing.T) {
	data := ExtractData("just some unstructured notes without contact details")
	assert.Empty(t, data.Name)
	assert.Empty(t, data.Email)
	assert.Empty(t, data.Experience)
	assert.Empty(t, data.Education)
}

func TestExtractText_RejectsNonPDF(t *testing.T) {
	_, err := ExtractText([]byte("this is not a pdf"))
	require.Error(t, err)
}

func TestMatch(t *testing.T) {
	job := `We are seeking a Backend Engineer at Acme.
Requirements: Go, SQL, Docker, Kubernetes, Terraform experience.`

	t.Run("scores and skill lists", func(t *testing.T) {
		result := Match(sampleResume, job)

		assert.Greater(t, result.OverallScore, 0.0)
		assert.Greater(t, result.SkillMatchScore, 0.0)
		assert.Contains(t, result.MatchingSkills, "Go")
		assert.Contains(t, result.MatchingSkills, "Kubernetes")
		assert.Equal(t, []string{"Terraform"}, result.MissingSkills)
	})

	t.Run("job without known skills scores zero skill match", func(t *testing.T) {
		result := Match(sampleResume, "We need someone friendly and punctual.")
		assert.Equal(t, 0.0, result.SkillMatchScore)
	})

	t.Run("empty documents", func(t *testing.T) {
		result := Match("", "")
		assert.Equal(t, 0.0, result.OverallScore)
	})
}

func TestGaps(t *testing.T) {
	job := "Looking for Go, SQL and Terraform skills."
	gaps := Gaps(sampleResume, job)

	assert.Equal(t, []string{"Terraform"}, gaps.MissingSkills)
	assert.Contains(t, gaps.ExtraSkills, "Docker")
	assert.Contains(t, gaps.MatchingSkills, "Go")
	assert.Contains(t, gaps.MatchingSkills, "SQL")
}

func TestEnhancementSuggestions(t *testing.T) {
	t.Run("sparse resume triggers all rules", func(t *testing.T) {
		got := EnhancementSuggestions(&Data{Summary: "Short summary."})
		titles := make([]string, 0, len(got))
		for _, e := range got {
			titles = append(titles, e.Title)
		}
		assert.ElementsMatch(t, []string{
			"Professional Summary", "Skills Section", "Experience Section", "Education Section",
		}, titles)
	})

	t.Run("complete resume triggers none", func(t *testing.T) {
		longSummary := ""
		for i := 0; i < 60; i++ {
			longSummary += "word "
		}
		got := EnhancementSuggestions(&Data{
			Summary:    longSummary,
			Skills:     []string{"Go", "Python", "SQL", "Docker", "AWS"},
			Experience: []string{"Led a team"},
			Education:  []string{"BSc"},
		})
		assert.Empty(t, got)
	})
}
