package coverletter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResume = `Jane Smith
Backend engineer working with Go, SQL and Docker.
Led migration of a monolith to microservices, improved latency by 40%.`

const testJob = `Acme is hiring!
Position: Backend Engineer
We need Go and SQL experience at Acme.`

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(7)))

	t.Run("letter carries company, position and skills", func(t *testing.T) {
		result, err := g.Generate(testResume, testJob)
		require.NoError(t, err)

		assert.Equal(t, "Backend Engineer", result.Position)
		assert.NotEqual(t, "the company", result.Company)
		assert.Contains(t, result.HighlightedSkills, "Go")
		assert.Contains(t, result.HighlightedSkills, "SQL")

		assert.Contains(t, result.CoverLetter, result.Company)
		assert.NotContains(t, result.CoverLetter, "{{")
	})

	t.Run("falls back to resume skills without overlap", func(t *testing.T) {
		result, err := g.Generate(testResume, "Seeking a friendly barista for our cafe.")
		require.NoError(t, err)
		assert.Contains(t, result.HighlightedSkills, "Go")
	})

	t.Run("defaults when nothing is extractable", func(t *testing.T) {
		result, err := g.Generate("plain text", "plain description")
		require.NoError(t, err)
		assert.Equal(t, "the company", result.Company)
		assert.Equal(t, "this position", result.Position)
		assert.NotEmpty(t, result.CoverLetter)
	})
}

func TestExtractHelpers(t *testing.T) {
	t.Run("company from hiring phrasing", func(t *testing.T) {
		assert.Equal(t, "Initech", extractCompany("Initech is hiring engineers."))
	})

	t.Run("position from seeking phrasing", func(t *testing.T) {
		got := extractPosition("We are seeking a Data Scientist to join us.")
		assert.Contains(t, got, "Data Scientist")
	})

	t.Run("achievement line preferred over plain lines", func(t *testing.T) {
		got := extractAchievement(testResume)
		assert.Contains(t, got, "Led migration")
	})

	t.Run("achievement default", func(t *testing.T) {
		assert.Equal(t, "delivered significant results", extractAchievement("no verbs here"))
	})
}
