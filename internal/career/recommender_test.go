package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecommender(t *testing.T) {
	r, err := NewRecommender()
	require.NoError(t, err)
	assert.Contains(t, r.paths, "software_engineer")
	assert.Contains(t, r.paths, "devops_engineer")
	assert.NotEmpty(t, r.paths["data_scientist"].GrowthPath)
}

func TestRecommender_Recommend(t *testing.T) {
	r, err := NewRecommender()
	require.NoError(t, err)

	t.Run("data science profile ranks data scientist first", func(t *testing.T) {
		got := r.Recommend(
			[]string{"Statistics", "Machine Learning", "Python", "Data Analysis", "SQL", "Deep Learning"},
			[]string{"data science"},
			nil,
		)
		require.NotEmpty(t, got)
		assert.Equal(t, "data_scientist", got[0].Career)
		assert.Greater(t, got[0].Score, 0.0)
		assert.NotEmpty(t, got[0].GrowthPath)
		assert.Contains(t, got[0].MatchingSkills, "python")
		assert.Contains(t, got[0].MissingSkills, "data visualization")
	})

	t.Run("scores are sorted descending", func(t *testing.T) {
		got := r.Recommend([]string{"python", "ci/cd", "cloud computing"}, nil, nil)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
		}
	})

	t.Run("interests raise the score", func(t *testing.T) {
		skills := []string{"ci/cd", "cloud computing", "monitoring"}
		without := r.Recommend(skills, nil, nil)
		with := r.Recommend(skills, nil, []string{"kubernetes", "docker"})

		scoreOf := func(recs []Recommendation) float64 {
			for _, rec := range recs {
				if rec.Career == "devops_engineer" {
					return rec.Score
				}
			}
			return 0
		}
		assert.Greater(t, scoreOf(with), scoreOf(without))
	})

	t.Run("empty profile yields no recommendations", func(t *testing.T) {
		got := r.Recommend(nil, nil, nil)
		assert.Empty(t, got)
	})

	t.Run("skill matching is case-insensitive", func(t *testing.T) {
		lower := r.Recommend([]string{"python"}, nil, nil)
		upper := r.Recommend([]string{"PYTHON"}, nil, nil)
		require.Equal(t, len(lower), len(upper))
		if len(lower) > 0 {
			assert.Equal(t, lower[0].Score, upper[0].Score)
		}
	})
}
