package question

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep/internal/domain"
)

func newTestSelector(t *testing.T, bucketSize int) *Selector {
	t.Helper()
	return NewSelector(syntheticBank(t, bucketSize), rand.New(rand.NewSource(42)))
}

func TestSelectorSelect(t *testing.T) {
	t.Run("small bucket cycles in order", func(t *testing.T) {
		s := newTestSelector(t, 3)
		got, err := s.Select("backend_developer", "entry", "technical")
		require.NoError(t, err)
		require.Len(t, got, SelectionSize)

		for i, q := range got {
			assert.Equal(t, fmt.Sprintf("Question %d", i%3), q.Question)
		}
	})

	t.Run("large bucket samples without replacement", func(t *testing.T) {
		s := newTestSelector(t, 50)
		got, err := s.Select("backend_developer", "entry", "technical")
		require.NoError(t, err)
		require.Len(t, got, SelectionSize)

		seen := make(map[string]bool, SelectionSize)
		for _, q := range got {
			assert.False(t, seen[q.Question], "duplicate question %q", q.Question)
			seen[q.Question] = true
		}
	})

	t.Run("bucket exactly at selection size", func(t *testing.T) {
		s := newTestSelector(t, SelectionSize)
		got, err := s.Select("backend_developer", "entry", "technical")
		require.NoError(t, err)
		require.Len(t, got, SelectionSize)

		seen := make(map[string]bool, SelectionSize)
		for _, q := range got {
			seen[q.Question] = true
		}
		assert.Len(t, seen, SelectionSize)
	})

	t.Run("missing arguments rejected before lookup", func(t *testing.T) {
		s := newTestSelector(t, 3)
		for _, args := range [][3]string{
			{"", "entry", "technical"},
			{"backend_developer", "", "technical"},
			{"backend_developer", "entry", ""},
		} {
			_, err := s.Select(args[0], args[1], args[2])
			require.Error(t, err)
			var derr *domain.DomainError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, domain.ErrInvalidInput, derr.Code)
		}
	})

	t.Run("empty bucket is not found", func(t *testing.T) {
		s := newTestSelector(t, 3)
		_, err := s.Select("backend_developer", "senior", "technical")
		require.Error(t, err)
		var derr *domain.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.ErrNotFound, derr.Code)
	})
}
