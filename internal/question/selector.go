package question

import (
	"fmt"
	"math/rand"
	"sync"

	"careerprep/internal/domain"
)

// SelectionSize is the fixed number of questions in every selection.
const SelectionSize = 20

// Selector draws fixed-size question sets from the bank. The random
// source is injected so tests can seed it; production wiring passes a
// time-seeded source shared across requests.
type Selector struct {
	bank *Bank

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSelector(bank *Bank, rng *rand.Rand) *Selector {
	return &Selector{bank: bank, rng: rng}
}

// Select returns exactly SelectionSize questions for (role, level, focus).
// Buckets smaller than the selection size are cycled in bucket order and
// truncated; larger buckets yield a random sample without replacement, so
// the order is intentionally not stable across calls.
func (s *Selector) Select(role, level, focus string) ([]domain.Question, error) {
	if role == "" || level == "" || focus == "" {
		return nil, domain.NewInvalidInputError("Role, level, and focus area are required")
	}

	bucket := s.bank.Bucket(role, level, focus)
	if len(bucket) == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No questions available for %s - %s - %s", role, level, focus))
	}

	selected := make([]domain.Question, 0, SelectionSize)
	if len(bucket) < SelectionSize {
		for i := 0; i < SelectionSize; i++ {
			selected = append(selected, bucket[i%len(bucket)])
		}
		return selected, nil
	}

	s.mu.Lock()
	perm := s.rng.Perm(len(bucket))
	s.mu.Unlock()
	for _, idx := range perm[:SelectionSize] {
		selected = append(selected, bucket[idx])
	}
	return selected, nil
}
