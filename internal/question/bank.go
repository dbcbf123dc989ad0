package question

import (
	_ "embed"
	"fmt"

	"careerprep/internal/domain"
	"careerprep/internal/util"

	"gopkg.in/yaml.v3"
)

//go:embed data/questions.yaml
var questionData []byte

// focusGroup keeps the questions of one focus area in file order. The
// order matters: reverse lookup by question text scans focus groups in
// this order and returns the first match.
type focusGroup struct {
	Focus     string            `yaml:"focus"`
	Questions []domain.Question `yaml:"questions"`
}

// Bank is the read-only question database, keyed by (role, level, focus).
// It is loaded once at startup and never mutated afterwards. Every record
// is assigned a ULID at load; the question text remains a stable
// caller-visible identifier for records that were issued without one.
type Bank struct {
	roles map[string]map[string][]focusGroup
}

// NewBank loads the packaged question database.
func NewBank() (*Bank, error) {
	return NewBankFromYAML(questionData)
}

// NewBankFromYAML parses and validates a question database.
func NewBankFromYAML(data []byte) (*Bank, error) {
	var roles map[string]map[string][]focusGroup
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse question database: %w", err)
	}

	for role, levels := range roles {
		for level, groups := range levels {
			for gi := range groups {
				group := &groups[gi]
				if group.Focus == "" {
					return nil, fmt.Errorf("question database: %s/%s has a focus group without a name", role, level)
				}
				for qi := range group.Questions {
					q := &group.Questions[qi]
					if q.Question == "" {
						return nil, fmt.Errorf("question database: %s/%s/%s has a record without question text", role, level, group.Focus)
					}
					if err := validateCorrectOption(q); err != nil {
						return nil, fmt.Errorf("question database: %s/%s/%s %q: %w", role, level, group.Focus, q.Question, err)
					}
					q.ID = util.NewULID()
					q.Role = role
					q.Level = level
					q.Focus = group.Focus
				}
			}
		}
	}

	return &Bank{roles: roles}, nil
}

// validateCorrectOption enforces exact value equality between the correct
// option and one of the listed options. No normalization: a case or
// whitespace mismatch in the data file is a load failure.
func validateCorrectOption(q *domain.Question) error {
	for _, opt := range q.Options {
		if opt == q.CorrectOption {
			return nil
		}
	}
	return fmt.Errorf("correct_option is not one of the options")
}

// Bucket returns the ordered records under (role, level, focus). An
// unknown key yields an empty bucket, not an error; callers decide
// whether that is a failure.
func (b *Bank) Bucket(role, level, focus string) []domain.Question {
	for _, group := range b.roles[role][level] {
		if group.Focus == focus {
			return group.Questions
		}
	}
	return nil
}

// FindByID returns the record with the given ID under (role, level).
func (b *Bank) FindByID(id, role, level string) (*domain.Question, bool) {
	for _, group := range b.roles[role][level] {
		for qi := range group.Questions {
			if group.Questions[qi].ID == id {
				return &group.Questions[qi], true
			}
		}
	}
	return nil, false
}

// FindByText scans every focus group under (role, level) and returns the
// first record whose question text exactly equals the input. This is the
// join key between question selection and answer scoring for callers that
// only echo the question text back.
func (b *Bank) FindByText(text, role, level string) (*domain.Question, bool) {
	for _, group := range b.roles[role][level] {
		for qi := range group.Questions {
			if group.Questions[qi].Question == text {
				return &group.Questions[qi], true
			}
		}
	}
	return nil, false
}

// Find resolves a record by ID when one is given, falling back to exact
// text match.
func (b *Bank) Find(id, text, role, level string) (*domain.Question, bool) {
	if id != "" {
		if q, ok := b.FindByID(id, role, level); ok {
			return q, true
		}
	}
	return b.FindByText(text, role, level)
}
