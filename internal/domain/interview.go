package domain

// Question represents a single interview question record. Records are
// immutable after bank load; every consumer borrows references into the
// bank-owned data.
type Question struct {
	ID             string   `json:"id" yaml:"-"`
	Role           string   `json:"-" yaml:"-"`
	Level          string   `json:"-" yaml:"-"`
	Focus          string   `json:"-" yaml:"-"`
	Question       string   `json:"question" yaml:"question"`
	Type           string   `json:"type" yaml:"type"`
	Context        string   `json:"context" yaml:"context"`
	Keywords       []string `json:"keywords" yaml:"keywords"`
	Options        []string `json:"options" yaml:"options"`
	CorrectOption  string   `json:"correct_option" yaml:"correct_option"`
	Explanation    string   `json:"explanation" yaml:"explanation"`
	ExpectedLength float64  `json:"expected_length,omitempty" yaml:"expected_length"`
}

// ExpectedMinutes returns the target answer duration, defaulting to one
// minute when the record does not set one.
func (q *Question) ExpectedMinutes() float64 {
	if q.ExpectedLength <= 0 {
		return 1
	}
	return q.ExpectedLength
}

// KeywordAnalysis is the keyword-coverage breakdown of one answer.
type KeywordAnalysis struct {
	CoveredKeywords    []string       `json:"covered_keywords"`
	MissingKeywords    []string       `json:"missing_keywords"`
	CoveragePercentage float64        `json:"coverage_percentage"`
	KeywordFrequency   map[string]int `json:"keyword_frequency"`
}

// LengthAnalysis is the length-fit breakdown of one answer.
type LengthAnalysis struct {
	WordCount        int     `json:"word_count"`
	EstimatedMinutes float64 `json:"estimated_minutes"`
	ExpectedMinutes  float64 `json:"expected_minutes"`
	LengthScore      float64 `json:"length_score"`
}

// StructureAnalysis is the structural breakdown of one answer.
type StructureAnalysis struct {
	StructureScores       map[string]float64 `json:"structure_scores"`
	OverallStructureScore float64            `json:"overall_structure_score"`
}

// Feedback carries the rule-generated feedback lists.
type Feedback struct {
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	SpecificSuggestions []string `json:"specific_suggestions"`
}

// AnswerAnalysis is the graded result of one submitted answer. Quiz-mode
// answers fill the selection fields; free-text answers fill the transcript
// and per-signal breakdowns. Score is always in [0,100].
type AnswerAnalysis struct {
	QuestionID     string `json:"question_id,omitempty"`
	Question       string `json:"question,omitempty"`
	Transcript     string `json:"transcript,omitempty"`
	SelectedOption string `json:"selected_option,omitempty"`
	CorrectOption  string `json:"correct_option,omitempty"`
	IsCorrect      *bool  `json:"is_correct,omitempty"`
	Explanation    string `json:"explanation,omitempty"`

	KeywordAnalysis   *KeywordAnalysis   `json:"keyword_analysis,omitempty"`
	LengthAnalysis    *LengthAnalysis    `json:"length_analysis,omitempty"`
	StructureAnalysis *StructureAnalysis `json:"structure_analysis,omitempty"`
	SentimentScore    *float64           `json:"sentiment_analysis,omitempty"`

	Feedback Feedback `json:"feedback"`
	Score    float64  `json:"score"`
}

// HistoryTimestampLayout is the format of HistoryEntry.Timestamp, both
// in persisted documents and in API responses. The compact layout sorts
// lexicographically in chronological order.
const HistoryTimestampLayout = "20060102_150405"

// HistoryEntry is one persisted graded interaction. Entries are never
// mutated or deleted by this service.
type HistoryEntry struct {
	Timestamp string         `json:"timestamp"`
	Role      string         `json:"role"`
	Level     string         `json:"level"`
	Question  string         `json:"question"`
	Analysis  AnswerAnalysis `json:"analysis"`
}
