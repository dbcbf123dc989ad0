// Package dto defines the request and response payloads of the HTTP API.
package dto

import "careerprep/internal/domain"

// StartInterviewRequest selects the question set for a session.
type StartInterviewRequest struct {
	Role      string `json:"role"`
	Level     string `json:"level"`
	FocusArea string `json:"focus_area"`
}

// InterviewQuestion is the client-facing image of a question record,
// including the correct option and its explanation so the client can
// grade and explain locally.
type InterviewQuestion struct {
	ID             string   `json:"id"`
	Question       string   `json:"question"`
	Type           string   `json:"type"`
	Context        string   `json:"context,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Options        []string `json:"options,omitempty"`
	CorrectOption  string   `json:"correct_option,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	ExpectedLength float64  `json:"expected_length,omitempty"`
}

// NewInterviewQuestion builds the view of a question record.
func NewInterviewQuestion(q domain.Question) InterviewQuestion {
	return InterviewQuestion{
		ID:             q.ID,
		Question:       q.Question,
		Type:           q.Type,
		Context:        q.Context,
		Keywords:       q.Keywords,
		Options:        q.Options,
		CorrectOption:  q.CorrectOption,
		Explanation:    q.Explanation,
		ExpectedLength: q.ExpectedLength,
	}
}

// StartInterviewResponse carries the selected question set.
type StartInterviewResponse struct {
	Role      string              `json:"role"`
	Level     string              `json:"level"`
	FocusArea string              `json:"focus_area"`
	Questions []InterviewQuestion `json:"questions"`
}

// QuizAnswerRequest submits a selected option for grading. QuestionID
// is preferred; Question (the exact text) is accepted as a fallback for
// clients that only echo the prompt back.
type QuizAnswerRequest struct {
	Role           string `json:"role"`
	Level          string `json:"level"`
	QuestionID     string `json:"question_id"`
	Question       string `json:"question"`
	SelectedOption string `json:"selected_option"`
}

// TextAnswerRequest submits a free-text answer for analysis.
type TextAnswerRequest struct {
	Role       string `json:"role"`
	Level      string `json:"level"`
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// AudioAnswerRequest submits a recorded answer. Audio is base64-encoded
// 16kHz LINEAR16 PCM.
type AudioAnswerRequest struct {
	Role       string `json:"role"`
	Level      string `json:"level"`
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Audio      string `json:"audio"`
}

// HistoryResponse lists persisted graded interactions, newest first.
type HistoryResponse struct {
	Count   int                    `json:"count"`
	Entries []*domain.HistoryEntry `json:"entries"`
}
