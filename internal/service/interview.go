// Package service implements the application services on top of the
// domain ports.
package service

import (
	"context"
	"encoding/base64"
	"time"

	"careerprep/internal/analysis"
	"careerprep/internal/domain"
	"careerprep/internal/dto"
	"careerprep/internal/logger"
	"careerprep/internal/question"

	"go.uber.org/zap"
)

// InterviewService drives the interview flow: question selection,
// answer grading for both modalities, and history.
type InterviewService interface {
	StartInterview(req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	ProcessQuizAnswer(ctx context.Context, req *dto.QuizAnswerRequest) (*domain.AnswerAnalysis, error)
	AnalyzeAnswer(ctx context.Context, req *dto.TextAnswerRequest) (*domain.AnswerAnalysis, error)
	AnalyzeAudioAnswer(ctx context.Context, req *dto.AudioAnswerRequest) (*domain.AnswerAnalysis, error)
	GetHistory(role, level string) (*dto.HistoryResponse, error)
}

type interviewServiceImpl struct {
	bank        *question.Bank
	selector    *question.Selector
	history     domain.HistoryRepository
	transcriber domain.Transcriber
	sentiment   domain.SentimentAnalyzer
	answerCache AnswerCacheService
	now         func() time.Time
}

// NewInterviewService wires the interview service. transcriber may be
// nil when no speech credentials are configured; audio answers then
// fail with a service error instead of at startup.
func NewInterviewService(
	bank *question.Bank,
	selector *question.Selector,
	history domain.HistoryRepository,
	transcriber domain.Transcriber,
	sentiment domain.SentimentAnalyzer,
	answerCache AnswerCacheService,
) InterviewService {
	return &interviewServiceImpl{
		bank:        bank,
		selector:    selector,
		history:     history,
		transcriber: transcriber,
		sentiment:   sentiment,
		answerCache: answerCache,
		now:         time.Now,
	}
}

// StartInterview selects the fixed-size question set for the session.
func (s *interviewServiceImpl) StartInterview(req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	selected, err := s.selector.Select(req.Role, req.Level, req.FocusArea)
	if err != nil {
		return nil, err
	}

	questions := make([]dto.InterviewQuestion, 0, len(selected))
	for _, q := range selected {
		questions = append(questions, dto.NewInterviewQuestion(q))
	}
	return &dto.StartInterviewResponse{
		Role:      req.Role,
		Level:     req.Level,
		FocusArea: req.FocusArea,
		Questions: questions,
	}, nil
}

// ProcessQuizAnswer grades a selected option against the answer key
// and runs the same analysis pipeline as free-text answers, with the
// option text standing in for the transcript. Correctness is exact
// option equality. Nothing is persisted when any stage fails.
func (s *interviewServiceImpl) ProcessQuizAnswer(ctx context.Context, req *dto.QuizAnswerRequest) (*domain.AnswerAnalysis, error) {
	if req.Role == "" || req.Level == "" {
		return nil, domain.NewInvalidInputError("Role and level are required")
	}
	if req.SelectedOption == "" {
		return nil, domain.NewInvalidInputError("A selected option is required")
	}
	if req.QuestionID == "" && req.Question == "" {
		return nil, domain.NewInvalidInputError("A question ID or question text is required")
	}

	q, ok := s.bank.Find(req.QuestionID, req.Question, req.Role, req.Level)
	if !ok {
		return nil, domain.NewQuestionNotFoundError(req.Question)
	}

	if cached := s.answerCache.GetAnswer(ctx, q.ID, req.SelectedOption); cached != nil {
		logger.Get().Debug("quiz answer served from cache", zap.String("question_id", q.ID))
		if err := s.appendHistory(req.Role, req.Level, q.Question, cached); err != nil {
			return nil, err
		}
		return cached, nil
	}

	sentiment, err := s.sentiment.AnalyzeSentiment(ctx, req.SelectedOption)
	if err != nil {
		return nil, err
	}

	kw := analysis.AnalyzeKeywords(req.SelectedOption, q.Keywords)
	length := analysis.AnalyzeLength(req.SelectedOption, q.ExpectedMinutes())
	structure := analysis.AnalyzeStructure(req.SelectedOption)

	isCorrect := req.SelectedOption == q.CorrectOption
	result := &domain.AnswerAnalysis{
		QuestionID:        q.ID,
		Question:          q.Question,
		SelectedOption:    req.SelectedOption,
		CorrectOption:     q.CorrectOption,
		IsCorrect:         &isCorrect,
		Explanation:       q.Explanation,
		KeywordAnalysis:   kw,
		LengthAnalysis:    length,
		StructureAnalysis: structure,
		SentimentScore:    &sentiment,
		Feedback:          *analysis.BuildFeedback(q, kw, length, structure, req.SelectedOption),
		Score:             analysis.OverallScore(kw, length, structure, sentiment),
	}

	if err := s.appendHistory(req.Role, req.Level, q.Question, result); err != nil {
		return nil, err
	}
	s.answerCache.PutAnswer(ctx, q.ID, req.SelectedOption, result)
	return result, nil
}

// AnalyzeAnswer runs the full free-text pipeline: keyword coverage,
// length fit, structure, sentiment, weighted score and feedback.
// Nothing is persisted when any stage fails.
func (s *interviewServiceImpl) AnalyzeAnswer(ctx context.Context, req *dto.TextAnswerRequest) (*domain.AnswerAnalysis, error) {
	if req.Role == "" || req.Level == "" {
		return nil, domain.NewInvalidInputError("Role and level are required")
	}
	if req.Answer == "" {
		return nil, domain.NewInvalidInputError("An answer is required")
	}
	if req.QuestionID == "" && req.Question == "" {
		return nil, domain.NewInvalidInputError("A question ID or question text is required")
	}

	q, ok := s.bank.Find(req.QuestionID, req.Question, req.Role, req.Level)
	if !ok {
		return nil, domain.NewQuestionNotFoundError(req.Question)
	}

	sentiment, err := s.sentiment.AnalyzeSentiment(ctx, req.Answer)
	if err != nil {
		return nil, err
	}

	kw := analysis.AnalyzeKeywords(req.Answer, q.Keywords)
	length := analysis.AnalyzeLength(req.Answer, q.ExpectedMinutes())
	structure := analysis.AnalyzeStructure(req.Answer)

	result := &domain.AnswerAnalysis{
		QuestionID:        q.ID,
		Question:          q.Question,
		Transcript:        req.Answer,
		KeywordAnalysis:   kw,
		LengthAnalysis:    length,
		StructureAnalysis: structure,
		SentimentScore:    &sentiment,
		Feedback:          *analysis.BuildFeedback(q, kw, length, structure, req.Answer),
		Score:             analysis.OverallScore(kw, length, structure, sentiment),
	}

	if err := s.appendHistory(req.Role, req.Level, q.Question, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AnalyzeAudioAnswer transcribes the recording and feeds the transcript
// through the free-text pipeline.
func (s *interviewServiceImpl) AnalyzeAudioAnswer(ctx context.Context, req *dto.AudioAnswerRequest) (*domain.AnswerAnalysis, error) {
	if req.Audio == "" {
		return nil, domain.NewInvalidInputError("Audio data is required")
	}
	if s.transcriber == nil {
		return nil, domain.NewSpeechServiceError(nil)
	}

	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return nil, domain.NewInvalidInputError("Audio must be base64 encoded")
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("transcribed audio answer",
		zap.Int("audio_bytes", len(audio)),
		zap.Int("transcript_chars", len(transcript)))

	return s.AnalyzeAnswer(ctx, &dto.TextAnswerRequest{
		Role:       req.Role,
		Level:      req.Level,
		QuestionID: req.QuestionID,
		Question:   req.Question,
		Answer:     transcript,
	})
}

// GetHistory returns persisted interactions matching the optional
// filters, newest first.
func (s *interviewServiceImpl) GetHistory(role, level string) (*dto.HistoryResponse, error) {
	entries, err := s.history.Query(role, level)
	if err != nil {
		return nil, domain.NewInternalError("failed to read interview history", err)
	}
	return &dto.HistoryResponse{Count: len(entries), Entries: entries}, nil
}

func (s *interviewServiceImpl) appendHistory(role, level, questionText string, result *domain.AnswerAnalysis) error {
	entry := &domain.HistoryEntry{
		Timestamp: s.now().Format(domain.HistoryTimestampLayout),
		Role:      role,
		Level:     level,
		Question:  questionText,
		Analysis:  *result,
	}
	if err := s.history.Append(entry); err != nil {
		return domain.NewInternalError("failed to persist interview history", err)
	}
	return nil
}
