// Package handler wires the HTTP routes to the application services.
package handler

import (
	"careerprep/internal/domain"
	"careerprep/internal/dto"
	"careerprep/internal/logger"
	"careerprep/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InterviewHandler handles interview-related HTTP requests.
type InterviewHandler struct {
	service service.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler instance.
func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{service: service}
}

// answerBody is the combined POST /interview/answer payload. The
// modality is decided by which answer field is set: selected_option
// grades against the answer key, answer runs the free-text pipeline.
type answerBody struct {
	Role           string `json:"role"`
	Level          string `json:"level"`
	QuestionID     string `json:"question_id"`
	Question       string `json:"question"`
	SelectedOption string `json:"selected_option"`
	Answer         string `json:"answer"`
}

// StartInterview handles POST /api/interview/start.
func (h *InterviewHandler) StartInterview(c *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	resp, err := h.service.StartInterview(&req)
	if err != nil {
		return err
	}

	logger.Get().Info("interview started",
		zap.String("role", req.Role),
		zap.String("level", req.Level),
		zap.String("focus_area", req.FocusArea))
	return c.JSON(resp)
}

// SubmitAnswer handles POST /api/interview/answer for both modalities.
func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	var body answerBody
	if err := c.BodyParser(&body); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	switch {
	case body.SelectedOption != "" && body.Answer != "":
		return domain.NewInvalidInputError("Provide either a selected option or a free-text answer, not both")
	case body.SelectedOption != "":
		result, err := h.service.ProcessQuizAnswer(c.Context(), &dto.QuizAnswerRequest{
			Role:           body.Role,
			Level:          body.Level,
			QuestionID:     body.QuestionID,
			Question:       body.Question,
			SelectedOption: body.SelectedOption,
		})
		if err != nil {
			return err
		}
		return c.JSON(result)
	default:
		result, err := h.service.AnalyzeAnswer(c.Context(), &dto.TextAnswerRequest{
			Role:       body.Role,
			Level:      body.Level,
			QuestionID: body.QuestionID,
			Question:   body.Question,
			Answer:     body.Answer,
		})
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
}

// SubmitAudioAnswer handles POST /api/interview/answer/audio.
func (h *InterviewHandler) SubmitAudioAnswer(c *fiber.Ctx) error {
	var req dto.AudioAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	result, err := h.service.AnalyzeAudioAnswer(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetHistory handles GET /api/interview/history.
func (h *InterviewHandler) GetHistory(c *fiber.Ctx) error {
	resp, err := h.service.GetHistory(c.Query("role"), c.Query("level"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
