package handler

import (
	"io"

	"careerprep/internal/career"
	"careerprep/internal/coverletter"
	"careerprep/internal/domain"
	"careerprep/internal/dto"
	"careerprep/internal/resume"

	"github.com/gofiber/fiber/v2"
)

// maxResumeSize caps uploaded resume PDFs at 10 MiB.
const maxResumeSize = 10 << 20

// CareerHandler handles resume, career path and cover letter requests.
type CareerHandler struct {
	recommender *career.Recommender
	generator   *coverletter.Generator
}

func NewCareerHandler(recommender *career.Recommender, generator *coverletter.Generator) *CareerHandler {
	return &CareerHandler{recommender: recommender, generator: generator}
}

// resumeText reads the uploaded "resume" PDF and extracts its text.
func resumeText(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return "", domain.NewInvalidInputError("A resume PDF upload is required")
	}
	if fileHeader.Size > maxResumeSize {
		return "", domain.NewInvalidInputError("Resume file is too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", domain.NewInternalError("could not open uploaded resume", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", domain.NewInternalError("could not read uploaded resume", err)
	}
	return resume.ExtractText(data)
}

// AnalyzeResume handles POST /api/resume/analyze.
func (h *CareerHandler) AnalyzeResume(c *fiber.Ctx) error {
	text, err := resumeText(c)
	if err != nil {
		return err
	}

	data := resume.ExtractData(text)
	return c.JSON(dto.ResumeAnalysisResponse{
		Data:         data,
		Enhancements: resume.EnhancementSuggestions(data),
	})
}

// MatchResume handles POST /api/resume/match.
func (h *CareerHandler) MatchResume(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return domain.NewInvalidInputError("A job description is required")
	}

	text, err := resumeText(c)
	if err != nil {
		return err
	}
	return c.JSON(resume.Match(text, jobDescription))
}

// ResumeSuggestions handles POST /api/resume/suggestions. With a job
// description it reports skill gaps; without one, section enhancement
// proposals.
func (h *CareerHandler) ResumeSuggestions(c *fiber.Ctx) error {
	text, err := resumeText(c)
	if err != nil {
		return err
	}

	if jobDescription := c.FormValue("job_description"); jobDescription != "" {
		return c.JSON(resume.Gaps(text, jobDescription))
	}
	return c.JSON(resume.EnhancementSuggestions(resume.ExtractData(text)))
}

// Recommendations handles POST /api/career/recommendations.
func (h *CareerHandler) Recommendations(c *fiber.Ctx) error {
	var req dto.CareerRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}
	if len(req.Skills) == 0 && len(req.Education) == 0 {
		return domain.NewInvalidInputError("At least one skill or education entry is required")
	}

	return c.JSON(dto.CareerRecommendationResponse{
		Recommendations: h.recommender.Recommend(req.Skills, req.Education, req.Interests),
	})
}

// GenerateCoverLetter handles POST /api/cover-letter.
func (h *CareerHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")
	if jobDescription == "" {
		return domain.NewInvalidInputError("A job description is required")
	}

	text, err := resumeText(c)
	if err != nil {
		return err
	}

	result, err := h.generator.Generate(text, jobDescription)
	if err != nil {
		return domain.NewInternalError("failed to generate cover letter", err)
	}
	return c.JSON(result)
}
