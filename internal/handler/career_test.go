package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"careerprep/internal/career"
	"careerprep/internal/coverletter"
	"careerprep/internal/domain"
	"careerprep/internal/dto"
	"careerprep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCareerApp(t *testing.T) *fiber.App {
	t.Helper()
	recommender, err := career.NewRecommender()
	require.NoError(t, err)
	generator := coverletter.NewGenerator(rand.New(rand.NewSource(7)))

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := NewCareerHandler(recommender, generator)
	app.Post("/api/resume/analyze", h.AnalyzeResume)
	app.Post("/api/resume/match", h.MatchResume)
	app.Post("/api/resume/suggestions", h.ResumeSuggestions)
	app.Post("/api/career/recommendations", h.Recommendations)
	app.Post("/api/cover-letter", h.GenerateCoverLetter)
	return app
}

// multipartForm builds a form with the given fields and no resume file.
func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestRecommendationsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := setupCareerApp(t)

		payload, err := json.Marshal(dto.CareerRecommendationRequest{
			Skills:    []string{"Python", "Machine Learning", "Statistics", "SQL"},
			Education: []string{"MS in Data Science"},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/career/recommendations", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.CareerRecommendationResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotEmpty(t, body.Recommendations)
		assert.Equal(t, "data_scientist", body.Recommendations[0].Career)
	})

	t.Run("EmptyProfileRejected", func(t *testing.T) {
		app := setupCareerApp(t)

		req := httptest.NewRequest(http.MethodPost, "/api/career/recommendations",
			bytes.NewReader([]byte(`{"interests":["cloud"]}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, string(domain.ErrInvalidInput), body.Code)
	})
}

func TestResumeUploadValidation(t *testing.T) {
	t.Run("AnalyzeWithoutFile", func(t *testing.T) {
		app := setupCareerApp(t)

		buf, contentType := multipartForm(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MatchWithoutJobDescription", func(t *testing.T) {
		app := setupCareerApp(t)

		buf, contentType := multipartForm(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/resume/match", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("CoverLetterWithoutJobDescription", func(t *testing.T) {
		app := setupCareerApp(t)

		buf, contentType := multipartForm(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/cover-letter", buf)
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
