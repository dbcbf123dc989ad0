package dto

import (
	"careerprep/internal/career"
	"careerprep/internal/resume"
)

// ResumeAnalysisResponse is the structured extraction of an uploaded
// resume plus the rule-based enhancement proposals.
type ResumeAnalysisResponse struct {
	Data         *resume.Data         `json:"data"`
	Enhancements []resume.Enhancement `json:"enhancements"`
}

// CareerRecommendationRequest is the profile to score career paths
// against. Interests are optional.
type CareerRecommendationRequest struct {
	Skills    []string `json:"skills"`
	Education []string `json:"education"`
	Interests []string `json:"interests"`
}

// CareerRecommendationResponse lists scored career paths, best first.
type CareerRecommendationResponse struct {
	Recommendations []career.Recommendation `json:"recommendations"`
}
