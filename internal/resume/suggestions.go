package resume

import "strings"

// Enhancement is one improvement proposal for a resume section.
type Enhancement struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}

// EnhancementSuggestions runs the rule set over the extracted resume
// data. An empty result means no rule fired.
func EnhancementSuggestions(data *Data) []Enhancement {
	enhancements := []Enhancement{}

	if len(strings.Fields(data.Summary)) < 50 {
		enhancements = append(enhancements, Enhancement{
			Title:       "Professional Summary",
			Description: "Your professional summary could be more detailed.",
			Suggestions: []string{
				"Add more specific achievements and skills",
				"Include your career objectives",
				"Highlight your unique value proposition",
			},
		})
	}

	if len(data.Skills) < 5 {
		enhancements = append(enhancements, Enhancement{
			Title:       "Skills Section",
			Description: "Your skills section could be more comprehensive.",
			Suggestions: []string{
				"Add more technical skills",
				"Include soft skills",
				"Specify proficiency levels for key skills",
			},
		})
	}

	if len(data.Experience) == 0 {
		enhancements = append(enhancements, Enhancement{
			Title:       "Experience Section",
			Description: "No work experience entries were found.",
			Suggestions: []string{
				"Add your work history with specific achievements and metrics",
				"Include technologies and tools used in each role",
				"Describe your impact on the organization",
			},
		})
	}

	if len(data.Education) == 0 {
		enhancements = append(enhancements, Enhancement{
			Title:       "Education Section",
			Description: "Education section is missing.",
			Suggestions: []string{
				"Add your educational background",
				"Include relevant certifications",
				"List any academic achievements",
			},
		})
	}

	return enhancements
}
