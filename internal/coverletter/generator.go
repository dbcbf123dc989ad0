// Package coverletter generates a personalized cover letter from a
// resume and a job description.
package coverletter

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"text/template"

	"careerprep/internal/resume"
)

// Result is the generated letter plus the extracted context.
type Result struct {
	CoverLetter       string   `json:"cover_letter"`
	Company           string   `json:"company"`
	Position          string   `json:"position"`
	HighlightedSkills []string `json:"highlighted_skills"`
}

// templateData feeds the section templates. Skill fields are filled
// from the matching skills with graceful fallbacks, so every template
// renders even from a skill-free resume.
type templateData struct {
	Position    string
	Company     string
	Field       string
	Skill       string
	Skill1      string
	Skill2      string
	Skill3      string
	Achievement string
	Years       string
}

var openingTemplates = mustParse("opening", []string{
	"I am writing to express my strong interest in the {{.Position}} position at {{.Company}}. With my background in {{.Field}} and experience in {{.Skill}}, I believe I would be a valuable addition to your team.",
	"I am excited to apply for the {{.Position}} role at {{.Company}}. My experience in {{.Field}} and expertise in {{.Skill}} align perfectly with the requirements of this position.",
	"As a {{.Field}} professional with extensive experience in {{.Skill}}, I am writing to express my interest in the {{.Position}} position at {{.Company}}.",
})

var bodyTemplates = mustParse("body", []string{
	"Throughout my career, I have developed strong skills in {{.Skill1}} and {{.Skill2}}. In my previous role, I {{.Achievement}}. This experience has prepared me well for the challenges and opportunities at {{.Company}}.",
	"My background in {{.Field}} has equipped me with valuable expertise in {{.Skill1}} and {{.Skill2}}. I have successfully {{.Achievement}}, which demonstrates my ability to deliver results in this role.",
	"With {{.Years}} years of experience in {{.Field}}, I have honed my skills in {{.Skill1}} and {{.Skill2}}. I am particularly proud of {{.Achievement}}, which showcases my ability to {{.Skill3}}.",
})

var closingTemplates = mustParse("closing", []string{
	"I am excited about the opportunity to bring my skills and experience to {{.Company}}. I look forward to discussing how I can contribute to your team's success.",
	"I would welcome the chance to discuss how my background in {{.Field}} and skills in {{.Skill}} can benefit {{.Company}}. Thank you for considering my application.",
	"I am confident that my combination of skills and experience makes me an ideal candidate for this position. I look forward to the possibility of joining {{.Company}} and contributing to its continued success.",
})

func mustParse(name string, texts []string) []*template.Template {
	templates := make([]*template.Template, len(texts))
	for i, text := range texts {
		templates[i] = template.Must(template.New(fmt.Sprintf("%s_%d", name, i)).Parse(text))
	}
	return templates
}

var (
	// Captures stay on one line; job descriptions put the company and
	// position on their own lines often enough that crossing newlines
	// swallows half the posting.
	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`at ([A-Z][A-Za-z ]+)`),
		regexp.MustCompile(`with ([A-Z][A-Za-z ]+)`),
		regexp.MustCompile(`([A-Z][A-Za-z ]+) is hiring`),
	}
	positionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)position: *([A-Za-z ]+)`),
		regexp.MustCompile(`(?i)role: *([A-Za-z ]+)`),
		regexp.MustCompile(`(?i)seeking a ([A-Za-z ]+)`),
		regexp.MustCompile(`(?i)looking for a ([A-Za-z ]+)`),
	}
	achievementIndicators = []string{
		"achieved", "increased", "improved", "developed",
		"implemented", "created", "led", "managed",
	}
)

// Generator assembles letters from the section templates. The random
// source drives template variant choice and is injected for testing.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds a letter from the resume text and job description.
func (g *Generator) Generate(resumeText, jobDescription string) (*Result, error) {
	resumeSkills := resume.ExtractSkills(resumeText)
	jobSkills := resume.ExtractSkills(jobDescription)

	highlighted := intersection(resumeSkills, jobSkills)
	if len(highlighted) == 0 {
		// Nothing overlaps; fall back to what the resume offers.
		highlighted = resumeSkills
	}

	company := extractCompany(jobDescription)
	position := extractPosition(jobDescription)
	data := buildTemplateData(position, company, highlighted, extractAchievement(resumeText))

	g.mu.Lock()
	opening := openingTemplates[g.rng.Intn(len(openingTemplates))]
	body := bodyTemplates[g.rng.Intn(len(bodyTemplates))]
	closing := closingTemplates[g.rng.Intn(len(closingTemplates))]
	g.mu.Unlock()

	var sections []string
	for _, tmpl := range []*template.Template{opening, body, closing} {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, data); err != nil {
			return nil, fmt.Errorf("could not render cover letter section: %w", err)
		}
		sections = append(sections, sb.String())
	}

	return &Result{
		CoverLetter:       strings.Join(sections, "\n\n"),
		Company:           company,
		Position:          position,
		HighlightedSkills: highlighted,
	}, nil
}

func buildTemplateData(position, company string, skills []string, achievement string) templateData {
	pick := func(i int, fallback string) string {
		if i < len(skills) {
			return skills[i]
		}
		return fallback
	}
	field := pick(0, "the field")
	return templateData{
		Position:    position,
		Company:     company,
		Field:       field,
		Skill:       pick(1, field),
		Skill1:      pick(0, "the required skills"),
		Skill2:      pick(1, "related areas"),
		Skill3:      pick(2, "excel in this role"),
		Achievement: achievement,
		Years:       "several",
	}
}

func extractCompany(jobDescription string) string {
	for _, pattern := range companyPatterns {
		if m := pattern.FindStringSubmatch(jobDescription); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "the company"
}

func extractPosition(jobDescription string) string {
	for _, pattern := range positionPatterns {
		if m := pattern.FindStringSubmatch(jobDescription); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "this position"
}

// extractAchievement returns the first resume line carrying an
// achievement verb.
func extractAchievement(resumeText string) string {
	for _, line := range strings.Split(resumeText, "\n") {
		lowered := strings.ToLower(line)
		for _, indicator := range achievementIndicators {
			if strings.Contains(lowered, indicator) {
				return strings.TrimSpace(line)
			}
		}
	}
	return "delivered significant results"
}

func intersection(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, item := range b {
		bSet[item] = struct{}{}
	}
	out := []string{}
	for _, item := range a {
		if _, ok := bSet[item]; ok {
			out = append(out, item)
		}
	}
	return out
}
