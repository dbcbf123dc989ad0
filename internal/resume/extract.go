// Package resume extracts structured data from uploaded resumes and
// matches them against job descriptions.
package resume

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"careerprep/internal/domain"
)

// Data is the structured, editable image of a resume.
type Data struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

// skillKeywords is the spotting list for the skills section. Matching
// is whole-word and case-insensitive; the canonical casing is reported.
var skillKeywords = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "SQL",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
	"React", "Angular", "Vue", "Node.js", "Git", "CI/CD",
	"Machine Learning", "Data Analysis", "Deep Learning",
	"Project Management", "Agile", "Scrum",
}

var (
	nameRe  = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+){1,3}`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)

	experienceHeaderRe = regexp.MustCompile(`(?i)^(work\s+)?experience\b`)
	educationHeaderRe  = regexp.MustCompile(`(?i)^education\b`)
	sectionHeaderRe    = regexp.MustCompile(`(?i)^(experience|work experience|education|skills|projects|certifications)\b`)
)

// ExtractText pulls the plain text out of a PDF document.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", domain.NewInvalidInputError(fmt.Sprintf("could not read PDF: %v", err))
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", domain.NewInvalidInputError("PDF contains no extractable text")
	}
	return sb.String(), nil
}

// ExtractData parses the resume text into its structured form. Every
// extractor is best-effort; fields the text does not yield stay empty.
func ExtractData(text string) *Data {
	return &Data{
		Name:       nameRe.FindString(text),
		Email:      emailRe.FindString(text),
		Phone:      phoneRe.FindString(text),
		Summary:    extractSummary(text),
		Skills:     ExtractSkills(text),
		Experience: extractSection(text, experienceHeaderRe),
		Education:  extractSection(text, educationHeaderRe),
	}
}

// ExtractSkills spots known skills in any text, resume or job
// description alike.
func ExtractSkills(text string) []string {
	found := []string{}
	for _, skill := range skillKeywords {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
		if re.MatchString(text) {
			found = append(found, skill)
		}
	}
	return found
}

// extractSummary takes the first three non-empty lines before any
// section header as the professional summary.
func extractSummary(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sectionHeaderRe.MatchString(line) {
			break
		}
		lines = append(lines, line)
		if len(lines) == 3 {
			break
		}
	}
	return strings.Join(lines, " ")
}

// extractSection collects the lines between the given section header
// and the next section header.
func extractSection(text string, header *regexp.Regexp) []string {
	entries := []string{}
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if header.MatchString(line) {
			inSection = true
			continue
		}
		if inSection {
			if sectionHeaderRe.MatchString(line) {
				break
			}
			entries = append(entries, line)
		}
	}
	return entries
}
