package skills

import (
	"strings"

	"github.com/hyperjump/screener/internal/models"
)

// Match partitions required into skills present in resumeText and skills absent from it.
// A skill is present when its lowercase form is a substring of the lowercased text,
// so "Java" matches "JavaScript". Order within each half follows required.
func Match(resumeText string, required []string) models.MatchResult {
	text := strings.ToLower(resumeText)
	res := models.MatchResult{Matched: []string{}, Missing: []string{}}
	for _, skill := range required {
		if strings.Contains(text, strings.ToLower(skill)) {
			res.Matched = append(res.Matched, skill)
		} else {
			res.Missing = append(res.Missing, skill)
		}
	}
	return res
}
