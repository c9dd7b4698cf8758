package e2e

import (
	"github.com/hyperjump/screener/internal/models"
)

// SemanticScore is the fixed semantic term used by the corpus expectations.
const SemanticScore = 60

// Candidate is one resume in the corpus with the outcome it must produce.
type Candidate struct {
	FileName    string
	Content     string
	WantFailed  bool
	WantMatched []string
	WantScore   int
	WantVerdict models.Verdict
}

// Corpus is a job description and the resumes evaluated against it.
type Corpus struct {
	JobTitle       string
	JobDescription string
	RequiredSkills []string
	Candidates     []Candidate
}

// BuildCorpus returns a corpus covering all three verdicts, both generated formats, an
// unsupported upload and the substring false positive of Java inside JavaScript.
// Scores assume a fixed semantic term of SemanticScore: floor(hard/2 + 30).
func BuildCorpus() *Corpus {
	return &Corpus{
		JobTitle: "Backend Engineer",
		JobDescription: "Backend Engineer\n" +
			"We build data services in Python and Java on AWS.\n" +
			"You will own SQL schemas and ship with Docker.",
		RequiredSkills: []string{"Python", "Java", "SQL", "AWS", "Docker"},
		Candidates: []Candidate{
			{
				FileName:    "ana.docx",
				Content:     "Ana Lima\nSenior engineer: python, java, sql\nDeployed on aws with docker",
				WantMatched: []string{"Python", "Java", "SQL", "AWS", "Docker"},
				WantScore:   80,
				WantVerdict: models.VerdictHigh,
			},
			{
				FileName:    "ben.txt",
				Content:     "Ben Ito. Frontend work in JavaScript and React, some SQL.",
				WantMatched: []string{"Java", "SQL"},
				WantScore:   50,
				WantVerdict: models.VerdictMedium,
			},
			{
				FileName:    "cleo.docx",
				Content:     "Cleo Park\nProduct designer",
				WantMatched: []string{},
				WantScore:   30,
				WantVerdict: models.VerdictLow,
			},
			{
				FileName:   "dev.rtf",
				Content:    `{\rtf1 Python}`,
				WantFailed: true,
			},
			{
				FileName:    "eli.txt",
				Content:     "Eli Novak - Python, AWS, Docker, Kubernetes",
				WantMatched: []string{"Python", "AWS", "Docker"},
				WantScore:   60,
				WantVerdict: models.VerdictMedium,
			},
		},
	}
}

// Evaluated returns the candidates expected to produce a stored record, in upload order.
func (c *Corpus) Evaluated() []Candidate {
	var out []Candidate
	for _, cand := range c.Candidates {
		if !cand.WantFailed {
			out = append(out, cand)
		}
	}
	return out
}
