// Package models defines core data structures for skill matches, evaluations, and stored records.
package models

import "strings"

// SkillSeparator joins skill names in stored records.
const SkillSeparator = ", "

// Verdict is the tier label derived from a final score.
type Verdict string

const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// Valid reports whether v is one of the known tiers.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictHigh, VerdictMedium, VerdictLow:
		return true
	}
	return false
}

// MatchResult partitions a required-skill sequence into skills found in a resume and skills not found.
// Order within each half follows the required sequence.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Evaluation is the outcome of scoring one resume against a job description.
type Evaluation struct {
	Score          int      `json:"score"`
	Verdict        Verdict  `json:"verdict"`
	HardPercentage int      `json:"hard_percentage"`
	SemanticScore  float64  `json:"semantic_score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
}

// EvaluationRecord mirrors one row of the evaluations table.
// Skill lists are stored joined with SkillSeparator.
type EvaluationRecord struct {
	ID            int64   `json:"id" db:"id"`
	JobTitle      string  `json:"job_title" db:"job_title"`
	CandidateName string  `json:"candidate_name" db:"candidate_name"`
	Score         float64 `json:"score" db:"score"`
	Verdict       Verdict `json:"verdict" db:"verdict"`
	MatchedSkills string  `json:"matched_skills" db:"matched_skills"`
	MissingSkills string  `json:"missing_skills" db:"missing_skills"`
}

// NewEvaluationRecord builds an unsaved record from an evaluation.
func NewEvaluationRecord(jobTitle, candidateName string, ev Evaluation) *EvaluationRecord {
	return &EvaluationRecord{
		JobTitle:      jobTitle,
		CandidateName: candidateName,
		Score:         float64(ev.Score),
		Verdict:       ev.Verdict,
		MatchedSkills: JoinSkills(ev.MatchedSkills),
		MissingSkills: JoinSkills(ev.MissingSkills),
	}
}

// MatchedList returns the matched skills split back into a slice.
func (r *EvaluationRecord) MatchedList() []string {
	return SplitSkills(r.MatchedSkills)
}

// MissingList returns the missing skills split back into a slice.
func (r *EvaluationRecord) MissingList() []string {
	return SplitSkills(r.MissingSkills)
}

// JoinSkills joins skills with SkillSeparator. A skill containing the separator
// does not survive a round trip.
func JoinSkills(skills []string) string {
	return strings.Join(skills, SkillSeparator)
}

// SplitSkills splits s on SkillSeparator. The empty string yields an empty, non-nil slice.
func SplitSkills(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, SkillSeparator)
}
