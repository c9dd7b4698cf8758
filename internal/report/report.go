// Package report filters, summarizes and renders stored evaluations.
package report

import (
	"math"
	"sort"

	"github.com/hyperjump/screener/internal/models"
)

// Filter selects records for listing and export. Zero values disable each criterion.
type Filter struct {
	JobTitle string
	Verdict  models.Verdict
	MinScore float64
	TopN     int
}

// Apply returns the matching records sorted by score descending. Ties keep insertion order.
func (f Filter) Apply(records []*models.EvaluationRecord) []*models.EvaluationRecord {
	out := make([]*models.EvaluationRecord, 0, len(records))
	for _, r := range records {
		if r.Score < f.MinScore {
			continue
		}
		if f.JobTitle != "" && r.JobTitle != f.JobTitle {
			continue
		}
		if f.Verdict != "" && r.Verdict != f.Verdict {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if f.TopN > 0 && len(out) > f.TopN {
		out = out[:f.TopN]
	}
	return out
}

// SkillCount is how many records miss a given skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Summary aggregates a set of records.
type Summary struct {
	Total              int                    `json:"total"`
	AverageScore       float64                `json:"average_score"`
	VerdictCounts      map[models.Verdict]int `json:"verdict_counts"`
	MissingSkillCounts []SkillCount           `json:"missing_skill_counts"`
}

// Summarize counts records per verdict and per missing skill. Missing skills are ordered by
// count descending, then by name.
func Summarize(records []*models.EvaluationRecord) Summary {
	s := Summary{
		Total: len(records),
		VerdictCounts: map[models.Verdict]int{
			models.VerdictHigh:   0,
			models.VerdictMedium: 0,
			models.VerdictLow:    0,
		},
		MissingSkillCounts: []SkillCount{},
	}
	if len(records) == 0 {
		return s
	}
	var total float64
	missing := make(map[string]int)
	for _, r := range records {
		total += r.Score
		s.VerdictCounts[r.Verdict]++
		for _, skill := range r.MissingList() {
			missing[skill]++
		}
	}
	s.AverageScore = math.Round(total/float64(len(records))*100) / 100
	for skill, n := range missing {
		s.MissingSkillCounts = append(s.MissingSkillCounts, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(s.MissingSkillCounts, func(i, j int) bool {
		a, b := s.MissingSkillCounts[i], s.MissingSkillCounts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Skill < b.Skill
	})
	return s
}
