// Package skills holds the skill vocabulary and the substring matcher used to compare
// resumes against a job description.
package skills

import "strings"

// DefaultTerms is the built-in vocabulary used when configuration does not supply one.
var DefaultTerms = []string{
	"Python", "Java", "C++", "SQL", "AWS", "TensorFlow", "React", "Node.js",
	"Docker", "Kubernetes", "Cloud", "Agile", "Scrum",
}

// Vocabulary is an immutable ordered list of known skill names.
type Vocabulary struct {
	terms []string
	lower []string
}

// NewVocabulary builds a vocabulary from terms. Blank terms are dropped and
// case-insensitive duplicates keep their first spelling.
func NewVocabulary(terms []string) *Vocabulary {
	v := &Vocabulary{}
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		l := strings.ToLower(t)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		v.terms = append(v.terms, t)
		v.lower = append(v.lower, l)
	}
	return v
}

// DefaultVocabulary returns a vocabulary built from DefaultTerms.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(DefaultTerms)
}

// Terms returns a copy of the vocabulary in order.
func (v *Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Contains reports whether term is in the vocabulary, ignoring case.
func (v *Vocabulary) Contains(term string) bool {
	l := strings.ToLower(strings.TrimSpace(term))
	for _, t := range v.lower {
		if t == l {
			return true
		}
	}
	return false
}

// Derive returns the vocabulary terms that occur in text, in vocabulary order.
// Occurrence is case-insensitive substring containment with no word boundaries.
func (v *Vocabulary) Derive(text string) []string {
	lt := strings.ToLower(text)
	found := []string{}
	for i, l := range v.lower {
		if strings.Contains(lt, l) {
			found = append(found, v.terms[i])
		}
	}
	return found
}
