package models

// BatchItemStatus is the outcome of one resume inside a batch.
type BatchItemStatus string

const (
	BatchItemEvaluated BatchItemStatus = "evaluated"
	BatchItemFailed    BatchItemStatus = "failed"
)

// BatchItem is the per-resume result of a batch run.
// RecordID is set only when Status is BatchItemEvaluated. Evaluation is also kept
// when scoring succeeded but the record could not be stored.
type BatchItem struct {
	CandidateName string          `json:"candidate_name"`
	Status        BatchItemStatus `json:"status"`
	RecordID      int64           `json:"record_id,omitempty"`
	Evaluation    *Evaluation     `json:"evaluation,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// BatchResult is the response for evaluating several resumes against one job description.
type BatchResult struct {
	BatchID        string       `json:"batch_id"`
	JobTitle       string       `json:"job_title"`
	RequiredSkills []string     `json:"required_skills"`
	Items          []*BatchItem `json:"items"`
}

// Counts returns how many items were evaluated and how many failed.
func (b *BatchResult) Counts() (evaluated, failed int) {
	for _, it := range b.Items {
		if it.Status == BatchItemEvaluated {
			evaluated++
		} else {
			failed++
		}
	}
	return evaluated, failed
}
