// Package pipeline runs the evaluation pipeline: extract, derive required skills, match,
// score and persist one record per resume.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/hyperjump/screener/internal/extract"
	"github.com/hyperjump/screener/internal/models"
	"github.com/hyperjump/screener/internal/scoring"
	"github.com/hyperjump/screener/internal/skills"
	"github.com/hyperjump/screener/internal/storage"
	"go.uber.org/zap"
)

// DefaultJobTitle is recorded when neither the batch nor the evaluator sets a job title.
const DefaultJobTitle = "Software Engineer"

// Document is an uploaded file: its display name and content.
type Document struct {
	Name   string
	Reader io.Reader
}

// Evaluator scores resumes against a job description and stores the results.
type Evaluator struct {
	vocabulary *skills.Vocabulary
	scorer     *scoring.Scorer
	store      storage.Store
	extractor  *extract.Extractor
	jobTitle   string
	logger     *zap.Logger

	// mu serializes batches so resumes are processed one at a time in upload order.
	mu sync.Mutex
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger sets a logger for batch and per-resume events.
func WithLogger(l *zap.Logger) EvaluatorOption {
	return func(e *Evaluator) { e.logger = l }
}

// WithJobTitle sets the job title recorded when a batch does not supply one.
func WithJobTitle(title string) EvaluatorOption {
	return func(e *Evaluator) {
		if title != "" {
			e.jobTitle = title
		}
	}
}

// NewEvaluator creates an evaluator. store may be nil for callers that only use Evaluate.
func NewEvaluator(vocabulary *skills.Vocabulary, scorer *scoring.Scorer, store storage.Store, opts ...EvaluatorOption) *Evaluator {
	if vocabulary == nil {
		vocabulary = skills.DefaultVocabulary()
	}
	if scorer == nil {
		scorer = scoring.NewScorer(nil)
	}
	e := &Evaluator{
		vocabulary: vocabulary,
		scorer:     scorer,
		store:      store,
		extractor:  extract.NewExtractor(),
		jobTitle:   DefaultJobTitle,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Vocabulary returns the evaluator's skill vocabulary.
func (e *Evaluator) Vocabulary() *skills.Vocabulary {
	return e.vocabulary
}

// Provider returns the semantic provider name.
func (e *Evaluator) Provider() string {
	return e.scorer.Provider()
}

// JobTitle returns the default job title.
func (e *Evaluator) JobTitle() string {
	return e.jobTitle
}

// DeriveRequiredSkills returns the vocabulary terms found in the job description text.
func (e *Evaluator) DeriveRequiredSkills(jdText string) []string {
	return e.vocabulary.Derive(jdText)
}

// Evaluate matches resumeText against required and scores the result. Nothing is persisted.
// Empty inputs are valid and produce a zero hard percentage.
func (e *Evaluator) Evaluate(ctx context.Context, resumeText, jdText string, required []string) (models.Evaluation, error) {
	match := skills.Match(resumeText, required)
	return e.scorer.Score(ctx, match, len(required), resumeText, jdText)
}

// EvaluateBatch extracts the job description once and then evaluates each resume in order,
// inserting one record per successfully scored resume. A failure on one resume marks that
// item failed and the batch continues; records already inserted are kept. An error is
// returned only when the job description cannot be extracted or ctx is cancelled before start.
func (e *Evaluator) EvaluateBatch(ctx context.Context, jobTitle string, jd Document, resumes []Document) (*models.BatchResult, error) {
	if e.store == nil {
		return nil, fmt.Errorf("evaluate batch: no store configured")
	}
	if jobTitle == "" {
		jobTitle = e.jobTitle
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	batchID := uuid.New().String()
	log := e.logger.With(zap.String("batch_id", batchID))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	jdText, err := e.extractor.Extract(jd.Reader, jd.Name)
	if err != nil {
		log.Warn("job description extraction failed", zap.String("file", jd.Name), zap.Error(err))
		return nil, fmt.Errorf("job description: %w", err)
	}
	required := e.DeriveRequiredSkills(jdText)
	log.Info("batch started",
		zap.String("job_title", jobTitle),
		zap.Int("resumes", len(resumes)),
		zap.Strings("required_skills", required),
	)

	result := &models.BatchResult{
		BatchID:        batchID,
		JobTitle:       jobTitle,
		RequiredSkills: required,
		Items:          make([]*models.BatchItem, 0, len(resumes)),
	}
	for _, doc := range resumes {
		item := e.evaluateOne(ctx, log, jobTitle, jdText, required, doc)
		result.Items = append(result.Items, item)
	}
	evaluated, failed := result.Counts()
	log.Info("batch finished", zap.Int("evaluated", evaluated), zap.Int("failed", failed))
	return result, nil
}

// EvaluateFile evaluates the resume at path against an already extracted job description
// and stores the record. Used by the inbox watcher.
func (e *Evaluator) EvaluateFile(ctx context.Context, jobTitle, jdText string, required []string, path string) *models.BatchItem {
	if jobTitle == "" {
		jobTitle = e.jobTitle
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	name := filepath.Base(path)
	text, err := e.extractor.ExtractFile(path)
	if err != nil {
		e.logger.Warn("resume extraction failed", zap.String("candidate", name), zap.Error(err))
		return &models.BatchItem{CandidateName: name, Status: models.BatchItemFailed, Error: err.Error()}
	}
	return e.scoreAndStore(ctx, e.logger, jobTitle, name, text, jdText, required)
}

func (e *Evaluator) evaluateOne(ctx context.Context, log *zap.Logger, jobTitle, jdText string, required []string, doc Document) *models.BatchItem {
	if err := ctx.Err(); err != nil {
		return &models.BatchItem{CandidateName: doc.Name, Status: models.BatchItemFailed, Error: err.Error()}
	}
	text, err := e.extractor.Extract(doc.Reader, doc.Name)
	if err != nil {
		log.Warn("resume extraction failed",
			zap.String("candidate", doc.Name),
			zap.String("kind", extract.KindOf(err).String()),
			zap.Error(err),
		)
		return &models.BatchItem{CandidateName: doc.Name, Status: models.BatchItemFailed, Error: err.Error()}
	}
	return e.scoreAndStore(ctx, log, jobTitle, doc.Name, text, jdText, required)
}

func (e *Evaluator) scoreAndStore(ctx context.Context, log *zap.Logger, jobTitle, name, resumeText, jdText string, required []string) *models.BatchItem {
	ev, err := e.Evaluate(ctx, resumeText, jdText, required)
	if err != nil {
		log.Warn("scoring failed", zap.String("candidate", name), zap.Error(err))
		return &models.BatchItem{CandidateName: name, Status: models.BatchItemFailed, Error: err.Error()}
	}
	rec := models.NewEvaluationRecord(jobTitle, name, ev)
	id, err := e.store.Insert(ctx, rec)
	if err != nil {
		log.Error("storing evaluation failed", zap.String("candidate", name), zap.Error(err))
		return &models.BatchItem{CandidateName: name, Status: models.BatchItemFailed, Evaluation: &ev, Error: err.Error()}
	}
	log.Debug("resume evaluated",
		zap.String("candidate", name),
		zap.Int64("record_id", id),
		zap.Int("score", ev.Score),
		zap.String("verdict", string(ev.Verdict)),
	)
	return &models.BatchItem{CandidateName: name, Status: models.BatchItemEvaluated, RecordID: id, Evaluation: &ev}
}
