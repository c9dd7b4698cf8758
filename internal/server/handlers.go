package server

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hyperjump/screener/internal/extract"
	"github.com/hyperjump/screener/internal/models"
	"github.com/hyperjump/screener/internal/pipeline"
	"github.com/hyperjump/screener/internal/report"
	"github.com/hyperjump/screener/internal/storage"
	"go.uber.org/zap"
)

const (
	formJobDescription = "job_description"
	formResumes        = "resumes"
	formJobTitle       = "job_title"
)

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.config.Server.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	jdFiles := r.MultipartForm.File[formJobDescription]
	if len(jdFiles) != 1 {
		s.respondError(w, http.StatusBadRequest, "exactly one job_description file is required")
		return
	}
	resumeFiles := r.MultipartForm.File[formResumes]
	if len(resumeFiles) == 0 {
		s.respondError(w, http.StatusBadRequest, "at least one resumes file is required")
		return
	}

	jd, err := openDocument(jdFiles[0])
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "cannot read job description upload")
		return
	}
	defer closeDocument(jd)
	resumes := make([]pipeline.Document, 0, len(resumeFiles))
	defer func() {
		for _, d := range resumes {
			closeDocument(d)
		}
	}()
	for _, fh := range resumeFiles {
		d, err := openDocument(fh)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "cannot read resume upload "+fh.Filename)
			return
		}
		resumes = append(resumes, d)
	}

	jobTitle := r.FormValue(formJobTitle)
	s.logger.Debug("evaluate request",
		zap.String("job_title", jobTitle),
		zap.String("job_description", jd.Name),
		zap.Int("resumes", len(resumes)),
	)
	result, err := s.evaluator.EvaluateBatch(r.Context(), jobTitle, jd, resumes)
	if err != nil {
		var extractErr *extract.Error
		if errors.As(err, &extractErr) {
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("evaluation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, result)
}

func openDocument(fh *multipart.FileHeader) (pipeline.Document, error) {
	f, err := fh.Open()
	if err != nil {
		return pipeline.Document{}, err
	}
	return pipeline.Document{Name: fh.Filename, Reader: f}, nil
}

func closeDocument(d pipeline.Document) {
	if f, ok := d.Reader.(multipart.File); ok {
		_ = f.Close()
	}
}

// parseFilter reads job_title, verdict, min_score and top from the query string.
func parseFilter(r *http.Request) (report.Filter, error) {
	q := r.URL.Query()
	f := report.Filter{
		JobTitle: q.Get("job_title"),
		Verdict:  models.Verdict(q.Get("verdict")),
	}
	if f.Verdict != "" && !f.Verdict.Valid() {
		return f, errors.New("verdict must be High, Medium or Low")
	}
	if v := q.Get("min_score"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n < 0 || n > 100 {
			return f, errors.New("min_score must be a number between 0 and 100")
		}
		f.MinScore = n
	}
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return f, errors.New("top must be a non-negative integer")
		}
		f.TopN = n
	}
	return f, nil
}

func (s *Server) filteredRecords(w http.ResponseWriter, r *http.Request) ([]*models.EvaluationRecord, bool) {
	filter, err := parseFilter(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	records, err := s.store.FetchAll(r.Context())
	if err != nil {
		s.logger.Error("fetch evaluations failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return filter.Apply(records), true
}

func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	format := report.OutputJSON
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := report.ParseFormat(v)
		if err != nil || f == report.OutputText {
			s.respondError(w, http.StatusBadRequest, "format must be json, csv or xlsx")
			return
		}
		format = f
	}
	records, ok := s.filteredRecords(w, r)
	if !ok {
		return
	}
	if format == report.OutputJSON {
		s.respondJSON(w, http.StatusOK, records)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="evaluations.`+string(format)+`"`)
	w.WriteHeader(http.StatusOK)
	if err := report.WriteRecords(w, records, format); err != nil {
		s.logger.Error("export failed", zap.String("format", string(format)), zap.Error(err))
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	records, ok := s.filteredRecords(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, report.Summarize(records))
}

func (s *Server) handleClearEvaluations(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("clear evaluations request")
	if err := s.store.ClearAll(r.Context()); err != nil {
		s.logger.Error("clear evaluations failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"skills": s.evaluator.Vocabulary().Terms()})
}

type deriveRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleDeriveSkills(w http.ResponseWriter, r *http.Request) {
	var req deriveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"required_skills": s.evaluator.DeriveRequiredSkills(req.Text),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count(r.Context())
	if err != nil {
		s.logger.Error("status: count evaluations failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := map[string]interface{}{
		"evaluations":       count,
		"vocabulary_size":   s.evaluator.Vocabulary().Len(),
		"semantic_provider": s.evaluator.Provider(),
		"job_title":         s.evaluator.JobTitle(),
	}
	dbPath := s.config.Storage.DatabasePath
	resp["database_path"] = dbPath
	if size, err := storage.DatabaseSizeBytes(dbPath); err == nil {
		resp["database_size_bytes"] = size
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
