package server

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperjump/screener/internal/config"
	"github.com/hyperjump/screener/internal/models"
	"github.com/hyperjump/screener/internal/pipeline"
	"github.com/hyperjump/screener/internal/report"
	"github.com/hyperjump/screener/internal/storage"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*Server, *storage.SQLiteStorage) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "evaluations.db")
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Storage.DatabasePath = dbPath
	logger := zap.NewNop()
	evaluator := pipeline.NewEvaluator(nil, nil, store, pipeline.WithLogger(logger))
	return NewServer(evaluator, store, cfg, logger), store
}

type upload struct {
	field, name, content string
}

func multipartRequest(t *testing.T, fields map[string]string, files ...upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(f.content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func serve(s *Server, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func seed(t *testing.T, store storage.Store, records ...*models.EvaluationRecord) {
	t.Helper()
	for _, rec := range records {
		if _, err := store.Insert(context.Background(), rec); err != nil {
			t.Fatal(err)
		}
	}
}

func TestHandleEvaluate(t *testing.T) {
	srv, store := newTestServer(t)
	r := multipartRequest(t, map[string]string{"job_title": "Data Engineer"},
		upload{"job_description", "jd.txt", "Python, SQL, AWS and Docker"},
		upload{"resumes", "alice.txt", "Python SQL AWS Docker"},
		upload{"resumes", "bob.rtf", "{\\rtf1 Python}"},
		upload{"resumes", "carol.txt", "python"},
	)
	w := serve(srv, r)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}
	var out models.BatchResult
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.BatchID == "" || out.JobTitle != "Data Engineer" {
		t.Errorf("batch: %+v", out)
	}
	if len(out.Items) != 3 {
		t.Fatalf("items: got %d", len(out.Items))
	}
	if out.Items[0].Status != models.BatchItemEvaluated || out.Items[0].Evaluation.Score != 50 {
		t.Errorf("alice: %+v", out.Items[0])
	}
	if out.Items[1].Status != models.BatchItemFailed {
		t.Errorf("bob should fail: %+v", out.Items[1])
	}
	if out.Items[2].Evaluation == nil || out.Items[2].Evaluation.HardPercentage != 25 {
		t.Errorf("carol: %+v", out.Items[2])
	}
	n, _ := store.Count(context.Background())
	if n != 2 {
		t.Errorf("stored records: got %d, want 2", n)
	}
}

func TestHandleEvaluate_DefaultJobTitle(t *testing.T) {
	srv, store := newTestServer(t)
	r := multipartRequest(t, nil,
		upload{"job_description", "jd.txt", "React"},
		upload{"resumes", "a.txt", "react"},
	)
	if w := serve(srv, r); w.Code != http.StatusCreated {
		t.Fatalf("status: got %d", w.Code)
	}
	records, _ := store.FetchAll(context.Background())
	if len(records) != 1 || records[0].JobTitle != pipeline.DefaultJobTitle {
		t.Errorf("records: %+v", records)
	}
}

func TestHandleEvaluate_MissingParts(t *testing.T) {
	srv, _ := newTestServer(t)
	tests := []struct {
		name  string
		files []upload
	}{
		{"no job description", []upload{{"resumes", "a.txt", "x"}}},
		{"no resumes", []upload{{"job_description", "jd.txt", "x"}}},
		{"two job descriptions", []upload{
			{"job_description", "jd1.txt", "x"},
			{"job_description", "jd2.txt", "y"},
			{"resumes", "a.txt", "x"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(srv, multipartRequest(t, nil, tt.files...))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", w.Code)
			}
		})
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", strings.NewReader("{}"))
	r.Header.Set("Content-Type", "application/json")
	if w := serve(srv, r); w.Code != http.StatusBadRequest {
		t.Errorf("non-multipart: got %d, want 400", w.Code)
	}
}

func TestHandleEvaluate_UnreadableJobDescription(t *testing.T) {
	srv, store := newTestServer(t)
	r := multipartRequest(t, nil,
		upload{"job_description", "jd.doc", "legacy word"},
		upload{"resumes", "a.txt", "Python"},
	)
	w := serve(srv, r)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got %d, want 422", w.Code)
	}
	n, _ := store.Count(context.Background())
	if n != 0 {
		t.Errorf("nothing should be stored, got %d", n)
	}
}

func TestHandleListEvaluations(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store,
		&models.EvaluationRecord{JobTitle: "A", CandidateName: "low.pdf", Score: 20, Verdict: models.VerdictLow},
		&models.EvaluationRecord{JobTitle: "A", CandidateName: "high.pdf", Score: 80, Verdict: models.VerdictHigh},
		&models.EvaluationRecord{JobTitle: "B", CandidateName: "mid.pdf", Score: 60, Verdict: models.VerdictMedium},
	)
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"high.pdf", "mid.pdf", "low.pdf"}},
		{"?job_title=A", []string{"high.pdf", "low.pdf"}},
		{"?verdict=Medium", []string{"mid.pdf"}},
		{"?min_score=50&top=1", []string{"high.pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/evaluations"+tt.query, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status: got %d", w.Code)
			}
			var out []models.EvaluationRecord
			if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, rec := range out {
				got = append(got, rec.CandidateName)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleListEvaluations_BadQuery(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, q := range []string{"?verdict=Great", "?min_score=abc", "?min_score=101", "?top=-1", "?format=text", "?format=yaml"} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/evaluations"+q, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", q, w.Code)
		}
	}
}

func TestHandleListEvaluations_CSV(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store, &models.EvaluationRecord{JobTitle: "A", CandidateName: "x.pdf", Score: 50,
		Verdict: models.VerdictMedium, MatchedSkills: "Python, SQL", MissingSkills: "AWS"})
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/evaluations?format=csv", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != report.OutputCSV.ContentType() {
		t.Errorf("content type: %s", ct)
	}
	rows, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][2] != "x.pdf" || rows[1][5] != "Python, SQL" {
		t.Errorf("rows: %v", rows)
	}
}

func TestHandleSummary(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store,
		&models.EvaluationRecord{JobTitle: "A", CandidateName: "a", Score: 25, Verdict: models.VerdictLow, MissingSkills: "AWS"},
		&models.EvaluationRecord{JobTitle: "A", CandidateName: "b", Score: 75, Verdict: models.VerdictHigh, MissingSkills: "AWS, SQL"},
	)
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/summary", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out report.Summary
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Total != 2 || out.AverageScore != 50 {
		t.Errorf("summary: %+v", out)
	}
	if len(out.MissingSkillCounts) != 2 || out.MissingSkillCounts[0].Skill != "AWS" || out.MissingSkillCounts[0].Count != 2 {
		t.Errorf("missing skills: %+v", out.MissingSkillCounts)
	}
}

func TestHandleClearEvaluations(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store, &models.EvaluationRecord{JobTitle: "A", CandidateName: "a", Verdict: models.VerdictLow})
	w := serve(srv, httptest.NewRequest(http.MethodDelete, "/api/v1/evaluations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	n, _ := store.Count(context.Background())
	if n != 0 {
		t.Errorf("count after clear: %d", n)
	}
}

func TestHandleSkills(t *testing.T) {
	srv, _ := newTestServer(t)
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/skills", nil))
	var out struct {
		Skills []string `json:"skills"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Skills) != 13 || out.Skills[0] != "Python" {
		t.Errorf("skills: %v", out.Skills)
	}
}

func TestHandleDeriveSkills(t *testing.T) {
	srv, _ := newTestServer(t)
	body := strings.NewReader(`{"text": "Kubernetes and docker in the cloud"}`)
	w := serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/skills/derive", body))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out struct {
		RequiredSkills []string `json:"required_skills"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if strings.Join(out.RequiredSkills, ",") != "Docker,Kubernetes,Cloud" {
		t.Errorf("required skills: %v", out.RequiredSkills)
	}

	w = serve(srv, httptest.NewRequest(http.MethodPost, "/api/v1/skills/derive", strings.NewReader("not json")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid body: got %d, want 400", w.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	srv, store := newTestServer(t)
	seed(t, store, &models.EvaluationRecord{JobTitle: "A", CandidateName: "a", Verdict: models.VerdictLow})
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["evaluations"] != float64(1) {
		t.Errorf("evaluations: %v", out["evaluations"])
	}
	if out["semantic_provider"] != "fixed" || out["vocabulary_size"] != float64(13) {
		t.Errorf("status: %v", out)
	}
	if size, ok := out["database_size_bytes"].(float64); !ok || size <= 0 {
		t.Errorf("database_size_bytes: %v", out["database_size_bytes"])
	}
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("health: %d %s", w.Code, w.Body.String())
	}
}
