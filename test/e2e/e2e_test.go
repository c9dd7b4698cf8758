package e2e

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hyperjump/screener/internal/config"
	"github.com/hyperjump/screener/internal/models"
	"github.com/hyperjump/screener/internal/pipeline"
	"github.com/hyperjump/screener/internal/report"
	"github.com/hyperjump/screener/internal/scoring"
	"github.com/hyperjump/screener/internal/server"
	"github.com/hyperjump/screener/internal/storage"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type harness struct {
	store *storage.SQLiteStorage
	http  *httptest.Server
}

func newHarness(t *testing.T, dbPath string) *harness {
	t.Helper()
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Storage.DatabasePath = dbPath
	logger := zap.NewNop()
	evaluator := pipeline.NewEvaluator(nil, scoring.NewScorer(scoring.NewFixedScorer(SemanticScore)), store,
		pipeline.WithLogger(logger))
	ts := httptest.NewServer(server.NewServer(evaluator, store, cfg, logger).Handler())
	h := &harness{store: store, http: ts}
	t.Cleanup(func() {
		ts.Close()
		_ = store.Close()
	})
	return h
}

func (h *harness) upload(t *testing.T, c *Corpus) *models.BatchResult {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("job_title", c.JobTitle)
	add := func(field, name, text string) {
		content, err := MinimalFile(filepath.Ext(name), text)
		if err != nil {
			t.Fatal(err)
		}
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = fw.Write(content)
	}
	add("job_description", "jd.docx", c.JobDescription)
	for _, cand := range c.Candidates {
		add("resumes", cand.FileName, cand.Content)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(h.http.URL+"/api/v1/evaluations", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status %d", resp.StatusCode)
	}
	var out models.BatchResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return &out
}

func (h *harness) get(t *testing.T, path string, v interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(h.http.URL + path)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("GET %s: status %d", path, resp.StatusCode)
	}
	if v != nil {
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
	}
	return resp
}

func TestE2E_BatchMatchesCorpusExpectations(t *testing.T) {
	h := newHarness(t, filepath.Join(t.TempDir(), "evaluations.db"))
	c := BuildCorpus()
	batch := h.upload(t, c)

	if !reflect.DeepEqual(batch.RequiredSkills, c.RequiredSkills) {
		t.Fatalf("required skills = %v, want %v", batch.RequiredSkills, c.RequiredSkills)
	}
	if len(batch.Items) != len(c.Candidates) {
		t.Fatalf("items = %d, want %d", len(batch.Items), len(c.Candidates))
	}
	for i, cand := range c.Candidates {
		item := batch.Items[i]
		if item.CandidateName != cand.FileName {
			t.Errorf("item %d is %s, want %s", i, item.CandidateName, cand.FileName)
			continue
		}
		if cand.WantFailed {
			if item.Status != models.BatchItemFailed {
				t.Errorf("%s: want failed, got %+v", cand.FileName, item)
			}
			continue
		}
		ev := item.Evaluation
		if item.Status != models.BatchItemEvaluated || ev == nil {
			t.Errorf("%s: want evaluated, got %+v", cand.FileName, item)
			continue
		}
		if ev.Score != cand.WantScore || ev.Verdict != cand.WantVerdict {
			t.Errorf("%s: score=%d verdict=%s, want %d %s", cand.FileName, ev.Score, ev.Verdict, cand.WantScore, cand.WantVerdict)
		}
		if !reflect.DeepEqual(ev.MatchedSkills, cand.WantMatched) {
			t.Errorf("%s: matched=%v, want %v", cand.FileName, ev.MatchedSkills, cand.WantMatched)
		}
		if len(ev.MatchedSkills)+len(ev.MissingSkills) != len(c.RequiredSkills) {
			t.Errorf("%s: matched and missing do not partition the required skills", cand.FileName)
		}
	}

	var records []models.EvaluationRecord
	h.get(t, "/api/v1/evaluations", &records)
	want := c.Evaluated()
	if len(records) != len(want) {
		t.Fatalf("stored %d records, want %d", len(records), len(want))
	}
	for _, rec := range records {
		if rec.JobTitle != c.JobTitle {
			t.Errorf("record %d job title %q", rec.ID, rec.JobTitle)
		}
	}
	if records[0].CandidateName != "ana.docx" || records[len(records)-1].CandidateName != "cleo.docx" {
		t.Errorf("records not sorted by score: %+v", records)
	}

	var high []models.EvaluationRecord
	h.get(t, "/api/v1/evaluations?verdict=High", &high)
	if len(high) != 1 || high[0].CandidateName != "ana.docx" {
		t.Errorf("High = %+v", high)
	}
	var top []models.EvaluationRecord
	h.get(t, "/api/v1/evaluations?min_score=50&top=2", &top)
	if len(top) != 2 || top[0].Score != 80 || top[1].Score != 60 {
		t.Errorf("top 2 = %+v", top)
	}
}

func TestE2E_SummaryAndExports(t *testing.T) {
	h := newHarness(t, filepath.Join(t.TempDir(), "evaluations.db"))
	h.upload(t, BuildCorpus())

	var summary report.Summary
	h.get(t, "/api/v1/evaluations/summary", &summary)
	if summary.Total != 4 || summary.AverageScore != 55 {
		t.Errorf("summary = %+v", summary)
	}
	wantVerdicts := map[models.Verdict]int{models.VerdictHigh: 1, models.VerdictMedium: 2, models.VerdictLow: 1}
	if !reflect.DeepEqual(summary.VerdictCounts, wantVerdicts) {
		t.Errorf("verdict counts = %v", summary.VerdictCounts)
	}
	if len(summary.MissingSkillCounts) != 5 || summary.MissingSkillCounts[0] != (report.SkillCount{Skill: "AWS", Count: 2}) {
		t.Errorf("missing skill counts = %+v", summary.MissingSkillCounts)
	}

	resp := h.get(t, "/api/v1/evaluations?format=csv", nil)
	rows, err := csv.NewReader(resp.Body).ReadAll()
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || rows[0][0] != "ID" || rows[1][2] != "ana.docx" || rows[1][5] != "Python, Java, SQL, AWS, Docker" {
		t.Errorf("csv rows = %v", rows)
	}

	resp = h.get(t, "/api/v1/evaluations?format=xlsx&verdict=Low", nil)
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "evaluations.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}
	f, err := excelize.OpenReader(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	xrows, err := f.GetRows(report.SheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(xrows) != 2 || xrows[1][2] != "cleo.docx" || xrows[1][6] != "Python, Java, SQL, AWS, Docker" {
		t.Errorf("xlsx rows = %v", xrows)
	}
}

func TestE2E_ClearDoesNotReuseIdentifiers(t *testing.T) {
	h := newHarness(t, filepath.Join(t.TempDir(), "evaluations.db"))
	c := BuildCorpus()
	first := h.upload(t, c)
	var maxID int64
	for _, it := range first.Items {
		if it.RecordID > maxID {
			maxID = it.RecordID
		}
	}

	req, _ := http.NewRequest(http.MethodDelete, h.http.URL+"/api/v1/evaluations", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear status %d", resp.StatusCode)
	}
	var records []models.EvaluationRecord
	h.get(t, "/api/v1/evaluations", &records)
	if len(records) != 0 {
		t.Fatalf("records after clear = %d", len(records))
	}

	second := h.upload(t, c)
	for _, it := range second.Items {
		if it.Status == models.BatchItemEvaluated && it.RecordID <= maxID {
			t.Errorf("%s got id %d, want > %d", it.CandidateName, it.RecordID, maxID)
		}
	}
}

func TestE2E_RecordsSurviveRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "evaluations.db")
	c := BuildCorpus()

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	evaluator := pipeline.NewEvaluator(nil, scoring.NewScorer(scoring.NewFixedScorer(SemanticScore)), store)
	var resumes []pipeline.Document
	for _, cand := range c.Candidates {
		content, err := MinimalFile(filepath.Ext(cand.FileName), cand.Content)
		if err != nil {
			t.Fatal(err)
		}
		resumes = append(resumes, pipeline.Document{Name: cand.FileName, Reader: bytes.NewReader(content)})
	}
	jd := pipeline.Document{Name: "jd.txt", Reader: strings.NewReader(c.JobDescription)}
	if _, err := evaluator.EvaluateBatch(context.Background(), c.JobTitle, jd, resumes); err != nil {
		t.Fatal(err)
	}
	before, err := store.FetchAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, dbPath)
	after, err := h.store.FetchAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("records changed across restart:\nbefore %+v\nafter  %+v", before, after)
	}
	var status map[string]interface{}
	h.get(t, "/api/v1/status", &status)
	if status["evaluations"] != float64(len(c.Evaluated())) {
		t.Errorf("status = %v", status)
	}
}
