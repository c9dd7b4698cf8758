package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/hyperjump/screener/internal/models"
	"github.com/xuri/excelize/v2"
)

// OutputFormat is the format for listing output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
	// OutputCSV is comma-separated values with a header row.
	OutputCSV OutputFormat = "csv"
	// OutputXLSX is an Excel workbook with a single sheet.
	OutputXLSX OutputFormat = "xlsx"
)

// SheetName is the worksheet holding evaluations in XLSX exports.
const SheetName = "Evaluations"

// Header is the column row used by CSV and XLSX exports.
var Header = []string{"ID", "Job Title", "Candidate Name", "Score", "Verdict", "Matched Skills", "Missing Skills"}

// ParseFormat validates s as an output format. Empty means text.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case "":
		return OutputText, nil
	case OutputText, OutputJSON, OutputCSV, OutputXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, csv or xlsx)", s)
	}
}

// ContentType returns the MIME type for the format.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputJSON:
		return "application/json"
	case OutputCSV:
		return "text/csv"
	case OutputXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// WriteRecords writes records to w in the given format.
func WriteRecords(w io.Writer, records []*models.EvaluationRecord, format OutputFormat) error {
	if records == nil {
		records = []*models.EvaluationRecord{}
	}
	switch format {
	case OutputJSON:
		return writeJSON(w, records)
	case OutputCSV:
		return writeCSV(w, records)
	case OutputXLSX:
		return writeXLSX(w, records)
	default:
		writeRecordsText(w, records)
		return nil
	}
}

// WriteSummary writes a summary as JSON or text.
func WriteSummary(w io.Writer, s Summary, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, s)
	}
	fmt.Fprintf(w, "Evaluations: %d\n", s.Total)
	fmt.Fprintf(w, "Average score: %.2f\n", s.AverageScore)
	fmt.Fprintf(w, "High: %d | Medium: %d | Low: %d\n",
		s.VerdictCounts[models.VerdictHigh], s.VerdictCounts[models.VerdictMedium], s.VerdictCounts[models.VerdictLow])
	if len(s.MissingSkillCounts) > 0 {
		fmt.Fprintln(w, "\nMost missing skills:")
		for _, sc := range s.MissingSkillCounts {
			fmt.Fprintf(w, "  %-12s %d\n", sc.Skill, sc.Count)
		}
	}
	return nil
}

// WriteBatch writes a batch result as JSON or text.
func WriteBatch(w io.Writer, batch *models.BatchResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, batch)
	}
	evaluated, failed := batch.Counts()
	fmt.Fprintf(w, "\nBatch %s | %s\n", batch.BatchID, batch.JobTitle)
	fmt.Fprintf(w, "Required skills: %s\n", skillsOrNone(batch.RequiredSkills))
	fmt.Fprintf(w, "%d evaluated, %d failed\n\n", evaluated, failed)
	for _, it := range batch.Items {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		if it.Status == models.BatchItemFailed {
			fmt.Fprintf(w, "%s: FAILED (%s)\n", it.CandidateName, it.Error)
			continue
		}
		ev := it.Evaluation
		fmt.Fprintf(w, "%s: %d (%s) | hard match %d%%\n", it.CandidateName, ev.Score, ev.Verdict, ev.HardPercentage)
		fmt.Fprintf(w, "  Matched: %s\n", skillsOrNone(ev.MatchedSkills))
		fmt.Fprintf(w, "  Missing: %s\n", skillsOrNone(ev.MissingSkills))
	}
	fmt.Fprintln(w)
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRecordsText(w io.Writer, records []*models.EvaluationRecord) {
	fmt.Fprintf(w, "\n%d evaluations\n\n", len(records))
	for _, r := range records {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "#%d %s | %s | Score: %.0f (%s)\n", r.ID, Truncate(r.CandidateName, 40), r.JobTitle, r.Score, r.Verdict)
		fmt.Fprintf(w, "  Matched: %s\n", orNone(r.MatchedSkills))
		fmt.Fprintf(w, "  Missing: %s\n", orNone(r.MissingSkills))
	}
	fmt.Fprintln(w)
}

func row(r *models.EvaluationRecord) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.JobTitle,
		r.CandidateName,
		strconv.FormatFloat(r.Score, 'f', -1, 64),
		string(r.Verdict),
		r.MatchedSkills,
		r.MissingSkills,
	}
}

func writeCSV(w io.Writer, records []*models.EvaluationRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, records []*models.EvaluationRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r.ID, r.JobTitle, r.CandidateName, r.Score, string(r.Verdict), r.MatchedSkills, r.MissingSkills}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx row %d: %w", r.ID, err)
		}
	}
	return f.Write(w)
}

func skillsOrNone(s []string) string {
	return orNone(models.JoinSkills(s))
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Truncate truncates s to at most maxLen bytes on a rune boundary and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
