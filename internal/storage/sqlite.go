package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/screener/internal/models"
)

// SQLiteStorage implements Store using SQLite.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage opens or creates a SQLite database at dbPath and initializes the schema.
// Parent directories are created if they do not exist. The handle holds a single
// connection so writes from this process are serialized.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{db: db, path: dbPath}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS evaluations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_title TEXT,
		candidate_name TEXT,
		score REAL,
		verdict TEXT,
		matched_skills TEXT,
		missing_skills TEXT
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Insert stores rec and assigns its ID.
func (s *SQLiteStorage) Insert(ctx context.Context, rec *models.EvaluationRecord) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO evaluations (job_title, candidate_name, score, verdict, matched_skills, missing_skills)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.JobTitle, rec.CandidateName, rec.Score, string(rec.Verdict), rec.MatchedSkills, rec.MissingSkills,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert evaluation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read evaluation id: %w", err)
	}
	rec.ID = id
	return id, nil
}

// FetchAll returns all records ordered by id.
func (s *SQLiteStorage) FetchAll(ctx context.Context) ([]*models.EvaluationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job_title, candidate_name, score, verdict, matched_skills, missing_skills
		 FROM evaluations ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	records := []*models.EvaluationRecord{}
	for rows.Next() {
		var (
			rec                          models.EvaluationRecord
			jobTitle, candidate, verdict sql.NullString
			matched, missing             sql.NullString
			score                        sql.NullFloat64
		)
		if err := rows.Scan(&rec.ID, &jobTitle, &candidate, &score, &verdict, &matched, &missing); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		rec.JobTitle = jobTitle.String
		rec.CandidateName = candidate.String
		rec.Score = score.Float64
		rec.Verdict = models.Verdict(verdict.String)
		rec.MatchedSkills = matched.String
		rec.MissingSkills = missing.String
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// ClearAll deletes every record. AUTOINCREMENT keeps counting from the previous maximum.
func (s *SQLiteStorage) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM evaluations`); err != nil {
		return fmt.Errorf("failed to clear evaluations: %w", err)
	}
	return nil
}

// Count returns the total number of records.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM evaluations`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
