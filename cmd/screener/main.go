// Package main is the screener CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hyperjump/screener/internal/config"
	"github.com/hyperjump/screener/internal/extract"
	"github.com/hyperjump/screener/internal/models"
	"github.com/hyperjump/screener/internal/pipeline"
	"github.com/hyperjump/screener/internal/report"
	"github.com/hyperjump/screener/internal/scoring"
	"github.com/hyperjump/screener/internal/server"
	"github.com/hyperjump/screener/internal/skills"
	"github.com/hyperjump/screener/internal/storage"
	"github.com/hyperjump/screener/internal/watcher"
	"github.com/hyperjump/screener/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/screener/config.yaml"

// loadConfig loads config from path. When path is the default and it does not exist,
// config.yaml in the current directory is tried, then built-in defaults.
// Returns the config and the path that was actually loaded ("" for defaults).
func loadConfig(path string) (*config.Config, string, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, "", err
	}
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			cfg, err := defaultConfig()
			return cfg, "", err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// defaultConfig returns built-in defaults with environment overrides, storing the
// database under ./data.
func defaultConfig() (*config.Config, error) {
	cfg := &config.Config{Storage: config.StorageConfig{DatabasePath: filepath.Join("data", "evaluations.db")}}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	config.ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	args := os.Args[2:]
	switch command {
	case "server":
		runServer(args)
	case "evaluate":
		runEvaluate(args)
	case "list":
		runList(args)
	case "summary":
		runSummary(args)
	case "clear":
		runClear(args)
	case "skills":
		runSkills(args)
	case "watch":
		runWatch(args)
	case "status":
		runStatus(args)
	case "version", "--version", "-v":
		fmt.Printf("screener version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// fatalf prints to stderr and exits 1.
func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// reorderArgs moves flags (and their values) that appear after positional arguments
// to the front so that fs.Parse sees them. Go's flag package stops at the first
// non-flag argument, so "screener evaluate a.pdf --jd jd.txt" would otherwise leave
// --jd unparsed. Everything after "--" stays positional.
func reorderArgs(fs *flag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		name := strings.TrimLeft(a, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return append(flags, positional...)
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// setup loads config and creates the logger. The returned flag overrides cfg.Debug.
func setup(configPath string, debugFlag, jsonLogs bool) (*config.Config, *zap.Logger, string) {
	cfg, resolved, err := loadConfig(configPath)
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}
	debugMode := cfg.Debug || debugFlag
	logger, err := utils.NewLogger(debugMode, jsonLogs)
	if err != nil {
		fatalf("Failed to create logger: %v", err)
	}
	return cfg, logger, resolved
}

func runServer(args []string) {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (per-resume scoring, watcher events)")
	_ = fs.Parse(args)

	cfg, logger, resolvedConfigPath := setup(*configPath, *debug, !*debug)
	defer logger.Sync()
	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("database_path", cfg.Storage.DatabasePath),
		zap.Bool("debug", cfg.Debug || *debug),
	)

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Watch.Directory != "" && cfg.Watch.JobDescription != "" {
		w, err := startInboxWatcher(watchCtx, components.Evaluator, cfg, cfg.Watch.JobDescription, cfg.Watch.Directory, logger)
		if err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer w.Stop()
	}

	srv := server.NewServer(components.Evaluator, components.Store, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	waitForSignal()
	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func waitForSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}

// openDocuments opens each path as a pipeline document named after its base name.
// The returned func closes every opened file.
func openDocuments(paths []string) ([]pipeline.Document, func(), error) {
	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	docs := make([]pipeline.Document, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)
		docs = append(docs, pipeline.Document{Name: filepath.Base(p), Reader: f})
	}
	return docs, closeAll, nil
}

func runEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jdPath := fs.String("jd", "", "job description file (.pdf, .docx or .txt)")
	jobTitle := fs.String("job-title", "", "job title recorded with each evaluation (default from config)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: screener evaluate --jd FILE [flags] RESUME...\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(reorderArgs(fs, args))

	if *jdPath == "" || fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}
	format, err := report.ParseFormat(*outputFormat)
	if err != nil || (format != report.OutputText && format != report.OutputJSON) {
		fatalf("Unknown output format %q; use text or json", *outputFormat)
	}

	cfg, logger, _ := setup(*configPath, *debug, false)
	defer logger.Sync()
	components, err := initializeComponents(cfg, logger)
	if err != nil {
		fatalf("Failed to initialize: %v", err)
	}
	defer components.Close()

	jdDocs, closeJD, err := openDocuments([]string{*jdPath})
	if err != nil {
		fatalf("Failed to open job description: %v", err)
	}
	defer closeJD()
	resumes, closeResumes, err := openDocuments(fs.Args())
	if err != nil {
		fatalf("Failed to open resume: %v", err)
	}
	defer closeResumes()

	result, err := components.Evaluator.EvaluateBatch(context.Background(), *jobTitle, jdDocs[0], resumes)
	if err != nil {
		fatalf("Evaluation failed: %v", err)
	}
	if err := report.WriteBatch(os.Stdout, result, format); err != nil {
		fatalf("Output failed: %v", err)
	}
}

// listFlags are the filter flags shared by list and summary.
type listFlags struct {
	jobTitle *string
	verdict  *string
	minScore *float64
	top      *int
}

func addListFlags(fs *flag.FlagSet) listFlags {
	return listFlags{
		jobTitle: fs.String("job-title", "", "only evaluations for this job title"),
		verdict:  fs.String("verdict", "", "only this verdict: High, Medium or Low"),
		minScore: fs.Float64("min-score", 0, "minimum score (0-100)"),
		top:      fs.Int("top", 0, "keep only the N highest scores (0 = all)"),
	}
}

// buildFilter validates list flags into a report filter.
func buildFilter(jobTitle, verdict string, minScore float64, top int) (report.Filter, error) {
	f := report.Filter{JobTitle: jobTitle, Verdict: models.Verdict(verdict), MinScore: minScore, TopN: top}
	if f.Verdict != "" && !f.Verdict.Valid() {
		return f, fmt.Errorf("invalid verdict %q; use High, Medium or Low", verdict)
	}
	if minScore < 0 || minScore > 100 {
		return f, fmt.Errorf("min-score must be within 0..100")
	}
	if top < 0 {
		return f, fmt.Errorf("top must not be negative")
	}
	return f, nil
}

func (lf listFlags) filter() report.Filter {
	f, err := buildFilter(*lf.jobTitle, *lf.verdict, *lf.minScore, *lf.top)
	if err != nil {
		fatalf("%v", err)
	}
	return f
}

// fetchFiltered opens the store read path and applies f.
func fetchFiltered(configPath string, f report.Filter) []*models.EvaluationRecord {
	cfg, logger, _ := setup(configPath, false, false)
	defer logger.Sync()
	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()
	records, err := store.FetchAll(context.Background())
	if err != nil {
		fatalf("Failed to fetch evaluations: %v", err)
	}
	return f.Apply(records)
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	lf := addListFlags(fs)
	outputFormat := fs.String("output", "text", "output format: text, json, csv or xlsx")
	outFile := fs.String("file", "", "write output to this file instead of stdout (required for xlsx)")
	_ = fs.Parse(args)

	format, err := report.ParseFormat(*outputFormat)
	if err != nil {
		fatalf("%v", err)
	}
	if format == report.OutputXLSX && *outFile == "" {
		fatalf("xlsx output requires --file")
	}
	records := fetchFiltered(*configPath, lf.filter())

	var w io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create %s: %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.WriteRecords(w, records, format); err != nil {
		fatalf("Output failed: %v", err)
	}
	if *outFile != "" {
		fmt.Printf("Wrote %d evaluation(s) to %s\n", len(records), *outFile)
	}
}

func runSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	lf := addListFlags(fs)
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(args)

	format, err := report.ParseFormat(*outputFormat)
	if err != nil || (format != report.OutputText && format != report.OutputJSON) {
		fatalf("Unknown output format %q; use text or json", *outputFormat)
	}
	records := fetchFiltered(*configPath, lf.filter())
	if err := report.WriteSummary(os.Stdout, report.Summarize(records), format); err != nil {
		fatalf("Output failed: %v", err)
	}
}

func runClear(args []string) {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	yes := fs.Bool("yes", false, "confirm deleting every stored evaluation")
	_ = fs.Parse(args)

	if !*yes {
		fatalf("Refusing to delete all evaluations without --yes")
	}
	cfg, logger, _ := setup(*configPath, false, false)
	defer logger.Sync()
	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()
	ctx := context.Background()
	n, err := store.Count(ctx)
	if err != nil {
		fatalf("Count failed: %v", err)
	}
	if err := store.ClearAll(ctx); err != nil {
		fatalf("Clear failed: %v", err)
	}
	fmt.Printf("Deleted %d evaluation(s)\n", n)
}

func runSkills(args []string) {
	fs := flag.NewFlagSet("skills", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jdPath := fs.String("jd", "", "job description file; prints the skills it requires")
	_ = fs.Parse(args)

	cfg, logger, _ := setup(*configPath, false, false)
	defer logger.Sync()
	vocab := skills.NewVocabulary(cfg.Skills.Vocabulary)
	if *jdPath == "" {
		for _, term := range vocab.Terms() {
			fmt.Println(term)
		}
		return
	}
	text, err := extract.NewExtractor().ExtractFile(*jdPath)
	if err != nil {
		fatalf("Failed to read job description: %v", err)
	}
	required := vocab.Derive(text)
	if len(required) == 0 {
		fmt.Println("No known skills found in job description")
		return
	}
	for _, term := range required {
		fmt.Println(term)
	}
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jdPath := fs.String("jd", "", "job description file (default watch.job_description)")
	dir := fs.String("dir", "", "inbox directory (default watch.directory)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args)

	cfg, logger, _ := setup(*configPath, *debug, false)
	defer logger.Sync()
	jd, inbox, err := resolveWatchTargets(cfg, *jdPath, *dir)
	if err != nil {
		fatalf("%v", err)
	}

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		fatalf("Failed to initialize: %v", err)
	}
	defer components.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := startInboxWatcher(ctx, components.Evaluator, cfg, jd, inbox, logger)
	if err != nil {
		fatalf("Failed to start watcher: %v", err)
	}
	defer w.Stop()
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", inbox)
	waitForSignal()
}

// resolveWatchTargets picks the job description and inbox from flags, falling back to config.
func resolveWatchTargets(cfg *config.Config, jdFlag, dirFlag string) (jd, dir string, err error) {
	jd, dir = jdFlag, dirFlag
	if jd == "" {
		jd = cfg.Watch.JobDescription
	}
	if dir == "" {
		dir = cfg.Watch.Directory
	}
	if jd == "" {
		return "", "", errors.New("a job description is required (--jd or watch.job_description)")
	}
	if dir == "" {
		return "", "", errors.New("an inbox directory is required (--dir or watch.directory)")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}
	return jd, absDir, nil
}

// startInboxWatcher extracts the job description once and evaluates every resume that
// lands in dir against it, including files already present.
func startInboxWatcher(ctx context.Context, evaluator *pipeline.Evaluator, cfg *config.Config, jdPath, dir string, logger *zap.Logger) (*watcher.Watcher, error) {
	jdText, err := extract.NewExtractor().ExtractFile(jdPath)
	if err != nil {
		return nil, fmt.Errorf("job description: %w", err)
	}
	required := evaluator.DeriveRequiredSkills(jdText)
	jobTitle := cfg.Evaluation.JobTitle
	logger.Info("inbox watcher starting",
		zap.String("dir", dir),
		zap.String("job_description", jdPath),
		zap.Strings("required_skills", required),
	)
	onFile := func(path string) {
		item := evaluator.EvaluateFile(ctx, jobTitle, jdText, required, path)
		if item.Status == models.BatchItemFailed {
			logger.Warn("inbox resume failed", zap.String("candidate", item.CandidateName), zap.String("error", item.Error))
			return
		}
		logger.Info("inbox resume evaluated",
			zap.String("candidate", item.CandidateName),
			zap.Int64("record_id", item.RecordID),
			zap.Int("score", item.Evaluation.Score),
			zap.String("verdict", string(item.Evaluation.Verdict)),
		)
	}
	w := watcher.NewWatcher(dir, cfg.Evaluation.ResumeExtensions, onFile, watcher.WithLogger(logger))
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	if err := w.SyncExistingFiles(); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}

// statusResponse is the shape of GET /api/v1/status.
type statusResponse struct {
	Evaluations       int64  `json:"evaluations"`
	DatabasePath      string `json:"database_path"`
	DatabaseSizeBytes *int64 `json:"database_size_bytes,omitempty"`
	VocabularySize    int    `json:"vocabulary_size"`
	SemanticProvider  string `json:"semantic_provider"`
	JobTitle          string `json:"job_title"`
}

func runStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = read storage directly)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(args)

	var status statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			fatalf("Status failed: %v", err)
		}
		status = *res
	} else {
		res, err := localStatus(*configPath)
		if err != nil {
			fatalf("Status failed: %v", err)
		}
		status = *res
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fatalf("Output failed: %v", err)
		}
	case "text":
		fmt.Printf("evaluations:        %d   # stored evaluation records\n", status.Evaluations)
		fmt.Printf("database_path:      %s\n", status.DatabasePath)
		if status.DatabaseSizeBytes != nil {
			fmt.Printf("database_size:      %d   # bytes including WAL\n", *status.DatabaseSizeBytes)
		}
		fmt.Printf("vocabulary_size:    %d\n", status.VocabularySize)
		fmt.Printf("semantic_provider:  %s\n", status.SemanticProvider)
		fmt.Printf("job_title:          %s\n", status.JobTitle)
	default:
		fatalf("Unknown output format %q; use text or json", *outputFormat)
	}
}

func localStatus(configPath string) (*statusResponse, error) {
	cfg, logger, _ := setup(configPath, false, false)
	defer logger.Sync()
	components, err := initializeComponents(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer components.Close()
	count, err := components.Store.Count(context.Background())
	if err != nil {
		return nil, fmt.Errorf("count evaluations: %w", err)
	}
	status := &statusResponse{
		Evaluations:      count,
		DatabasePath:     components.Store.Path(),
		VocabularySize:   components.Evaluator.Vocabulary().Len(),
		SemanticProvider: components.Evaluator.Provider(),
		JobTitle:         components.Evaluator.JobTitle(),
	}
	if size, err := storage.DatabaseSizeBytes(components.Store.Path()); err == nil {
		status.DatabaseSizeBytes = &size
	}
	return status, nil
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(strings.TrimRight(serverURL, "/") + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

// Components holds initialized services.
type Components struct {
	Store     *storage.SQLiteStorage
	Evaluator *pipeline.Evaluator
}

func (c *Components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	store, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	semantic, err := scoring.NewSemanticScorer(cfg.Scoring.SemanticProvider, cfg.Scoring.FixedSemanticScore)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize scorer: %w", err)
	}
	evaluator := pipeline.NewEvaluator(
		skills.NewVocabulary(cfg.Skills.Vocabulary),
		scoring.NewScorer(semantic),
		store,
		pipeline.WithLogger(logger),
		pipeline.WithJobTitle(cfg.Evaluation.JobTitle),
	)
	logger.Debug("components initialized",
		zap.String("database_path", store.Path()),
		zap.String("semantic_provider", semantic.Name()),
		zap.Int("vocabulary_size", evaluator.Vocabulary().Len()),
	)
	return &Components{Store: store, Evaluator: evaluator}, nil
}

func printUsage() {
	fmt.Println(`screener - Resume screening against job descriptions

Usage:
  screener server [flags]                     Start the HTTP API
  screener evaluate --jd FILE [flags] RESUME  Evaluate resumes against a job description
  screener list [flags]                       List stored evaluations
  screener summary [flags]                    Summarize stored evaluations
  screener clear --yes                        Delete every stored evaluation
  screener skills [--jd FILE]                 Show the vocabulary or the skills a JD requires
  screener watch --jd FILE [--dir DIR]        Evaluate resumes dropped into an inbox directory
  screener status [flags]                     Show storage and scoring status
  screener version                            Show version
  screener help                               Show this help

Common Flags:
  --config string    Config file path (default: /usr/local/etc/screener/config.yaml, then ./config.yaml)
  --debug            Enable debug logging (server, evaluate, watch)

Evaluate Flags:
  --jd string          Job description file (.pdf, .docx or .txt)
  --job-title string   Job title stored with each evaluation (default from config)
  --output string      text or json (default: text)

List / Summary Flags:
  --job-title string   Only this job title
  --verdict string     Only High, Medium or Low
  --min-score float    Minimum score (0-100)
  --top int            Keep only the N highest scores
  --output string      list: text, json, csv or xlsx; summary: text or json
  --file string        list: write to file (required for xlsx)

Status Flags:
  --server string    Server URL; empty reads storage directly
  --output string    text or json (default: text)

Examples:
  screener evaluate --jd jd.pdf alice.pdf bob.docx carol.txt
  screener evaluate --jd jd.txt --output json resumes/*.pdf
  screener list --verdict High --top 5
  screener list --output xlsx --file evaluations.xlsx
  screener summary --job-title "Data Engineer"
  screener watch --jd jd.pdf --dir ~/inbox
  screener status --server http://localhost:8080`)
}
