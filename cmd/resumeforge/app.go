package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/config"
	"github.com/jonathan/resumeforge/internal/db"
	"github.com/jonathan/resumeforge/internal/ingestion"
	"github.com/jonathan/resumeforge/internal/llm"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/jonathan/resumeforge/internal/profile"
	"github.com/jonathan/resumeforge/internal/schemas"
	"github.com/jonathan/resumeforge/internal/storage"
	"github.com/jonathan/resumeforge/internal/types"
)

// env carries the loaded configuration and logger for a command run
type env struct {
	cfg *config.Config
	log *zap.Logger
}

// newLLMClient is swapped out in tests
var newLLMClient = llm.NewClient

func setup() (*env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(jsonLog, debugLog)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &env{cfg: cfg, log: log}, nil
}

func (e *env) llmClient(ctx context.Context) (llm.Client, error) {
	if e.cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set RESUMEFORGE_API_KEY, the provider's key variable, or api_key_file)")
	}
	llmCfg := e.cfg.LLMConfig()
	client, err := newLLMClient(ctx, llmCfg, e.cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	logger.WithLLM(e.log, string(llmCfg.Provider), llmCfg.GetModel(llm.TierStandard)).Debug("llm client ready")
	return client, nil
}

// profileStore opens PostgreSQL when a database URL is configured and the JSON file
// otherwise. The returned func releases the store.
func (e *env) profileStore(ctx context.Context, dbURL, path string) (profile.Store, func(), error) {
	if dbURL == "" {
		dbURL = e.cfg.DatabaseURL
	}
	if dbURL != "" {
		database, err := db.Connect(ctx, dbURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return database.ProfileStore(db.DefaultProfileID), database.Close, nil
	}

	if path == "" {
		path = e.cfg.ProfilePath
	}
	return profile.NewFileStore(path), func() {}, nil
}

// jobText ingests the job description from exactly one of a file or a URL.
func (e *env) jobText(ctx context.Context, jobFile, jobURL string, useBrowser bool) (string, error) {
	if jobFile == "" {
		jobFile = e.cfg.Job
	}
	if jobURL == "" {
		jobURL = e.cfg.JobURL
	}
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	in := ingestion.New(e.log)
	in.MinLength = e.cfg.MinJDLength
	in.UseBrowser = useBrowser || e.cfg.UseBrowser

	var text string
	var err error
	if jobFile != "" {
		text, _, err = in.FromFile(ctx, jobFile)
	} else {
		text, _, err = in.FromURL(ctx, jobURL)
	}
	if err != nil {
		return "", fmt.Errorf("failed to ingest job description: %w", err)
	}
	return text, nil
}

// destination resolves --out into a sink. The returned name is non-empty when out
// names a specific local file.
func (e *env) destination(ctx context.Context, out string) (storage.Sink, string, error) {
	if out == "" {
		out = e.cfg.Out
	}
	dest, err := storage.ParseDestination(out)
	if err != nil {
		return nil, "", err
	}

	s3cfg := storage.S3Config{
		Bucket:    e.cfg.S3.Bucket,
		Prefix:    e.cfg.S3.Prefix,
		Region:    e.cfg.S3.Region,
		Endpoint:  e.cfg.S3.Endpoint,
		AccessKey: e.cfg.S3.AccessKey,
		SecretKey: e.cfg.S3.SecretKey,
	}
	if dest.IsS3() {
		s3cfg.Bucket = dest.Bucket
		s3cfg.Prefix = dest.Key
	}
	if dest.IsS3() || (out == "" && s3cfg.Bucket != "") {
		sink, err := storage.NewS3Sink(ctx, s3cfg)
		if err != nil {
			return nil, "", err
		}
		return sink, "", nil
	}

	if filepath.Ext(dest.Key) != "" {
		return &storage.FileSink{Dir: filepath.Dir(dest.Key)}, filepath.Base(dest.Key), nil
	}
	return &storage.FileSink{Dir: dest.Key}, "", nil
}

func readAnalysis(path string) (*types.JobAnalysis, error) {
	if path == "" {
		return nil, fmt.Errorf("--analysis is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}
	if err := schemas.ValidateJobAnalysis(string(data)); err != nil {
		return nil, fmt.Errorf("invalid analysis file: %w", err)
	}

	var analysis types.JobAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis file: %w", err)
	}
	return &analysis, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
