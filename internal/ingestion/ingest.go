package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resumeforge/internal/fetch"
)

// DefaultMinLength is the shortest cleaned text accepted as a job description.
const DefaultMinLength = 100

// Output file names written by WriteOutput
const (
	CleanedFileName  = "job_posting.cleaned.txt"
	MetadataFileName = "job_posting.meta.json"
)

// Ingester turns job posting sources into cleaned text
type Ingester struct {
	MinLength  int
	UseBrowser bool

	logger *zap.Logger
	now    func() time.Time
	page   func(ctx context.Context, url string, useBrowser bool, log *zap.Logger) (string, fetch.Platform, error)
}

// New returns an Ingester with the default minimum length.
func New(log *zap.Logger) *Ingester {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingester{
		MinLength: DefaultMinLength,
		logger:    log,
		now:       time.Now,
		page:      fetch.Page,
	}
}

// FromURL downloads a posting and extracts its description. Only http and https
// URLs are accepted.
func (in *Ingester) FromURL(ctx context.Context, rawURL string) (string, *Metadata, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := fetch.ValidateURL(rawURL); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	text, platform, err := in.page(ctx, rawURL, in.UseBrowser, in.logger)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	in.logger.Debug("extracted posting",
		zap.String("url", rawURL),
		zap.String("platform", string(platform)),
		zap.Int("chars", len(text)),
	)

	cleaned, meta, err := in.finish(SourceURL, text)
	if err != nil {
		return "", nil, err
	}
	meta.URL = rawURL
	meta.Platform = string(platform)
	return cleaned, meta, nil
}

// FromFile reads a .txt, .md, .pdf or .docx posting.
func (in *Ingester) FromFile(_ context.Context, path string) (string, *Metadata, error) {
	raw, format, err := ReadDocument(path)
	if err != nil {
		return "", nil, err
	}

	cleaned, meta, err := in.finish(SourceFile, raw)
	if err != nil {
		return "", nil, err
	}
	meta.Path = path
	meta.Format = format
	return cleaned, meta, nil
}

// FromText cleans pasted text.
func (in *Ingester) FromText(text string) (string, *Metadata, error) {
	return in.finish(SourceText, text)
}

func (in *Ingester) finish(source, raw string) (string, *Metadata, error) {
	cleaned := CleanText(raw)
	minLength := in.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	if n := len([]rune(cleaned)); n < minLength {
		return "", nil, fmt.Errorf("%w (%d chars, need %d)", ErrContentTooShort, n, minLength)
	}
	return cleaned, newMetadata(source, cleaned, in.now()), nil
}

// IsUserError reports whether err is an input problem the user can fix by supplying
// different input, as opposed to an I/O failure.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrContentTooShort) ||
		errors.Is(err, ErrUnsupportedFormat)
}

// WriteOutput writes the cleaned text and metadata into outDir.
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(outDir, CleanedFileName), []byte(cleanedText), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, MetadataFileName), metaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	return nil
}
