package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resumeforge/internal/schemas"
	"github.com/jonathan/resumeforge/internal/types"
)

// DefaultPath is where the CLI keeps the profile when nothing else is configured
const DefaultPath = "data/user_profile.json"

// Store persists a single profile
type Store interface {
	Load(ctx context.Context) (*types.Profile, error)
	Save(ctx context.Context, p *types.Profile) error
}

// FileStore keeps the profile as an indented JSON document on disk.
type FileStore struct {
	Path string
	now  func() time.Time
}

// NewFileStore returns a FileStore for path, or DefaultPath when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path, now: time.Now}
}

// Load reads the profile. A missing file yields an empty profile.
func (s *FileStore) Load(_ context.Context) (*types.Profile, error) {
	content, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return types.NewProfile(), nil
	}
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", s.Path),
			Cause:   err,
		}
	}
	return Decode(content)
}

// Save stamps last_updated and atomically replaces the profile file, creating parent
// directories as needed.
func (s *FileStore) Save(_ context.Context, p *types.Profile) error {
	if p == nil {
		return &SaveError{Message: "profile is nil"}
	}
	Touch(p, s.now)

	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return &SaveError{Message: "failed to marshal profile", Cause: err}
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SaveError{Message: fmt.Sprintf("failed to create directory %s", dir), Cause: err}
		}
	}

	if err := writeFileAtomic(s.Path, content); err != nil {
		return &SaveError{Message: fmt.Sprintf("failed to write file %s", s.Path), Cause: err}
	}
	return nil
}

// writeFileAtomic writes content to a temp file next to path and renames it into place,
// so readers see either the old profile or the new one.
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(content); err != nil {
		tmp.Close() //nolint:errcheck
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Decode validates content against the profile schema and unmarshals it.
func Decode(content []byte) (*types.Profile, error) {
	if err := schemas.ValidateProfile(content); err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}

	var p types.Profile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
	}
	return &p, nil
}

// Touch sets LastUpdated to the current time in RFC3339.
func Touch(p *types.Profile, now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	p.LastUpdated = now().UTC().Format(time.RFC3339)
}
