package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sink stores a named document and returns where it ended up
type Sink interface {
	Put(ctx context.Context, name string, content []byte) (string, error)
}

// Destination is a parsed --out value
type Destination struct {
	Bucket string // empty for local paths
	Key    string // object key or file path; may be a directory-like prefix
}

// IsS3 reports whether the destination is a bucket.
func (d Destination) IsS3() bool {
	return d.Bucket != ""
}

// ParseDestination accepts s3://bucket/key or a local path.
func ParseDestination(raw string) (Destination, error) {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return Destination{}, fmt.Errorf("invalid destination %q: missing bucket", raw)
		}
		return Destination{Bucket: bucket, Key: key}, nil
	}
	return Destination{Key: raw}, nil
}

// ContentType guesses a MIME type from the file extension.
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".tex":
		return "application/x-tex"
	case ".md":
		return "text/markdown; charset=utf-8"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// FileSink writes documents under Dir
type FileSink struct {
	Dir string
}

// Put writes content to Dir/name, creating Dir if needed.
func (s *FileSink) Put(_ context.Context, name string, content []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &UploadError{Location: dir, Message: "failed to create directory", Cause: err}
	}

	target := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", &UploadError{Location: target, Message: "failed to write file", Cause: err}
	}
	return target, nil
}
