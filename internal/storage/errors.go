// Package storage writes rendered documents to the local disk or an S3-compatible bucket.
package storage

import "fmt"

// UploadError represents a failure to store a document
type UploadError struct {
	Location string
	Message  string
	Cause    error
}

func (e *UploadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upload error for %s: %s: %v", e.Location, e.Message, e.Cause)
	}
	return fmt.Sprintf("upload error for %s: %s", e.Location, e.Message)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}
