// Package profile loads, edits, and persists the user's career profile.
package profile

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents an error while persisting a profile
type SaveError struct {
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("save error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("save error: %s", e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// IndexError is returned when an edit targets an entry that does not exist
type IndexError struct {
	Section string
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (have %d)", e.Section, e.Index, e.Len)
}
