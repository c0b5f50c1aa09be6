package recommend

import "fmt"

// SuggestionError represents a failed or unusable skill suggestion call
type SuggestionError struct {
	Message string
	Cause   error
}

func (e *SuggestionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SuggestionError) Unwrap() error {
	return e.Cause
}
