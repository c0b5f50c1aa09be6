// Package ingestion turns job postings from URLs, files and pasted text into clean text.
package ingestion

import "errors"

var (
	// ErrInvalidURL is returned when a URL is malformed or not http(s)
	ErrInvalidURL = errors.New("invalid URL")
	// ErrFetchFailed is returned when the page could not be downloaded
	ErrFetchFailed = errors.New("couldn't fetch the webpage")
	// ErrContentTooShort is returned when too little text was extracted to be a job description
	ErrContentTooShort = errors.New("couldn't extract job description, try pasting the text instead")
	// ErrUnsupportedFormat is returned for file types that cannot be read
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
