package archive

import "errors"

var (
	// ErrEmptyQuery is returned by SearchItems when no query text is given.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrEmptyIdentifier is returned when an operation needs an identifier
	// and none was provided.
	ErrEmptyIdentifier = errors.New("identifier is empty")

	// ErrInvalidTimeFilter is returned when a time filter is not in
	// YYYY, YYYYMM, or YYYYMMDD form.
	ErrInvalidTimeFilter = errors.New("invalid time filter")

	// ErrRequestFailed is returned when the archive is unreachable or
	// answers with a non-success status.
	ErrRequestFailed = errors.New("archive request failed")

	// ErrNotFound is returned when an identifier does not exist upstream.
	ErrNotFound = errors.New("identifier not found")

	// ErrAssembly is returned by Show.GetTranscript when any caption window
	// fetch fails. No partial transcript is produced.
	ErrAssembly = errors.New("transcript assembly failed")
)
