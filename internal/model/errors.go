package model

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable means the historical window is empty: the store was
// never loaded, or loaded empty. Callers retry after a successful load.
var ErrDataUnavailable = errors.New("no historical data available")

// ErrInvalidRequest means the caller supplied malformed input (non-positive
// horizon, out-of-range confidence level, empty forecast sequence).
var ErrInvalidRequest = errors.New("invalid request")

// SourceError reports an ingestion source that exists but cannot be parsed.
// It is recovered per-source during load: the source is skipped and the load
// continues with the remaining sources.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
