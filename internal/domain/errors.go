// Package domain holds the storage-agnostic sentinels every repository
// implementation returns, so use cases never see driver errors.
package domain

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrOverlap   = errors.New("overlapping time window")
	// ErrStale means a conditional update found the row in another state.
	ErrStale = errors.New("record changed concurrently")
)

// OrNotFound swaps ErrNotFound for the caller's business error and passes
// everything else through.
func OrNotFound(err, notFound error) error {
	if errors.Is(err, ErrNotFound) {
		return notFound
	}
	return err
}
