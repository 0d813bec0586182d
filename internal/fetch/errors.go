package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrDownload wraps failures reported by the download provider.
	ErrDownload = errors.New("download failed")
	// ErrLocked is returned when another run holds the destination lock.
	ErrLocked = errors.New("destination is locked: another fetch may be in progress")
)

// BinaryNotFoundError reports a download whose tree lacks the expected
// executable.
type BinaryNotFoundError struct {
	Platform string
	Binary   string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("binary %s not found in extracted folder for %s", e.Binary, e.Platform)
}
