package apperrors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSourceNotFound     = errors.New("source not found")
	ErrMonitoringPaused   = errors.New("monitoring is paused for this source")
	ErrStorageUnavailable = errors.New("persistent storage unavailable")
	ErrStreamDisconnected = errors.New("stream disconnected")
	ErrNoDataAvailable    = errors.New("no health data available")
)

// ThrottledError rejects a manual refresh issued inside the cooldown window.
type ThrottledError struct {
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("manual refresh throttled, retry in %s", e.RetryAfter.Round(time.Millisecond))
}

func NewThrottledError(retryAfter time.Duration) error {
	return &ThrottledError{RetryAfter: retryAfter}
}
