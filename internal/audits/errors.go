package audits

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotQueued    = errors.New("audit is not queued")

	ErrQueueNotConfigured = errors.New("job queue not configured")
)
