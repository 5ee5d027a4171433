package domain

import "errors"

// Error kinds surfaced by the scheduling engine. Package-level sentinels wrap one of these,
// so callers may check either the precise error or its kind with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrIneligible          = errors.New("ineligible")
	ErrConflict            = errors.New("conflict")
	ErrNoTrainersAvailable = errors.New("no trainers available")
	ErrInvalidState        = errors.New("invalid state")
	ErrInvalidInput        = errors.New("invalid input")
)
