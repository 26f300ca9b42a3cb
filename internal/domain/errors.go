package domain

import "errors"

// Sentinel errors shared across services, repositories and delivery.
var (
	// ErrIDRequired is returned before any backend call when a document id is empty.
	ErrIDRequired = errors.New("id required")
	// ErrNotFound is returned by the store when an update targets a missing document.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is wrapped by validation failures; the message names the field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidDate is returned when an event date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("date must be in format YYYY-MM-DD")
)
