package domain

import "errors"

var (
	// ErrNotFound means the requested slug or id has no matching document.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers malformed or missing required fields on writes.
	ErrValidation = errors.New("validation failed")
	// ErrStorageUnavailable wraps connectivity failures so callers can tell
	// "no results" apart from "storage down".
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrUpstream covers third-party API failures (image host, weather).
	ErrUpstream = errors.New("upstream service failed")
	// ErrSlugExhausted is returned when slug allocation runs out of suffixes.
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)
