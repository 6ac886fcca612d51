// Package reco implements the hybrid recommendation engine use cases.
// It combines collaborative, content-based, and trending signals into a
// single ranked, explained, cached recommendation list per user, and
// records feedback that suppresses disliked items from future results.
package reco

import "errors"

// Sentinel errors for recommendation use case operations.
var (
	// ErrInvalidUserID indicates that the provided user ID is invalid.
	// User IDs must be positive integers.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidContentType indicates that a requested content type is
	// not one of the supported kinds.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidFeedback indicates that a feedback value is not one of
	// like, dislike, dismiss, not_interested.
	ErrInvalidFeedback = errors.New("invalid feedback value")
)
