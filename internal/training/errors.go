package training

import "errors"

var (
	// ErrTrainingUnavailable means judging or persistence failed after the
	// configured retries. The session's in-memory state is untouched, so
	// the caller may repeat the operation.
	ErrTrainingUnavailable = errors.New("training unavailable")

	// ErrInvalidResponse means the trainee's answer was permanently
	// rejected before grading. Retrying the same answer will not help.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrSessionNotFound means the handle does not refer to a live session.
	ErrSessionNotFound = errors.New("session not found")
)
