package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tableside/internal/domain"
)

// Judge evaluates a trainee's answer to a scenario and produces a scored
// assessment. Implementations may call a model, a rules engine, or a
// scripted table; callers treat them uniformly.
type Judge interface {
	Judge(ctx context.Context, scenario domain.Scenario, response string) (domain.Assessment, error)
}

// MaxResponseLen bounds trainee answers. Anything longer is rejected
// before it reaches the grader.
const MaxResponseLen = 4000

// UnavailableError indicates a transient grading failure: the backing
// provider is down, rate limited, or returned garbage. Callers may retry.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("judge unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// RejectedError indicates the trainee's answer was refused before grading.
// Retrying the same answer will not help.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("response rejected: %s", e.Reason)
}

// checkResponse enforces the shared preconditions on trainee answers.
func checkResponse(response string) error {
	if strings.TrimSpace(response) == "" {
		return &RejectedError{Reason: "empty response"}
	}
	if len(response) > MaxResponseLen {
		return &RejectedError{Reason: fmt.Sprintf("response exceeds %d characters", MaxResponseLen)}
	}
	return nil
}
