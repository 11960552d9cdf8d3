package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError indicates a malformed search query. It is raised before
// any candidate data is touched and names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NotFoundError indicates a candidate lookup on an unknown id.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// TimeoutError indicates the scoring pass exceeded its request budget.
// Callers can retry with narrower filters or a smaller limit.
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("scoring exceeded the %s budget", e.Budget)
}
