package db

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError indicates a record lookup by id matched nothing. It
// carries the record kind and id so the caller can report or retry.
type NotFoundError struct {
	Kind string
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
