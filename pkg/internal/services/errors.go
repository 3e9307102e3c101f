package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a primarily addressed entity (article by
// slug, account by id or name, comment by id) does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports required fields that were missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input in fields: %s", strings.Join(e.Fields, ", "))
}

func notFound(kind string) error {
	return fmt.Errorf("%s %w", kind, ErrNotFound)
}
