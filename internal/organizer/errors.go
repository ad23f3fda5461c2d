package organizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMoveFailed marks a file whose folder creation or rename failed.
	ErrMoveFailed = errors.New("move failed")
	// ErrCollisionLimit is returned when every numbered candidate is taken.
	ErrCollisionLimit = errors.New("collision suffixes exhausted")
	// ErrDestinationExists is returned when overwrite_on_race is off and the
	// destination appeared after the collision check.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrLocked is returned when another run holds the lock for the root.
	ErrLocked = errors.New("root is locked by another run")
)

// wrap builds an error message that includes the operation while tagging it
// with marker for errors.Is classification.
func wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	return strings.Join(parts, ": ")
}
