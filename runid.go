package simfolio

import (
	"fmt"

	"github.com/google/uuid"
)

// RunLabelFormat formats the creation time of a run into its label.
const RunLabelFormat = "20060102150405"

// RunID identifies a Run within a session.
//
// IDs are time-ordered UUIDs: unlike second-resolution timestamps, two runs
// started within the same second never share an ID.
type RunID string

// NewRunID returns a fresh RunID.
func NewRunID() (RunID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("cannot generate run id: %w", err)
	}
	return RunID(id.String()), nil
}

// ParseRunID validates s as a RunID.
func ParseRunID(s string) (RunID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid run id %q: %w", s, err)
	}
	return RunID(id.String()), nil
}

func (id RunID) String() string { return string(id) }
