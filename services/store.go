package services

import (
	"context"
	"errors"

	"peerfinder_server/models"
)

// ErrStoreUnavailable wraps any transport or storage failure while reading
// or writing the dataset. Safe to retry the whole operation: writes are
// whole-dataset and all-or-nothing per attempt.
var ErrStoreUnavailable = errors.New("participant store unavailable")

// ParticipantStore is the durable home of the matching dataset. The core
// only ever reads and writes the dataset as a whole; there is no row-level
// update primitive.
type ParticipantStore interface {
	// LoadAll returns the full dataset in insertion order. A store with no
	// dataset yet returns an empty, schema-complete dataset.
	LoadAll(ctx context.Context) ([]models.Participant, error)
	// SaveAll overwrites the full dataset.
	SaveAll(ctx context.Context, participants []models.Participant) error
}
