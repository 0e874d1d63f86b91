package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"peerfinder_server/models"
)

const (
	defaultStoreTimeout = 10 * time.Second
	saveAttempts        = 3
	saveRetryDelay      = 200 * time.Millisecond
)

// DatasetService owns the read-modify-write discipline for the shared
// dataset. Every mutating operation in the system goes through Update,
// which holds one coarse write lock for the full load-compute-save span,
// so two concurrent requests can never consume the same candidate.
type DatasetService struct {
	Store   ParticipantStore
	Timeout time.Duration

	mu sync.Mutex
}

// Load returns the latest persisted snapshot without taking the write
// lock. For read-only operations (status lookup, admin listing).
func (ds *DatasetService) Load(ctx context.Context) ([]models.Participant, error) {
	ctx, cancel := ds.withTimeout(ctx)
	defer cancel()
	dataset, err := ds.Store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return dataset, nil
}

// Update loads the dataset, applies fn under the write lock, and persists
// the result when fn reports a change. fn receives the dataset in
// insertion order and may mutate rows in place or append; it returns the
// (possibly extended) dataset, whether anything changed, and an error
// that aborts the update without persisting.
func (ds *DatasetService) Update(ctx context.Context, fn func(dataset []models.Participant) ([]models.Participant, bool, error)) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	loadCtx, cancel := ds.withTimeout(ctx)
	dataset, err := ds.Store.LoadAll(loadCtx)
	cancel()
	if err != nil {
		return err
	}

	dataset, changed, err := fn(dataset)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	var saveErr error
	for attempt := 1; attempt <= saveAttempts; attempt++ {
		saveCtx, cancel := ds.withTimeout(ctx)
		saveErr = ds.Store.SaveAll(saveCtx, dataset)
		cancel()
		if saveErr == nil {
			return nil
		}
		log.Printf("Dataset save attempt %d/%d failed: %v", attempt, saveAttempts, saveErr)
		if attempt < saveAttempts {
			time.Sleep(saveRetryDelay)
		}
	}
	return fmt.Errorf("%w: save failed after %d attempts: %v", ErrStoreUnavailable, saveAttempts, saveErr)
}

func (ds *DatasetService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := ds.Timeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
