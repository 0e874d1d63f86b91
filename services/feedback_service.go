package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"peerfinder_server/models"
	"peerfinder_server/utils"
)

// FeedbackService appends anonymous ratings to a feedback CSV object on S3
type FeedbackService struct {
	Client    *s3.Client
	Bucket    string
	ObjectKey string

	mu sync.Mutex
}

// Submit records one feedback entry
func (fs *FeedbackService) Submit(ctx context.Context, rating int, comment string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	entries, err := fs.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, models.FeedbackEntry{
		ID:        uuid.NewString(),
		Rating:    rating,
		Comment:   comment,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	data, err := utils.EncodeFeedbackCSV(entries)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := s3PutObject(ctx, fs.Client, fs.Bucket, fs.ObjectKey, data, "text/csv"); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ExportCSV returns the raw feedback CSV for the admin download
func (fs *FeedbackService) ExportCSV(ctx context.Context) ([]byte, error) {
	entries, err := fs.load(ctx)
	if err != nil {
		return nil, err
	}
	data, err := utils.EncodeFeedbackCSV(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return data, nil
}

func (fs *FeedbackService) load(ctx context.Context) ([]models.FeedbackEntry, error) {
	data, found, err := s3GetObject(ctx, fs.Client, fs.Bucket, fs.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !found {
		return []models.FeedbackEntry{}, nil
	}
	entries, err := utils.DecodeFeedbackCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return entries, nil
}
