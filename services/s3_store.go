package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"peerfinder_server/models"
	"peerfinder_server/utils"
)

// InitializeS3Client initializes the S3 client from the ambient AWS config
func InitializeS3Client() *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return s3.NewFromConfig(cfg)
}

// S3Store persists the participant dataset as a single CSV object
type S3Store struct {
	Client    *s3.Client
	Bucket    string
	ObjectKey string
}

// LoadAll downloads and decodes the dataset object. A missing object is
// not an error: it decodes to an empty dataset.
func (ss *S3Store) LoadAll(ctx context.Context) ([]models.Participant, error) {
	data, found, err := s3GetObject(ctx, ss.Client, ss.Bucket, ss.ObjectKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !found {
		return []models.Participant{}, nil
	}
	participants, err := utils.DecodeParticipantsCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return participants, nil
}

// SaveAll encodes and overwrites the dataset object
func (ss *S3Store) SaveAll(ctx context.Context, participants []models.Participant) error {
	data, err := utils.EncodeParticipantsCSV(participants)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := s3PutObject(ctx, ss.Client, ss.Bucket, ss.ObjectKey, data, "text/csv"); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// s3GetObject fetches an object body. The found flag is false when the
// object does not exist yet.
func s3GetObject(ctx context.Context, client *s3.Client, bucket, key string) ([]byte, bool, error) {
	output, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get object '%s': %w", key, err)
	}
	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read object '%s': %w", key, err)
	}
	return data, true, nil
}

func s3PutObject(ctx context.Context, client *s3.Client, bucket, key string, body []byte, contentType string) error {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object '%s': %w", key, err)
	}
	return nil
}
