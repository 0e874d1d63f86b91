package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"peerfinder_server/models"
)

// DynamoStore is the DynamoDB-backed ParticipantStore. It keeps the same
// whole-dataset read/write contract as the CSV store: LoadAll scans the
// table, SaveAll writes every row back.
type DynamoStore struct {
	Dynamo *DynamoService
	Table  string
}

// LoadAll scans the participant table. Scan order is not insertion order,
// so rows are re-sorted by registration timestamp to keep the first-fit
// pool deterministic.
func (ds *DynamoStore) LoadAll(ctx context.Context) ([]models.Participant, error) {
	participants := []models.Participant{}
	if err := ds.Dynamo.ScanAll(ctx, ds.tableName(), &participants); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].RegisteredAt < participants[j].RegisteredAt
	})
	return participants, nil
}

// SaveAll puts every participant row. The core never deletes participants,
// so put-only writes keep the table equal to the dataset.
func (ds *DynamoStore) SaveAll(ctx context.Context, participants []models.Participant) error {
	writeRequests := make([]ddbtypes.WriteRequest, 0, len(participants))
	for _, p := range participants {
		item, err := attributevalue.MarshalMap(p)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal participant '%s': %v", ErrStoreUnavailable, p.ID, err)
		}
		writeRequests = append(writeRequests, ddbtypes.WriteRequest{
			PutRequest: &ddbtypes.PutRequest{Item: item},
		})
	}
	if err := ds.Dynamo.BatchWriteItems(ctx, ds.tableName(), writeRequests); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (ds *DynamoStore) tableName() string {
	if ds.Table != "" {
		return ds.Table
	}
	return models.ParticipantsTable
}
