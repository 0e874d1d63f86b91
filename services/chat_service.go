package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	socketio "github.com/googollee/go-socket.io"

	"peerfinder_server/models"
	"peerfinder_server/socket"
)

// ErrNotMatched indicates a message-board action by a participant who is
// not currently matched to a group
var ErrNotMatched = errors.New("participant is not matched to a group")

// ChatService is the message board for matched groups. Messages live in
// DynamoDB keyed by group id and are broadcast to member socket rooms.
type ChatService struct {
	Dynamo  *DynamoService
	Dataset *DatasetService
	Server  *socketio.Server
}

// SendMessage posts a message to the sender's own group board
func (cs *ChatService) SendMessage(ctx context.Context, senderID, content string) (*models.GroupMessage, error) {
	dataset, err := cs.Dataset.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := findParticipant(dataset, senderID)
	if idx < 0 {
		return nil, ErrParticipantNotFound
	}
	sender := dataset[idx]
	if !sender.Matched || sender.GroupID == "" {
		return nil, ErrNotMatched
	}

	msg := models.GroupMessage{
		MessageID:  uuid.NewString(),
		GroupID:    sender.GroupID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Content:    content,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := cs.Dynamo.PutItem(ctx, models.GroupMessagesTable, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if cs.Server != nil {
		for _, member := range membersOf(dataset, sender.GroupID) {
			cs.Server.BroadcastToRoom("/", socket.Room(member.ID), "newMessage", msg)
		}
	}
	return &msg, nil
}

// GetMessages returns the participant's group board in chronological order
func (cs *ChatService) GetMessages(ctx context.Context, participantID string) ([]models.GroupMessage, error) {
	dataset, err := cs.Dataset.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := findParticipant(dataset, participantID)
	if idx < 0 {
		return nil, ErrParticipantNotFound
	}
	p := dataset[idx]
	if !p.Matched || p.GroupID == "" {
		return nil, ErrNotMatched
	}

	messages := []models.GroupMessage{}
	err = cs.Dynamo.QueryItems(ctx, models.GroupMessagesTable, "groupId = :groupId",
		map[string]ddbtypes.AttributeValue{
			":groupId": &ddbtypes.AttributeValueMemberS{Value: p.GroupID},
		}, &messages)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, nil
}
