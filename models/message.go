package models

// GroupMessage is one message on a matched group's message board
type GroupMessage struct {
	MessageID  string `json:"messageId" dynamodbav:"messageId"`
	GroupID    string `json:"groupId" dynamodbav:"groupId"`
	SenderID   string `json:"senderId" dynamodbav:"senderId"`
	SenderName string `json:"senderName" dynamodbav:"senderName"`
	Content    string `json:"content" dynamodbav:"content"`
	CreatedAt  string `json:"createdAt" dynamodbav:"createdAt"`
}

// GroupMessagesTable is the DynamoDB table name for group message boards.
// Partition key: groupId, sort key: createdAt.
const GroupMessagesTable = "PeerFinderGroupMessages"
