package repository

import (
	"context"

	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type notificationItem struct {
	ID                string `dynamodbav:"id"`
	Type              string `dynamodbav:"notification_type"`
	BookingID         string `dynamodbav:"booking_id,omitempty"`
	ScrapBuyerID      string `dynamodbav:"scrap_buyer_id,omitempty"`
	Recipient         string `dynamodbav:"recipient"`
	EmailSent         bool   `dynamodbav:"email_sent"`
	ProviderMessageID string `dynamodbav:"provider_message_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository is an append-only log of outgoing emails (PK: id).
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:                n.ID,
		Type:              string(n.Type),
		BookingID:         n.BookingID,
		ScrapBuyerID:      n.ScrapBuyerID,
		Recipient:         n.Recipient,
		EmailSent:         n.EmailSent,
		ProviderMessageID: n.ProviderMessageID,
		CreatedAt:         formatTime(n.CreatedAt),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}
