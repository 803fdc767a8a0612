package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type notificationItem struct {
	ID           string `dynamodbav:"id"`
	ContractID   string `dynamodbav:"contract_id"`
	Type         string `dynamodbav:"type"`
	Recipient    string `dynamodbav:"recipient"`
	Message      string `dynamodbav:"message"`
	Read         bool   `dynamodbav:"read"`
	ScheduledFor string `dynamodbav:"scheduled_for,omitempty"`
	SentAt       string `dynamodbav:"sent_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists the notification inbox in DynamoDB.
//
// Table: PK id (string).
type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.ContractNotification) (entities.ContractNotification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.ContractNotification{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ContractNotification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) List(ctx context.Context) ([]entities.ContractNotification, error) {
	var notifications []entities.ContractNotification

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			notifications = append(notifications, fromNotificationItem(it))
		}
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

// MarkRead flips the read flag and returns the updated notification. A
// conditional check failure means the notification does not exist; callers
// get a zero value back in that case.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string) (entities.ContractNotification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #read = :read"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeNames: map[string]string{
			"#read": "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.ContractNotification{}, nil
		}
		return entities.ContractNotification{}, err
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContractNotification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.ContractNotification) notificationItem {
	it := notificationItem{
		ID:         n.ID,
		ContractID: n.ContractID,
		Type:       string(n.Type),
		Recipient:  n.Recipient,
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if n.ScheduledFor != nil {
		it.ScheduledFor = n.ScheduledFor.UTC().Format(time.RFC3339Nano)
	}
	if n.SentAt != nil {
		it.SentAt = n.SentAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromNotificationItem(it notificationItem) entities.ContractNotification {
	n := entities.ContractNotification{
		ID:         it.ID,
		ContractID: it.ContractID,
		Type:       entities.NotificationType(it.Type),
		Recipient:  it.Recipient,
		Message:    it.Message,
		Read:       it.Read,
	}
	n.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	if it.ScheduledFor != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ScheduledFor); err == nil {
			n.ScheduledFor = &t
		}
	}
	if it.SentAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.SentAt); err == nil {
			n.SentAt = &t
		}
	}
	return n
}
