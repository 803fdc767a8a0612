package repository

import (
	"context"

	"leaseflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DocumentDynamoStore keeps document bytes in their own table so the
// contract aggregate stays small. Metadata lives on the aggregate.
//
// Table: PK contract_id (string), SK id (string).
type DocumentDynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentStore = (*DocumentDynamoStore)(nil)

func NewDocumentDynamoStore(ddb *dynamodb.Client, tableName string) *DocumentDynamoStore {
	return &DocumentDynamoStore{ddb: ddb, tableName: tableName}
}

func (s *DocumentDynamoStore) Put(ctx context.Context, contractID, documentID, contentType string, body []byte) error {
	_, err := s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]types.AttributeValue{
			"contract_id":  &types.AttributeValueMemberS{Value: contractID},
			"id":           &types.AttributeValueMemberS{Value: documentID},
			"content_type": &types.AttributeValueMemberS{Value: contentType},
			"body":         &types.AttributeValueMemberB{Value: body},
		},
	})
	return err
}

func (s *DocumentDynamoStore) Get(ctx context.Context, contractID, documentID string) ([]byte, string, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"contract_id": &types.AttributeValueMemberS{Value: contractID},
			"id":          &types.AttributeValueMemberS{Value: documentID},
		},
	})
	if err != nil {
		return nil, "", err
	}
	if len(out.Item) == 0 {
		return nil, "", nil
	}

	var body []byte
	if b, ok := out.Item["body"].(*types.AttributeValueMemberB); ok {
		body = b.Value
	}
	contentType := ""
	if ct, ok := out.Item["content_type"].(*types.AttributeValueMemberS); ok {
		contentType = ct.Value
	}
	return body, contentType, nil
}

func (s *DocumentDynamoStore) Delete(ctx context.Context, contractID, documentID string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"contract_id": &types.AttributeValueMemberS{Value: contractID},
			"id":          &types.AttributeValueMemberS{Value: documentID},
		},
	})
	return err
}
