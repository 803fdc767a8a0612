package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type templateItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Terms       string `dynamodbav:"terms"`
	Clauses     string `dynamodbav:"clauses,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// TemplateDynamoRepository reads contract templates from DynamoDB.
type TemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractTemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb *dynamodb.Client, tableName string) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TemplateDynamoRepository) List(ctx context.Context) ([]entities.ContractTemplate, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	templates := make([]entities.ContractTemplate, 0, len(out.Items))
	for _, item := range out.Items {
		var it templateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		t, err := fromTemplateItem(it)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	sort.SliceStable(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

func (r *TemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.ContractTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractTemplate{}, nil
	}

	var it templateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractTemplate{}, err
	}
	return fromTemplateItem(it)
}

func fromTemplateItem(it templateItem) (entities.ContractTemplate, error) {
	t := entities.ContractTemplate{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
	}
	if err := json.Unmarshal([]byte(it.Terms), &t.Terms); err != nil {
		return entities.ContractTemplate{}, err
	}
	if it.Clauses != "" {
		if err := json.Unmarshal([]byte(it.Clauses), &t.Clauses); err != nil {
			return entities.ContractTemplate{}, err
		}
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return t, nil
}
