package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// contractItem is the DynamoDB row for a contract. Filterable/sortable
// columns are flattened; the full aggregate travels as a JSON payload so the
// row never drifts from the domain shape.
type contractItem struct {
	ID         string  `dynamodbav:"id"`
	PropertyID string  `dynamodbav:"property_id"`
	TenantID   string  `dynamodbav:"tenant_id"`
	Status     string  `dynamodbav:"status"`
	RentAmount float64 `dynamodbav:"rent_amount"`
	StartDate  string  `dynamodbav:"start_date"`
	EndDate    string  `dynamodbav:"end_date"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
	Payload    string  `dynamodbav:"payload"`
}

type contractEventItem struct {
	ID          string `dynamodbav:"id"`
	ContractID  string `dynamodbav:"contract_id"`
	Type        string `dynamodbav:"type"`
	Description string `dynamodbav:"description"`
	Actor       string `dynamodbav:"actor,omitempty"`
	Timestamp   string `dynamodbav:"timestamp"`
	Data        string `dynamodbav:"data,omitempty"`
}

// ContractDynamoRepository persists Contract aggregates in DynamoDB.
//
// Table requirements:
//   - contracts: PK id (string)
//   - events:    PK contract_id (string), SK id (string)
type ContractDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	eventsTable string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client, tableName, eventsTable string) *ContractDynamoRepository {
	return &ContractDynamoRepository{ddb: ddb, tableName: tableName, eventsTable: eventsTable}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it, err := toContractItem(c)
	if err != nil {
		return entities.Contract{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it)
}

// Save overwrites the whole aggregate. Lifecycle guards run in the domain
// layer before Save is ever reached.
func (r *ContractDynamoRepository) Save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	it, err := toContractItem(c)
	if err != nil {
		return entities.Contract{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// Search scans the table and filters/sorts/pages in memory. The contract
// table is per-hoster sized; a scan stays well inside one page of results
// for the intended deployments. Limit < 0 returns everything.
func (r *ContractDynamoRepository) Search(ctx context.Context, q interfaces.ContractQuery) ([]entities.Contract, int, error) {
	var contracts []entities.Contract

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, 0, err
		}
		for _, item := range out.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, 0, err
			}
			c, err := fromContractItem(it)
			if err != nil {
				return nil, 0, err
			}
			if matchesQuery(c, q) {
				contracts = append(contracts, c)
			}
		}
	}

	sortContracts(contracts, q.SortBy, q.SortOrder)
	total := len(contracts)

	if q.Limit < 0 {
		return contracts, total, nil
	}
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= total {
		return nil, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return contracts[start:end], total, nil
}

func matchesQuery(c entities.Contract, q interfaces.ContractQuery) bool {
	if q.Status != "" && c.Status != q.Status {
		return false
	}
	if q.PropertyID != "" && c.PropertyID != q.PropertyID {
		return false
	}
	if q.TenantID != "" && !strings.EqualFold(c.Tenant.Email, q.TenantID) && c.Tenant.GovernmentID != q.TenantID {
		return false
	}
	return true
}

func sortContracts(contracts []entities.Contract, sortBy, sortOrder string) {
	less := func(a, b entities.Contract) bool { return a.CreatedAt.Before(b.CreatedAt) }
	switch sortBy {
	case "startDate":
		less = func(a, b entities.Contract) bool { return a.StartDate.Before(b.StartDate) }
	case "endDate":
		less = func(a, b entities.Contract) bool { return a.EndDate.Before(b.EndDate) }
	case "rentAmount":
		less = func(a, b entities.Contract) bool { return a.Terms.RentAmount < b.Terms.RentAmount }
	}
	asc := sortOrder != "desc"
	sort.SliceStable(contracts, func(i, j int) bool {
		if asc {
			return less(contracts[i], contracts[j])
		}
		return less(contracts[j], contracts[i])
	})
}

func (r *ContractDynamoRepository) AppendEvent(ctx context.Context, e entities.ContractEvent) error {
	it := contractEventItem{
		ID:          e.ID,
		ContractID:  e.ContractID,
		Type:        e.Type,
		Description: e.Description,
		Actor:       e.Actor,
		Timestamp:   e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if len(e.Data) > 0 {
		b, err := json.Marshal(e.Data)
		if err != nil {
			return err
		}
		it.Data = string(b)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.eventsTable),
		Item:      av,
	})
	return err
}

func (r *ContractDynamoRepository) ListEvents(ctx context.Context, contractID string) ([]entities.ContractEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.eventsTable),
		KeyConditionExpression: aws.String("#cid = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "contract_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.ContractEvent, 0, len(out.Items))
	for _, item := range out.Items {
		var it contractEventItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		e := entities.ContractEvent{
			ID:          it.ID,
			ContractID:  it.ContractID,
			Type:        it.Type,
			Description: it.Description,
			Actor:       it.Actor,
		}
		e.Timestamp, _ = time.Parse(time.RFC3339Nano, it.Timestamp)
		if it.Data != "" {
			_ = json.Unmarshal([]byte(it.Data), &e.Data)
		}
		events = append(events, e)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })
	return events, nil
}

func toContractItem(c entities.Contract) (contractItem, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return contractItem{}, err
	}
	return contractItem{
		ID:         c.ID,
		PropertyID: c.PropertyID,
		TenantID:   c.Tenant.Email,
		Status:     string(c.Status),
		RentAmount: c.Terms.RentAmount,
		StartDate:  c.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:    c.EndDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Payload:    string(payload),
	}, nil
}

func fromContractItem(it contractItem) (entities.Contract, error) {
	var c entities.Contract
	if err := json.Unmarshal([]byte(it.Payload), &c); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}
