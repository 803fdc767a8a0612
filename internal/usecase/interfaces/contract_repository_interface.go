package interfaces

import (
	"context"

	"leaseflow/internal/domain/entities"
)

// ContractQuery drives paginated contract search.
//
// SortBy accepts createdAt, startDate, endDate or rentAmount; SortOrder is
// asc or desc. Zero Page/Limit fall back to repository defaults.
type ContractQuery struct {
	Status     entities.ContractStatus
	PropertyID string
	TenantID   string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// IContractRepository abstracts DynamoDB persistence for the Contract
// aggregate and its append-only event log.
//
// The contracts-service must be able to:
//   - create a draft and fetch/save the whole aggregate
//   - search with status/property/tenant filters, sorting and paging
//   - append and list audit events per contract

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Save(ctx context.Context, c entities.Contract) (entities.Contract, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q ContractQuery) ([]entities.Contract, int, error)
	AppendEvent(ctx context.Context, e entities.ContractEvent) error
	ListEvents(ctx context.Context, contractID string) ([]entities.ContractEvent, error)
}
