package interfaces

import (
	"context"

	"leaseflow/internal/domain/entities"
)

// IContractTemplateRepository abstracts DynamoDB persistence for reusable
// contract templates.
type IContractTemplateRepository interface {
	List(ctx context.Context) ([]entities.ContractTemplate, error)
	GetByID(ctx context.Context, id string) (entities.ContractTemplate, error)
}
