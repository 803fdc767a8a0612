package interfaces

import (
	"context"

	"leaseflow/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for contract
// notifications.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.ContractNotification) (entities.ContractNotification, error)
	List(ctx context.Context) ([]entities.ContractNotification, error)
	MarkRead(ctx context.Context, id string) (entities.ContractNotification, error)
}
