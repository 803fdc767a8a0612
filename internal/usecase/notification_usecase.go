package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/infrastructure/logger"
	"leaseflow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationEmitter is the narrow surface other use cases depend on to
// fire a notification during a lifecycle transition.
type INotificationEmitter interface {
	Emit(ctx context.Context, n entities.ContractNotification)
}

// INotificationUseCase exposes the notification inbox operations.
type INotificationUseCase interface {
	INotificationEmitter
	List(ctx context.Context) ([]entities.ContractNotification, error)
	MarkRead(ctx context.Context, id string) (entities.ContractNotification, error)
}

type NotificationUseCase struct {
	repo   interfaces.INotificationRepository
	sender interfaces.IEmailSender
	log    logger.Logger
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository, sender interfaces.IEmailSender, log logger.Logger) *NotificationUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &NotificationUseCase{repo: repo, sender: sender, log: log}
}

// Emit persists the notification and, when a sender is configured, delivers
// it by email. Delivery failures are logged, never propagated: a lifecycle
// transition must not fail because an email bounced.
func (u *NotificationUseCase) Emit(ctx context.Context, n entities.ContractNotification) {
	now := time.Now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now

	if u.sender != nil && n.Recipient != "" {
		if err := u.sender.Send(ctx, n.Recipient, string(n.Type), n.Message); err != nil {
			u.log.Warn("notification email delivery failed", map[string]interface{}{
				"notification_id": n.ID,
				"contract_id":     n.ContractID,
				"error":           err.Error(),
			})
		} else {
			sent := now
			n.SentAt = &sent
		}
	}

	if _, err := u.repo.Create(ctx, n); err != nil {
		u.log.Error("notification persist failed", map[string]interface{}{
			"contract_id": n.ContractID,
			"type":        string(n.Type),
			"error":       err.Error(),
		})
	}
}

func (u *NotificationUseCase) List(ctx context.Context) ([]entities.ContractNotification, error) {
	return u.repo.List(ctx)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.ContractNotification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractNotification{}, ErrInvalidNotificationID
	}
	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.ContractNotification{}, err
	}
	if n.ID == "" {
		return entities.ContractNotification{}, ErrNotificationNotFound
	}
	return n, nil
}
