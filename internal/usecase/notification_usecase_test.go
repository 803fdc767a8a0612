package usecase

import (
	"context"
	"errors"
	"testing"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/infrastructure/logger"
	mock_interfaces "leaseflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_Emit(t *testing.T) {
	t.Run("persists without sender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, logger.NewNop())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractNotification{})).DoAndReturn(
			func(_ context.Context, n entities.ContractNotification) (entities.ContractNotification, error) {
				if n.ID == "" || n.CreatedAt.IsZero() {
					t.Fatalf("expected id and createdAt, got %+v", n)
				}
				if n.SentAt != nil {
					t.Fatalf("no sender configured, sentAt should be nil")
				}
				return n, nil
			},
		)

		uc.Emit(context.Background(), entities.ContractNotification{
			ContractID: "c-1",
			Type:       entities.NotificationContractActivated,
			Recipient:  "alice@example.com",
			Message:    "Contract c-1 is now active",
		})
	})

	t.Run("email failure does not block persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationUseCase(repo, sender, logger.NewTest(t))

		sender.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(errors.New("ses down"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.ContractNotification) (entities.ContractNotification, error) {
				if n.SentAt != nil {
					t.Fatalf("failed delivery must not set sentAt")
				}
				return n, nil
			},
		)

		uc.Emit(context.Background(), entities.ContractNotification{
			ContractID: "c-1",
			Type:       entities.NotificationSignatureRequested,
			Recipient:  "alice@example.com",
			Message:    "please sign",
		})
	})

	t.Run("successful delivery stamps sentAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewNotificationUseCase(repo, sender, logger.NewNop())

		sender.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.ContractNotification) (entities.ContractNotification, error) {
				if n.SentAt == nil {
					t.Fatalf("expected sentAt after delivery")
				}
				return n, nil
			},
		)

		uc.Emit(context.Background(), entities.ContractNotification{
			ContractID: "c-1",
			Type:       entities.NotificationContractRenewed,
			Recipient:  "alice@example.com",
			Message:    "renewed",
		})
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, logger.NewNop())
		_, err := uc.MarkRead(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, logger.NewNop())

		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.ContractNotification{}, nil)

		_, err := uc.MarkRead(context.Background(), "n-1")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("marks read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo, nil, logger.NewNop())

		repo.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.ContractNotification{ID: "n-1", Read: true}, nil)

		n, err := uc.MarkRead(context.Background(), "n-1")
		if err != nil || !n.Read {
			t.Fatalf("unexpected result: %+v %v", n, err)
		}
	})
}
