package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/domain/lifecycle"
	"leaseflow/internal/infrastructure/logger"
	"leaseflow/internal/usecase/interfaces"
	mock_interfaces "leaseflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validTerms() entities.ContractTerms {
	return entities.ContractTerms{
		RentAmount:       1200,
		DepositAmount:    1200,
		PaymentFrequency: entities.PaymentFrequencyMonthly,
		PaymentDueDay:    5,
		Maintenance:      entities.MaintenanceHoster,
	}
}

func validCreateInput() CreateContractInput {
	now := time.Now().UTC()
	terms := validTerms()
	return CreateContractInput{
		PropertyID: "prop-1",
		Tenant:     entities.Party{Name: "Alice Tenant", Email: "alice@example.com"},
		Hoster:     entities.Party{Name: "Bob Hoster", Email: "bob@example.com"},
		StartDate:  now,
		EndDate:    now.AddDate(1, 0, 0),
		Terms:      &terms,
	}
}

func storedDraft(id string) entities.Contract {
	now := time.Now().UTC()
	return entities.Contract{
		ID:         id,
		PropertyID: "prop-1",
		Tenant:     entities.Party{Name: "Alice Tenant", Email: "alice@example.com"},
		Hoster:     entities.Party{Name: "Bob Hoster", Email: "bob@example.com"},
		StartDate:  now,
		EndDate:    now.AddDate(1, 0, 0),
		Terms:      validTerms(),
		Status:     entities.ContractStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestContractUseCase_Create(t *testing.T) {
	t.Run("no terms and no template", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		in := validCreateInput()
		in.Terms = nil

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidRentAmount) {
			t.Fatalf("expected ErrInvalidRentAmount, got %v", err)
		}
	})

	t.Run("template not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		uc := NewContractUseCase(nil, templates, nil)

		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(entities.ContractTemplate{}, nil)

		in := validCreateInput()
		in.TemplateID = "tpl-1"
		in.Terms = nil
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("invalid date range", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		in := validCreateInput()
		in.EndDate = in.StartDate

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("guarantor without id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		in := validCreateInput()
		in.Guarantors = []entities.Guarantor{{Name: "No ID"}}

		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrMissingGuarantorID) {
			t.Fatalf("expected ErrMissingGuarantorID, got %v", err)
		}
	})

	t.Run("create from template success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		templates := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		uc := NewContractUseCase(repo, templates, nil)

		tpl := entities.ContractTemplate{
			ID:      "tpl-1",
			Name:    "Standard lease",
			Terms:   validTerms(),
			Clauses: []string{"No subletting."},
		}
		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(tpl, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.ID == "" || c.Status != entities.ContractStatusDraft {
					t.Fatalf("unexpected contract: %+v", c)
				}
				if c.Terms.RentAmount != 1200 || len(c.Clauses) != 1 {
					t.Fatalf("expected template terms and clauses, got %+v", c)
				}
				return c, nil
			},
		)
		repo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

		in := validCreateInput()
		in.TemplateID = "tpl-1"
		in.Terms = nil
		created, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CreatedAt.IsZero() {
			t.Fatalf("expected timestamps")
		}
	})
}

func TestContractUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Contract{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("sweeps active contract past end date to expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		stale := storedDraft("c-1")
		stale.Status = entities.ContractStatusActive
		stale.StartDate = time.Now().UTC().AddDate(-1, 0, 0)
		stale.EndDate = time.Now().UTC().Add(-time.Hour)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stale, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.Status != entities.ContractStatusExpired {
					t.Fatalf("expected expired, got %s", c.Status)
				}
				return c, nil
			},
		)
		repo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.GetByID(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ContractStatusExpired {
			t.Fatalf("expected expired, got %s", got.Status)
		}
	})
}

func TestContractUseCase_Update(t *testing.T) {
	t.Run("terms locked after draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		active := storedDraft("c-1")
		active.Status = entities.ContractStatusActive
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(active, nil)

		terms := validTerms()
		_, err := uc.Update(context.Background(), "c-1", UpdateContractInput{Terms: &terms})
		if !errors.Is(err, ErrContractNotEditable) {
			t.Fatalf("expected ErrContractNotEditable, got %v", err)
		}
	})

	t.Run("draft terms update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		draft := storedDraft("c-1")
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(draft, nil)

		terms := validTerms()
		terms.RentAmount = 1500
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.Terms.RentAmount != 1500 {
					t.Fatalf("expected rent 1500, got %v", c.Terms.RentAmount)
				}
				return c, nil
			},
		)
		repo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := uc.Update(context.Background(), "c-1", UpdateContractInput{Terms: &terms})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.UpdatedAt.Equal(draft.UpdatedAt) {
			t.Fatalf("expected updatedAt to move")
		}
	})
}

func TestContractUseCase_Delete(t *testing.T) {
	t.Run("active not deletable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		active := storedDraft("c-1")
		active.Status = entities.ContractStatusActive
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(active, nil)

		if err := uc.Delete(context.Background(), "c-1"); !errors.Is(err, ErrContractNotDeletable) {
			t.Fatalf("expected ErrContractNotDeletable, got %v", err)
		}
	})

	t.Run("draft deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(storedDraft("c-1"), nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_LifecycleActions(t *testing.T) {
	t.Run("activate rejected while signatures incomplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		pending := storedDraft("c-1")
		pending.Status = entities.ContractStatusPendingSignatures
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pending, nil)

		_, err := uc.Activate(context.Background(), "c-1")
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("terminate persists and notifies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		notifRepo := mock_interfaces.NewMockINotificationRepository(ctrl)
		notifier := NewNotificationUseCase(notifRepo, nil, logger.NewNop())
		uc := NewContractUseCase(repo, nil, notifier)

		active := storedDraft("c-1")
		active.Status = entities.ContractStatusActive
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(active, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Contract{})).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) {
				if c.Status != entities.ContractStatusTerminated || c.TerminationReason != "sold the property" {
					t.Fatalf("unexpected contract: %+v", c)
				}
				return c, nil
			},
		)
		repo.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(nil)
		notifRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractNotification{})).DoAndReturn(
			func(_ context.Context, n entities.ContractNotification) (entities.ContractNotification, error) {
				if n.Type != entities.NotificationContractTerminated || n.Recipient != "alice@example.com" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return n, nil
			},
		)

		got, err := uc.Terminate(context.Background(), "c-1", " sold the property ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TerminatedAt == nil {
			t.Fatalf("expected terminatedAt")
		}
	})

	t.Run("renew with invalid terms rejected before load", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		bad := validTerms()
		bad.RentAmount = 0
		_, err := uc.Renew(context.Background(), "c-1", time.Now().UTC().AddDate(1, 0, 0), &bad)
		if !errors.Is(err, ErrInvalidRentAmount) {
			t.Fatalf("expected ErrInvalidRentAmount, got %v", err)
		}
	})
}

func TestContractUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIContractRepository(ctrl)
	uc := NewContractUseCase(repo, nil, nil)

	repo.EXPECT().Search(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ContractQuery{})).DoAndReturn(
		func(_ context.Context, q interfaces.ContractQuery) ([]entities.Contract, int, error) {
			if q.Page != 1 || q.Limit != 20 {
				t.Fatalf("expected default paging, got %+v", q)
			}
			return []entities.Contract{storedDraft("c-1")}, 1, nil
		},
	)

	res, err := uc.Search(context.Background(), interfaces.ContractQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 1 || len(res.Contracts) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestContractUseCase_Templates(t *testing.T) {
	t.Run("get blank id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		_, err := uc.GetTemplate(context.Background(), " ")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		templates := mock_interfaces.NewMockIContractTemplateRepository(ctrl)
		uc := NewContractUseCase(nil, templates, nil)

		templates.EXPECT().List(gomock.Any()).Return([]entities.ContractTemplate{{ID: "tpl-1"}}, nil)

		got, err := uc.ListTemplates(context.Background())
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
