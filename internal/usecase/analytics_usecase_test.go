package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/infrastructure/logger"
	"leaseflow/internal/usecase/interfaces"
	mock_interfaces "leaseflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAnalyticsUseCase_Portfolio(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIAnalyticsCache(ctrl)
		uc := NewAnalyticsUseCase(nil, cache, logger.NewNop())

		cached, _ := json.Marshal(entities.PortfolioAnalytics{TotalContracts: 7})
		cache.EXPECT().Get(gomock.Any(), "contracts:analytics::").Return(string(cached), nil)

		a, err := uc.Portfolio(context.Background(), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.TotalContracts != 7 {
			t.Fatalf("expected cached analytics, got %+v", a)
		}
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		cache := mock_interfaces.NewMockIAnalyticsCache(ctrl)
		uc := NewAnalyticsUseCase(repo, cache, logger.NewNop())

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("redis: nil"))

		active := storedDraft("c-1")
		active.Status = entities.ContractStatusActive
		draft := storedDraft("c-2")
		repo.EXPECT().Search(gomock.Any(), interfaces.ContractQuery{Page: 1, Limit: -1}).
			Return([]entities.Contract{active, draft}, 2, nil)

		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)

		a, err := uc.Portfolio(context.Background(), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.TotalContracts != 2 || a.ActiveContracts != 1 {
			t.Fatalf("unexpected analytics: %+v", a)
		}
		if a.OccupancyRate != 50 {
			t.Fatalf("expected 50%% occupancy, got %v", a.OccupancyRate)
		}
	})

	t.Run("date range filters by createdAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, nil, logger.NewNop())

		old := storedDraft("c-old")
		old.CreatedAt = time.Now().UTC().AddDate(-2, 0, 0)
		recent := storedDraft("c-new")
		repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]entities.Contract{old, recent}, 2, nil)

		from := time.Now().UTC().AddDate(0, -1, 0)
		a, err := uc.Portfolio(context.Background(), &from, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.TotalContracts != 1 {
			t.Fatalf("expected the old contract filtered out, got %+v", a)
		}
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		cache := mock_interfaces.NewMockIAnalyticsCache(ctrl)
		uc := NewAnalyticsUseCase(repo, cache, logger.NewTest(t))

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("redis: nil"))
		repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.Portfolio(context.Background(), nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
