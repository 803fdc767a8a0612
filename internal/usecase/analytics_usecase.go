package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"leaseflow/internal/domain/entities"
	"leaseflow/internal/domain/lifecycle"
	"leaseflow/internal/infrastructure/logger"
	"leaseflow/internal/usecase/interfaces"
)

// analyticsCacheTTL keeps dashboard numbers fresh enough while sparing a
// full table scan per page load.
const analyticsCacheTTL = time.Minute

// IAnalyticsUseCase computes portfolio aggregates over the whole contract
// table, optionally restricted to contracts created in [dateFrom, dateTo].
type IAnalyticsUseCase interface {
	Portfolio(ctx context.Context, dateFrom, dateTo *time.Time) (entities.PortfolioAnalytics, error)
}

type AnalyticsUseCase struct {
	repo  interfaces.IContractRepository
	cache interfaces.IAnalyticsCache
	log   logger.Logger
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IContractRepository, cache interfaces.IAnalyticsCache, log logger.Logger) *AnalyticsUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &AnalyticsUseCase{repo: repo, cache: cache, log: log}
}

func (u *AnalyticsUseCase) Portfolio(ctx context.Context, dateFrom, dateTo *time.Time) (entities.PortfolioAnalytics, error) {
	key := analyticsCacheKey(dateFrom, dateTo)

	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, key); err == nil && cached != "" {
			var a entities.PortfolioAnalytics
			if err := json.Unmarshal([]byte(cached), &a); err == nil {
				return a, nil
			}
		}
	}

	contracts, _, err := u.repo.Search(ctx, interfaces.ContractQuery{Page: 1, Limit: -1})
	if err != nil {
		return entities.PortfolioAnalytics{}, err
	}

	if dateFrom != nil || dateTo != nil {
		filtered := contracts[:0]
		for _, c := range contracts {
			if dateFrom != nil && c.CreatedAt.Before(*dateFrom) {
				continue
			}
			if dateTo != nil && c.CreatedAt.After(*dateTo) {
				continue
			}
			filtered = append(filtered, c)
		}
		contracts = filtered
	}

	a := lifecycle.Portfolio(contracts, time.Now().UTC())

	if u.cache != nil {
		if b, err := json.Marshal(a); err == nil {
			if err := u.cache.Set(ctx, key, string(b), analyticsCacheTTL); err != nil {
				u.log.Warn("analytics cache write failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	return a, nil
}

func analyticsCacheKey(dateFrom, dateTo *time.Time) string {
	from, to := "", ""
	if dateFrom != nil {
		from = dateFrom.UTC().Format(time.RFC3339)
	}
	if dateTo != nil {
		to = dateTo.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("contracts:analytics:%s:%s", from, to)
}
