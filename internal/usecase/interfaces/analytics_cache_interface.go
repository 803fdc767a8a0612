package interfaces

import (
	"context"
	"time"
)

// IAnalyticsCache is a short-TTL cache for portfolio analytics (Redis in
// production). A cache miss returns ErrCacheMiss from the implementation's
// underlying client; callers treat any error as a miss.
type IAnalyticsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
