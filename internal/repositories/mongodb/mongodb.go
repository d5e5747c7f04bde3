package mongodb

import (
	"context"
	"time"
)

// opTimeout bounds every database round trip. Operations fail on expiry
// rather than retrying; interactive callers surface the error, background
// jobs retry on their own schedule.
const opTimeout = 5 * time.Second

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
