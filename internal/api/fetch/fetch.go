// Package fetch coordinates tab fetches. Every fetch runs as a task keyed
// by (city, tab kind): concurrent identical fetches are collapsed into one
// provider round-trip, successful results are cached for a short TTL so tab
// re-opens are cheap, and each task carries its own deadline so a slow
// provider converts into the error state instead of a stuck loading one.
// Because results are bound to their key, a late completion can never be
// attributed to a different view.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/voyago/voyago/internal/types"
)

// Coordinator owns the in-flight task group and the result cache. One
// instance is shared by all tab services.
type Coordinator struct {
	group   singleflight.Group
	results *cache.Cache
	timeout time.Duration
}

func NewCoordinator(timeout, resultTTL time.Duration) *Coordinator {
	return &Coordinator{
		results: cache.New(resultTTL, 2*resultTTL),
		timeout: timeout,
	}
}

// Key builds the task key for a destination city and tab kind.
func Key(city, kind string) string {
	return fmt.Sprintf("%s|%s", city, kind)
}

// Tab runs fn under the coordinator's discipline and returns its envelope.
// Error-state results are never cached, so a new user action restarts the
// machine from idle.
func Tab[T any](ctx context.Context, c *Coordinator, key string, fn func(ctx context.Context) types.TabResult[T]) types.TabResult[T] {
	if cached, ok := c.results.Get(key); ok {
		if result, ok := cached.(types.TabResult[T]); ok {
			return result
		}
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		// Detach from the caller's cancellation: the task belongs to the
		// (city, kind) pair, not to whichever request happened to start it.
		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		result := fn(taskCtx)
		if result.Status != types.StatusError {
			c.results.SetDefault(key, result)
		}
		return result, nil
	})

	result, ok := v.(types.TabResult[T])
	if !ok {
		return types.Failed[T]("internal aggregation error")
	}
	return result
}
