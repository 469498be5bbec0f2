package linkedin

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds concurrent profile fetches in
// BatchGetProfiles when the caller passes 0.
const DefaultBatchConcurrency = 10

// BatchGetProfiles fetches multiple profiles concurrently, keyed by
// username. Individual failures are logged and skipped so one bad profile
// does not abort the batch; a missing key in the result means that lookup
// failed. The batch stops early only when the context is cancelled.
func (c *Client) BatchGetProfiles(ctx context.Context, usernames []string, concurrency int) (map[string]any, error) {
	results := make(map[string]any, len(usernames))
	if len(usernames) == 0 {
		return results, nil
	}
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex

	for _, username := range usernames {
		username := username
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			profile, err := c.GetProfile(ctx, ProfileLookup{Username: username})
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("username", username).
					Msg("Failed to fetch profile, skipping")
				return nil
			}

			mu.Lock()
			results[username] = profile
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
