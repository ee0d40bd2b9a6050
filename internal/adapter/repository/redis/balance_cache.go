package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// BalanceCache implements usecase.BalanceCache. Balances are keyed per
// (account, as-of date) so different historical reads never collide, and
// invalidation sweeps every as-of variant of the account.
type BalanceCache struct {
	client *redis.Client
	prefix string
}

// NewBalanceCache creates a new BalanceCache.
func NewBalanceCache(client *redis.Client) *BalanceCache {
	return &BalanceCache{
		client: client,
		prefix: "balance:",
	}
}

func (c *BalanceCache) key(accountID string, asOf time.Time) string {
	return fmt.Sprintf("%s%s:%s", c.prefix, accountID, asOf.UTC().Format(time.RFC3339))
}

// Get retrieves a cached balance. A missing key is not an error.
func (c *BalanceCache) Get(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, c.key(accountID, asOf)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}

		return decimal.Zero, false, err
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, err
	}

	return balance, true, nil
}

// Set stores a balance with TTL.
func (c *BalanceCache) Set(ctx context.Context, accountID string, asOf time.Time, balance decimal.Decimal, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(accountID, asOf), balance.String(), ttl).Err()
}

// Invalidate drops every cached balance of the account, across all as-of
// dates, by scanning the account's key prefix.
func (c *BalanceCache) Invalidate(ctx context.Context, accountID string) error {
	pattern := fmt.Sprintf("%s%s:*", c.prefix, accountID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}

	return iter.Err()
}
