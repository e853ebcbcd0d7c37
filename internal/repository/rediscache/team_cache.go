package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hrassets-backend/internal/domain"
)

const teamKeyPrefix = "team:"

// TeamCache holds serialized team groups per employee. Affiliation data is
// derived from approved requests, so entries are short-lived and evicted
// whenever an approval or return changes the underlying projection.
type TeamCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTeamCache(client *redis.Client, ttl time.Duration) *TeamCache {
	return &TeamCache{client: client, ttl: ttl}
}

func (c *TeamCache) Get(ctx context.Context, email string) ([]domain.TeamGroup, bool, error) {
	data, err := c.client.Get(ctx, teamKeyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var groups []domain.TeamGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, false, err
	}
	return groups, true, nil
}

func (c *TeamCache) Set(ctx context.Context, email string, groups []domain.TeamGroup) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, teamKeyPrefix+email, data, c.ttl).Err()
}

// InvalidateCompany drops every cached roster. Rosters are keyed by employee
// and any of them may include the changed company, so a SCAN over the prefix
// is the simplest correct eviction at the expected data volumes.
func (c *TeamCache) InvalidateCompany(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, teamKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
