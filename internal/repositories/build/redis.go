package build

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/skilltree-api/internal/redis"
)

const (
	// Key pattern: build:{session_id}
	buildKeyPrefix = "build:"
	defaultTTL     = 30 * 24 * time.Hour
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is refreshed on every save. Zero uses the default of 30 days.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgumentf("ttl must not be negative, got %s", c.TTL)
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed build repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save stores the build and refreshes its TTL
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	record := &Record{
		SessionID:      input.SessionID,
		CatalogVersion: input.CatalogVersion,
		State:          input.State.Clone(),
		UpdatedAt:      r.clock.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal build")
	}

	if err := r.client.Set(ctx, buildKey(input.SessionID), data, r.ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store build in Redis")
	}

	return &SaveOutput{Record: record}, nil
}

// Get loads the build stored for a session
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.SessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errBuildNotFound).WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get build from Redis")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal build").
			WithMeta("session_id", input.SessionID)
	}
	if record.State.SkillLevels == nil {
		record.State.SkillLevels = map[string]int{}
	}

	return &GetOutput{Record: &record}, nil
}

// Delete removes the build stored for a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete build from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

func buildKey(sessionID string) string {
	return buildKeyPrefix + sessionID
}

// RedisSessionIDs lists the session ids of every build stored in Redis. It
// uses SCAN so large stores are walked without blocking the server.
func RedisSessionIDs(ctx context.Context, client redisclient.Client) ([]string, error) {
	var ids []string
	iter := client.Scan(ctx, 0, buildKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), buildKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan builds in Redis")
	}

	sort.Strings(ids)
	return ids, nil
}
