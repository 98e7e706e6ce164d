package review

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/UjjwalTomar0808/artistly/internal/platform/constants"
	"github.com/UjjwalTomar0808/artistly/internal/platform/storeerr"
)

// RedisStore keeps each workspace in a hash keyed by session, field = submission
// ID, value = status. Every access slides the key's expiry.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func workspaceKey(sessionID string) string {
	return constants.RedisPrefixReviewSession + sessionID
}

/*
Decisions loads the session's workspace hash.

Description: Fields that are not a submission ID mapped to a decided status are
skipped. A missing hash is an empty workspace, not an error.

Parameters:
  - ctx: context.Context
  - sessionID: string

Returns:
  - map[int]Status: Decisions keyed by submission ID
  - error: Storage errors classified by storeerr
*/
func (store *RedisStore) Decisions(ctx context.Context, sessionID string) (map[int]Status, error) {
	key := workspaceKey(sessionID)

	fields, err := store.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, storeerr.Wrap(err, "load_workspace")
	}

	decisions := make(map[int]Status, len(fields))
	if len(fields) == 0 {
		return decisions, nil
	}

	for field, value := range fields {
		id, err := strconv.Atoi(field)
		status := Status(value)
		// Foreign fields are ignored rather than failing the whole workspace
		if err != nil || !status.Decided() {
			continue
		}
		decisions[id] = status
	}

	if err := store.client.Expire(ctx, key, store.ttl).Err(); err != nil {
		return nil, storeerr.Wrap(err, "touch_workspace")
	}
	return decisions, nil
}

/*
Decide records a decision with HSETNX, so of two concurrent decisions on the
same submission exactly one wins. The write and the TTL refresh commit in one
MULTI/EXEC block.
*/
func (store *RedisStore) Decide(ctx context.Context, sessionID string, id int, status Status) (bool, error) {
	key := workspaceKey(sessionID)

	var recorded *redis.BoolCmd
	_, err := store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		recorded = pipe.HSetNX(ctx, key, strconv.Itoa(id), string(status))
		pipe.Expire(ctx, key, store.ttl)
		return nil
	})
	if err != nil {
		return false, storeerr.Wrap(err, "record_decision")
	}
	return recorded.Val(), nil
}
