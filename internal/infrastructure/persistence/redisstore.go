package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quickdesk/internal/infrastructure/persistence/models"
)

// RedisStore persists the snapshot as four JSON values under a common
// key prefix, mirroring the document layout of the SQLite store. All
// writes go through a transaction pipeline so a reader never sees a
// partially updated snapshot.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "quickdesk:state:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context) (*Snapshot, error) {
	keys := []string{
		s.prefix + KeyCurrentUser,
		s.prefix + KeyUsers,
		s.prefix + KeyTickets,
		s.prefix + KeyCategories,
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot from redis: %w", err)
	}

	empty := true
	for _, v := range values {
		if v != nil {
			empty = false
			break
		}
	}
	if empty {
		return nil, nil
	}

	snap := &Snapshot{}
	if raw := asString(values[0]); raw != "" && raw != "null" {
		var u models.UserRecord
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, fmt.Errorf("failed to decode current user: %w", err)
		}
		snap.CurrentUser = &u
	}
	if err := decodeValue(values[1], KeyUsers, &snap.Users); err != nil {
		return nil, err
	}
	if err := decodeValue(values[2], KeyTickets, &snap.Tickets); err != nil {
		return nil, err
	}
	if err := decodeValue(values[3], KeyCategories, &snap.Categories); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *RedisStore) Save(ctx context.Context, snap *Snapshot) error {
	docs, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range docs {
			pipe.Set(ctx, s.prefix+key, value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot to redis: %w", err)
	}
	return nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func decodeValue(v any, key string, out any) error {
	raw := asString(v)
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}
