package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"macrolib/internal/domain"
)

const modelKeyPrefix = "macrolib:model:"

// Redis persists models as JSON records under prefixed keys, so instances
// survive the process.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed repository on an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Save(ctx context.Context, id string, m domain.Model) error {
	raw, err := json.Marshal(m.Record())
	if err != nil {
		return err
	}
	return s.client.Set(ctx, modelKeyPrefix+id, raw, 0).Err()
}

func (s *Redis) Find(ctx context.Context, id string) (domain.Model, error) {
	raw, err := s.client.Get(ctx, modelKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Model{}, domain.ErrModelNotFound(id)
		}
		return domain.Model{}, err
	}
	var rec domain.ModelRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Model{}, err
	}
	return domain.ModelFromRecord(rec), nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, modelKeyPrefix+id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrModelNotFound(id)
	}
	return nil
}

// List scans the model keyspace. Order is whatever the scan yields; filtered
// by canonical model name when modelName is non-empty.
func (s *Redis) List(ctx context.Context, modelName string) ([]domain.Model, error) {
	var out []domain.Model
	iter := s.client.Scan(ctx, 0, modelKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		raw, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}
		var rec domain.ModelRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		if modelName != "" && rec.ModelName != modelName {
			continue
		}
		out = append(out, domain.ModelFromRecord(rec))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
