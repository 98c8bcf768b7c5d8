package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"donation-service/src/internal/entity"

	"github.com/redis/go-redis/v9"
)

type RedisSessionRepository struct {
	Redis redis.UniversalClient
}

func NewRedisSessionRepository(client redis.UniversalClient) *RedisSessionRepository {
	return &RedisSessionRepository{Redis: client}
}

func (r *RedisSessionRepository) Save(ctx context.Context, form *entity.DonationForm, ttl time.Duration) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("marshal donation form: %w", err)
	}
	return r.Redis.Set(ctx, formKey(form.ID), data, ttl).Err()
}

func (r *RedisSessionRepository) Find(ctx context.Context, id string) (*entity.DonationForm, error) {
	data, err := r.Redis.Get(ctx, formKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var form entity.DonationForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("unmarshal donation form: %w", err)
	}
	return &form, nil
}

func (r *RedisSessionRepository) Dismiss(ctx context.Context, sessionID string, ttl time.Duration) error {
	return r.Redis.Set(ctx, bannerKey(sessionID), 1, ttl).Err()
}

func (r *RedisSessionRepository) IsDismissed(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.Redis.Exists(ctx, bannerKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
