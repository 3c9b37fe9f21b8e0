package tempstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "tempuser:"

// RedisStore is a Store backed by Redis, for deployments where temp accounts
// should survive restarts and expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. A zero ttl keeps entries forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Put stores the user, failing when the email is already taken.
func (s *RedisStore) Put(ctx context.Context, user *TempUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	ok, err := s.client.SetNX(ctx, keyPrefix+user.Email, payload, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrEmailTaken
	}
	return nil
}

// GetByEmail looks a user up by email.
func (s *RedisStore) GetByEmail(ctx context.Context, email string) (*TempUser, error) {
	payload, err := s.client.Get(ctx, keyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var user TempUser
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
