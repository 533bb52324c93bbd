package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis stores each collection under a prefixed key.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client, prefix: "salon:collections:"}, nil
}

func (r *Redis) Get(ctx context.Context, name string) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.prefix+name).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return raw, nil
}

func (r *Redis) Set(ctx context.Context, name string, data []byte) error {
	if err := r.client.Set(ctx, r.prefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, name string) error {
	if err := r.client.Del(ctx, r.prefix+name).Err(); err != nil {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
