package devicestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisOptions configures the redis-backed store.
type RedisOptions struct {
	URL       string
	Namespace string
	Logger    *log.Logger
	// Client, when set, is used instead of dialing URL.
	Client *redis.Client
}

// Redis keeps device values under a namespaced key prefix, letting several
// devices of a test fleet share one server.
type Redis struct {
	client    *redis.Client
	namespace string
	logger    *log.Logger
}

func NewRedis(opts RedisOptions) (*Redis, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	client := opts.Client
	if client == nil {
		if opts.URL == "" {
			return nil, errors.New("redis URL is required")
		}
		redisOpt, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		client = redis.NewClient(redisOpt)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
	}
	return &Redis{client: client, namespace: opts.Namespace, logger: logger}, nil
}

func (r *Redis) key(k string) string {
	if r.namespace == "" {
		return k
	}
	return r.namespace + ":" + k
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Printf("device store: get key=%s error=%v", key, err)
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		r.logger.Printf("device store: set key=%s error=%v", key, err)
		return err
	}
	return nil
}

func (r *Redis) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, r.key(k))
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		r.logger.Printf("device store: remove keys=%v error=%v", keys, err)
		return err
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
