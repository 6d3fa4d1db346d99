package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var errNotInitialized = errors.New("redis client not initialized")

// SetWithExpiration sets a key with a TTL.
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue returns the string value of a key, empty when missing.
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", errNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetInt64 returns the integer value of a key. A cache miss is an error
// so callers can fall through to the database.
func GetInt64(ctx context.Context, key string) (int64, error) {
	if Rdb == nil {
		return 0, errNotInitialized
	}
	return Rdb.Get(ctx, key).Int64()
}

// SAdd adds members to a set.
func SAdd(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.SAdd(ctx, key, members...).Err()
}

// GetSet returns all members of a set.
func GetSet(ctx context.Context, key string) ([]string, error) {
	if Rdb == nil {
		return nil, errNotInitialized
	}
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

func Rename(ctx context.Context, oldKey string, newKey string) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.Rename(ctx, oldKey, newKey).Err()
}

// DeleteKey removes one or more keys.
func DeleteKey(ctx context.Context, keys ...string) error {
	if Rdb == nil {
		return errNotInitialized
	}
	return Rdb.Del(ctx, keys...).Err()
}

// GetRdbClient exposes the raw client.
func GetRdbClient() *redis.Client {
	return Rdb
}
