package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

const cacheTTL = 10 * time.Minute

/*
* Connect to Redis using REDIS_ADDR from the environment
* The cache is optional: callers log and continue when it is down
 */
func Connect() error {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}

	Rdb = rdb
	log.Println("Connected to Redis at", addr)
	return nil
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if Rdb == nil {
		return errors.New("cache disabled")
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, payload, cacheTTL).Err()
}

/*
* GetCache reports whether the key was present
* A missing key is not an error
 */
func GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if Rdb == nil {
		return false, nil
	}
	payload, err := Rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
