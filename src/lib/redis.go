package lib

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

// InvalidateAvailabilityCache drops every cached availability response.
// Called whenever bookings or items change.
func InvalidateAvailabilityCache(ctx context.Context) {
	rd := GetRedisClient()
	if rd == nil {
		return
	}
	iter := rd.Scan(ctx, 0, "availability:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := rd.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[redis] Failed to delete key %s: %s\n", iter.Val(), err.Error())
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("[redis] Error scanning availability keys: %s\n", err.Error())
	}
}
