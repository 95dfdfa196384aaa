package config

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance named by REDIS_ADDR. A nil
// return means Redis is unreachable; callers treat that as "no limiter".
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	client := redis.NewClient(
		&redis.Options{
			Addr:     addr,
			Password: "",
			DB:       0,
		})
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to Redis: %v. Rate limiting disabled.\n", err)
		return nil
	}
	fmt.Println("Redis connected successfully:", pong)
	return client
}
