package database

import (
	"context"
	"log"
	"time"

	"hotel_manager/config"

	"github.com/redis/go-redis/v9"
)

// Redis caches the public single-hotel lookup that QR scans land on. It is
// optional: when the server is unreachable the client stays nil and handlers
// fall through to the database.
var Redis *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, hotel cache disabled: %v", addr, err)
		return
	}

	Redis = client
}
