package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Connect opens the shared redis client used for cache-aside reads.
func Connect(addr, password string) error {
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return Conn.Ping(ctx).Err()
}
