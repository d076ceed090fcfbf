package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to redis using a URL of the form redis://[:pass@]host:port/db.
// Returns nil when no URL is configured; callers treat a nil client as
// "use the in-memory fallback".
func New(url string) (*redis.Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
