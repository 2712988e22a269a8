package sessions

import (
	"github.com/redis/go-redis/v9"
)

// NewRedis creates a new Redis-backed session repository
func NewRedis(client redis.UniversalClient) Repository {
	repo, err := NewRedisRepository(&RedisConfig{
		Client:       client,
		TimeProvider: &RealTimeProvider{},
	})
	if err != nil {
		// This should never happen with valid configuration
		panic(err)
	}
	return repo
}
