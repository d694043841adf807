package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so single node and cluster clients are
// interchangeable
type Client interface {
	redis.UniversalClient
}
