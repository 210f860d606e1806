package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories use. It covers both single
// node and cluster clients.
type Client interface {
	redis.UniversalClient
}
