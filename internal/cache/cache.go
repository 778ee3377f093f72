// Package cache is an optional redis read cache for todo listings. It is
// never authoritative: misses and errors fall through to the store, and every
// mutation invalidates the owner's entry.
package cache

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"
	"time"

	"tododesk/internal/domain"

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"
)

const todosTTL = 60 * time.Second

// Cache wraps a redis client. A Cache built from a nil client disables
// caching entirely, so callers never branch on configuration.
type Cache struct {
	rdb *redis.Client
}

// New returns a Cache over rdb; rdb may be nil.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

func todosKey(ownerID uint) string {
	return "todos:user:" + strconv.Itoa(int(ownerID))
}

// GetTodos returns the cached listing for ownerID. Any miss, decode failure
// or redis error reports found = false.
func (c *Cache) GetTodos(ownerID uint) ([]domain.Todo, bool) {
	if !c.enabled() {
		return nil, false
	}
	val, err := c.rdb.Get(context.Background(), todosKey(ownerID)).Result()
	if err == redis.Nil {
		return nil, false
	} else if err != nil {
		logrus.WithField("owner_id", ownerID).Warnf("todo cache read failed: %v", err)
		return nil, false
	}
	var todos []domain.Todo
	if err := json.Unmarshal([]byte(val), &todos); err != nil {
		return nil, false
	}
	return todos, true
}

// SetTodos caches the listing for ownerID. Failures are logged and dropped.
func (c *Cache) SetTodos(ownerID uint, todos []domain.Todo) {
	if !c.enabled() {
		return
	}
	b, err := json.Marshal(todos)
	if err != nil {
		return
	}
	if err := c.rdb.Set(context.Background(), todosKey(ownerID), b, todosTTL).Err(); err != nil {
		logrus.WithField("owner_id", ownerID).Warnf("todo cache write failed: %v", err)
	}
}

// InvalidateTodos drops the cached listing after a mutation for ownerID.
func (c *Cache) InvalidateTodos(ownerID uint) {
	if !c.enabled() {
		return
	}
	_ = c.rdb.Del(context.Background(), todosKey(ownerID)).Err()
}
