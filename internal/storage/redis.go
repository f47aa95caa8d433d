package storage

import (
	"encoding/json"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

// RedisStore adapts a redigo pool to the Store contract. It is an optional
// backend; the service works without redis configured.
type RedisStore struct {
	pool   *redis.Pool
	prefix string
}

func NewRedisStore(pool *redis.Pool, prefix string) *RedisStore {
	return &RedisStore{pool: pool, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(key string, out interface{}) bool {
	conn := s.pool.Get()
	defer closeConn(conn)

	data, err := redis.Bytes(conn.Do("GET", s.key(key)))
	if err != nil {
		if err != redis.ErrNil {
			zap.L().Warn("Redis GET failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *RedisStore) Set(key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}

	conn := s.pool.Get()
	defer closeConn(conn)

	if _, err := conn.Do("SET", s.key(key), data); err != nil {
		zap.L().Warn("Redis SET failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *RedisStore) Remove(key string) bool {
	conn := s.pool.Get()
	defer closeConn(conn)

	if _, err := conn.Do("DEL", s.key(key)); err != nil {
		zap.L().Warn("Redis DEL failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		zap.L().Warn("Redis connection close failed", zap.Error(err))
	}
}
