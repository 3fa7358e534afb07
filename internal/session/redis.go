package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps sessions in redis so they survive restarts and are shared
// across instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sid string) string { return "session:" + sid }
func flashKey(sid string) string   { return "flash:" + sid }

func (s *RedisStore) Save(ctx context.Context, sid string, sess Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sid), payload, ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, sid string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid), flashKey(sid)).Err()
}

func (s *RedisStore) PushFlash(ctx context.Context, sid string, msg string) error {
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, flashKey(sid), msg)
	pipe.Expire(ctx, flashKey(sid), time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) PopFlashes(ctx context.Context, sid string) ([]string, error) {
	pipe := s.client.TxPipeline()
	lrange := pipe.LRange(ctx, flashKey(sid), 0, -1)
	pipe.Del(ctx, flashKey(sid))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return lrange.Val(), nil
}

// Compile-time checks
var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
