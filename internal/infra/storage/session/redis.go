package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

type redisRecord struct {
	Lat       float64   `json:"lat"`
	Long      float64   `json:"long"`
	CreatedAt time.Time `json:"createdAt"`
}

// RedisRepository хранилище сессий в redis, время жизни задается TTL ключа
type RedisRepository struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisRepository создает хранилище сессий в redis
func NewRedisRepository(client redis.Cmdable, prefix string, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisRepository) key(id string) string {
	return r.prefix + id
}

// Save сохраняет сессию
func (r *RedisRepository) Save(ctx context.Context, s *domain.NearbySession) error {
	data, err := json.Marshal(redisRecord{Lat: s.Origin.Lat, Long: s.Origin.Long, CreatedAt: s.CreatedAt})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := r.client.Set(ctx, r.key(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrStorage, s.ID, err)
	}
	return nil
}

// Get возвращает сессию
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.NearbySession, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Get - get %s: %v", ErrStorage, id, err)
	}

	var rec redisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: Get - decode %s: %v", ErrEncode, id, err)
	}

	return &domain.NearbySession{
		ID:        id,
		Origin:    domain.Coordinates{Lat: rec.Lat, Long: rec.Long},
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Delete удаляет сессию
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del %s: %v", ErrStorage, id, err)
	}
	return nil
}
