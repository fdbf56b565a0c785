package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/oneservice/config"
	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
)

// setServicesScript writes a listing only while the generation it was read
// under is still current.
var setServicesScript = redis.NewScript(`
if (redis.call('GET', KEYS[1]) or '0') ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[2], ARGV[2], ARGV[3])
if tonumber(ARGV[4]) > 0 then
	redis.call('PEXPIRE', KEYS[2], ARGV[4])
end
return 1
`)

type RedisCache struct {
	client      *redis.Client
	servicesTTL time.Duration
}

// servicesPayload wraps a listing so it can be stored as one BSON document.
type servicesPayload struct {
	Services []domain.Document `bson:"services"`
}

func NewRedisCache(cfg config.RedisConfig, servicesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		servicesTTL: servicesTTL,
	}
}

// GetServices returns nil, nil on a miss.
func (c *RedisCache) GetServices(ctx context.Context, ownerEmail string) ([]domain.Document, error) {
	data, err := c.client.HGet(ctx, servicesKey, servicesField(ownerEmail)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return nil, err
	}
	dec.DefaultDocumentM()

	var payload servicesPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cached services: %w", err)
	}
	if payload.Services == nil {
		payload.Services = make([]domain.Document, 0)
	}
	return payload.Services, nil
}

// ServicesGeneration returns the counter bumped by every invalidation. A
// listing read from the store must be cached under the generation observed
// before the read.
func (c *RedisCache) ServicesGeneration(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, servicesGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// SetServices stores the listing unless an invalidation happened after
// generation was read; a stale listing is dropped silently.
func (c *RedisCache) SetServices(ctx context.Context, ownerEmail string, generation int64, services []domain.Document) error {
	if services == nil {
		services = make([]domain.Document, 0)
	}
	payload, err := bson.Marshal(servicesPayload{Services: services})
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}

	return setServicesScript.Run(ctx, c.client,
		[]string{servicesGenerationKey, servicesKey},
		generation, servicesField(ownerEmail), payload, c.servicesTTL.Milliseconds(),
	).Err()
}

// InvalidateServices drops every cached listing, filtered or not, and moves
// the generation forward so in-flight fills are rejected.
func (c *RedisCache) InvalidateServices(ctx context.Context) error {
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, servicesGenerationKey)
	pipe.Del(ctx, servicesKey)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

const (
	servicesKey           = "cache:services"
	servicesGenerationKey = "cache:services:gen"
)

func servicesField(ownerEmail string) string {
	if ownerEmail == "" {
		return "all"
	}
	return "owner:" + ownerEmail
}
