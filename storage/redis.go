package storage

import (
	"context"
	"errors"
	"time"

	"github.com/kevin-chtw/tw_mjcore/config"
	"github.com/redis/go-redis/v9"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	"google.golang.org/protobuf/types/known/structpb"
)

// RedisCache 以 redis 保存结果，键带过期时间
type RedisCache struct {
	modules.Base
	cli    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(cfg config.CacheConfig) *RedisCache {
	return &RedisCache{
		cli: redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}),
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
	}
}

// Init 检查连接
func (c *RedisCache) Init() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.cli.Ping(ctx).Err(); err != nil {
		return err
	}
	logger.Log.Infof("[result cache] redis connected: %s", c.cli.Options().Addr)
	return nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*structpb.Struct, bool, error) {
	data, err := c.cli.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	value, err := decode(data)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value *structpb.Struct) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	return c.cli.Set(ctx, c.prefix+key, data, c.ttl).Err()
}

func (c *RedisCache) Shutdown() error {
	return c.cli.Close()
}
