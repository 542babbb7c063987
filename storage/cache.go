package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/kevin-chtw/tw_mjcore/config"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ResultCache 缓存 service 的计算结果，结果只由请求决定
type ResultCache interface {
	Get(ctx context.Context, key string) (*structpb.Struct, bool, error)
	Set(ctx context.Context, key string, value *structpb.Struct) error
}

// Key 由操作名、规则名、规则配置摘要和请求内容生成缓存键，
// 配置不同的进程共用一个缓存时互不命中
func Key(op, ruleset, digest string, req *structpb.Struct) (string, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}
	h := sha256.New()
	h.Write([]byte(digest))
	h.Write([]byte{0})
	h.Write(data)
	return fmt.Sprintf("%s/%s/%s", op, ruleset, hex.EncodeToString(h.Sum(nil))), nil
}

func encode(value *structpb.Struct) ([]byte, error) {
	return protojson.Marshal(value)
}

func decode(data []byte) (*structpb.Struct, error) {
	value := &structpb.Struct{}
	if err := protojson.Unmarshal(data, value); err != nil {
		return nil, err
	}
	return value, nil
}

// NopCache 不缓存
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*structpb.Struct, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, string, *structpb.Struct) error {
	return nil
}

// New 按配置创建缓存，etcd 与 redis 需要在 Init 后使用
func New(cfg config.CacheConfig) (ResultCache, error) {
	switch cfg.Driver {
	case "", "none":
		return NopCache{}, nil
	case "etcd":
		return NewETCDCache(cfg), nil
	case "redis":
		return NewRedisCache(cfg), nil
	}
	return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
}
