package storage

// Copyright (c) TFG Co. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"context"
	"sync"
	"time"

	"github.com/kevin-chtw/tw_mjcore/config"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
	"google.golang.org/protobuf/types/known/structpb"
)

// ETCDCache module that keeps computed results in etcd under a lease
type ETCDCache struct {
	modules.Base
	cli             *clientv3.Client
	etcdEndpoints   []string
	etcdPrefix      string
	etcdDialTimeout time.Duration
	leaseTTL        time.Duration

	mu        sync.Mutex
	leaseID   clientv3.LeaseID
	leaseTime time.Time
}

// NewETCDCache returns a new instance of ETCDCache
func NewETCDCache(conf config.CacheConfig) *ETCDCache {
	return &ETCDCache{
		etcdEndpoints:   conf.Etcd.Endpoints,
		etcdPrefix:      conf.Prefix,
		etcdDialTimeout: conf.Etcd.DialTimeout,
		leaseTTL:        conf.TTL,
	}
}

// Get gets a cached result
func (c *ETCDCache) Get(ctx context.Context, key string) (*structpb.Struct, bool, error) {
	etcdRes, err := c.cli.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if len(etcdRes.Kvs) == 0 {
		return nil, false, nil
	}
	value, err := decode(etcdRes.Kvs[0].Value)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set puts the result into etcd, it expires with the current lease
func (c *ETCDCache) Set(ctx context.Context, key string, value *structpb.Struct) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	leaseID, err := c.lease(ctx)
	if err != nil {
		return err
	}
	_, err = c.cli.Put(ctx, key, string(data), clientv3.WithLease(leaseID))
	return err
}

// lease 租约过半后换新租约，保证结果至少保留 TTL 的一半
func (c *ETCDCache) lease(ctx context.Context) (clientv3.LeaseID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.leaseID != clientv3.NoLease && time.Since(c.leaseTime) < c.leaseTTL/2 {
		return c.leaseID, nil
	}
	l, err := c.cli.Grant(ctx, max(int64(c.leaseTTL.Seconds()), 1))
	if err != nil {
		return clientv3.NoLease, err
	}
	c.leaseID = l.ID
	c.leaseTime = time.Now()
	logger.Log.Debugf("[result cache] got leaseID: %x", l.ID)
	return c.leaseID, nil
}

// Init starts the result cache module
func (c *ETCDCache) Init() error {
	if c.cli == nil {
		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   c.etcdEndpoints,
			DialTimeout: c.etcdDialTimeout,
		})
		if err != nil {
			return err
		}
		c.cli = cli
	}
	// namespaced etcd :)
	c.cli.KV = namespace.NewKV(c.cli.KV, c.etcdPrefix)
	return nil
}

// Shutdown closes the etcd client
func (c *ETCDCache) Shutdown() error {
	return c.cli.Close()
}
