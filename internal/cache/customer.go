package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/umalmyha/customerlib/internal/model"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultCustomerTimeToLive is applied when cache is built with non-positive ttl
const DefaultCustomerTimeToLive = 10 * time.Minute

// CustomerCache keeps customer rows without owned addresses and notes
type CustomerCache interface {
	FindByID(context.Context, int) (*model.Customer, error)
	EvictByID(context.Context, int) error
	Cache(context.Context, *model.Customer) error
}

type redisCustomerCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCustomerCache builds redis-backed CustomerCache
func NewRedisCustomerCache(client redis.Cmdable, ttl time.Duration) CustomerCache {
	if ttl <= 0 {
		ttl = DefaultCustomerTimeToLive
	}
	return &redisCustomerCache{client: client, ttl: ttl}
}

func (r *redisCustomerCache) FindByID(ctx context.Context, id int) (*model.Customer, error) {
	res, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var c model.Customer
	if err := msgpack.Unmarshal(res, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *redisCustomerCache) EvictByID(ctx context.Context, id int) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisCustomerCache) Cache(ctx context.Context, c *model.Customer) error {
	encoded, err := msgpack.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.SetNX(ctx, r.key(c.ID), encoded, r.ttl).Err()
}

func (r *redisCustomerCache) key(id int) string {
	return fmt.Sprintf("customer:%d", id)
}
