package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customerlib/internal/cache"
	"github.com/umalmyha/customerlib/internal/model"
)

type cachedCustomerRepository struct {
	CustomerRepository
	cache cache.CustomerCache
}

// NewCachedCustomerRepository decorates repo with cache-aside reads, cached entry is evicted on update and delete
func NewCachedCustomerRepository(repo CustomerRepository, customerCache cache.CustomerCache) CustomerRepository {
	return &cachedCustomerRepository{CustomerRepository: repo, cache: customerCache}
}

func (r *cachedCustomerRepository) Read(ctx context.Context, id int) (*model.Customer, error) {
	c, err := r.cache.FindByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("customerId", id).Warn("failed to read customer from cache")
	}
	if c != nil {
		return c, nil
	}

	c, err = r.CustomerRepository.Read(ctx, id)
	if err != nil || c == nil {
		return c, err
	}

	if err := r.cache.Cache(ctx, c); err != nil {
		logrus.WithError(err).WithField("customerId", id).Warn("failed to cache customer")
	}
	return c, nil
}

func (r *cachedCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	if err := r.CustomerRepository.Update(ctx, c); err != nil {
		return err
	}
	return r.cache.EvictByID(ctx, c.ID)
}

func (r *cachedCustomerRepository) Delete(ctx context.Context, id int) error {
	if err := r.CustomerRepository.Delete(ctx, id); err != nil {
		return err
	}
	return r.cache.EvictByID(ctx, id)
}
