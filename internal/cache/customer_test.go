package cache

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customerlib/internal/model"
)

const redisPort = "6379/tcp"

var redisClient *redis.Client

func TestMain(m *testing.M) {
	flag.Parse()

	var purge func()
	if !testing.Short() {
		purge = startRedis()
	}

	code := m.Run()

	if purge != nil {
		purge()
	}
	os.Exit(code)
}

func startRedis() func() {
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		logrus.Warnf("docker is unavailable, redis tests are skipped - %v", err)
		return nil
	}

	if err := dockerPool.Client.Ping(); err != nil {
		logrus.Warnf("failed to connect to docker, redis tests are skipped - %v", err)
		return nil
	}

	rds, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		logrus.Fatalf("failed to start redis - %v", err)
	}

	purge := func() {
		if err := dockerPool.Purge(rds); err != nil {
			logrus.Errorf("failed to purge redis - %v", err)
		}
	}

	err = dockerPool.Retry(func() error {
		redisClient = redis.NewClient(&redis.Options{Addr: rds.GetHostPort(redisPort)})
		return redisClient.Ping(context.Background()).Err()
	})
	if err != nil {
		purge()
		logrus.Fatalf("failed to establish connection to redis - %v", err)
	}
	return purge
}

func TestRedisCustomerCache(t *testing.T) {
	if redisClient == nil {
		t.Skip("redis is not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	customerCache := NewRedisCustomerCache(redisClient, time.Minute)

	lastName := "Walls"
	amount := decimal.RequireFromString("99.99")
	customer := &model.Customer{
		ID:                   31,
		Person:               model.Person{LastName: &lastName},
		TotalPurchasesAmount: &amount,
	}

	t.Log("missing customer is not found")
	{
		c, err := customerCache.FindByID(ctx, customer.ID)
		require.NoError(t, err)
		require.Nil(t, c)
	}

	t.Log("cached customer is found")
	{
		require.NoError(t, customerCache.Cache(ctx, customer), "failed to cache customer")

		c, err := customerCache.FindByID(ctx, customer.ID)
		require.NoError(t, err)
		require.True(t, customer.EqualsByValue(c), "cached customer differs from original")

		ttl, err := redisClient.TTL(ctx, "customer:31").Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Duration(0), "cached entry must expire")
	}

	t.Log("evicted customer is not found")
	{
		require.NoError(t, customerCache.EvictByID(ctx, customer.ID))

		c, err := customerCache.FindByID(ctx, customer.ID)
		require.NoError(t, err)
		require.Nil(t, c)
	}
}
