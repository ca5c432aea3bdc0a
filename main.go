package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customerlib/internal/cache"
	"github.com/umalmyha/customerlib/internal/config"
	"github.com/umalmyha/customerlib/internal/infra"
	"github.com/umalmyha/customerlib/internal/repository"
	"github.com/umalmyha/customerlib/internal/service"
	"github.com/umalmyha/customerlib/internal/validation"
	"github.com/umalmyha/customerlib/pkg/db/transactor"
)

const connectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.Logger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pgPool.Close()

	var redisClient *redis.Client
	if cfg.RedisCfg.Enabled {
		redisClient, err = infra.Redis(ctx, cfg.RedisCfg)
		if err != nil {
			logrus.Fatal(err)
		}
		defer redisClient.Close()
	}

	echoValidator, err := validation.EnglishEcho()
	if err != nil {
		logrus.Fatalf("failed to build validator - %v", err)
	}

	e := infra.Router(services(pgPool, redisClient, cfg.RedisCfg), echoValidator)

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}

func services(pgPool *pgxpool.Pool, redisClient *redis.Client, redisCfg config.RedisCfg) infra.Services {
	// Transactors
	trx := transactor.NewPgxTransactor(pgPool)
	trxExecutor := transactor.NewPgxWithinTransactionExecutor(pgPool)

	// Repositories
	customerRepo := repository.NewPostgresCustomerRepository(trxExecutor)
	if redisClient != nil {
		customerRepo = repository.NewCachedCustomerRepository(customerRepo, cache.NewRedisCustomerCache(redisClient, redisCfg.CustomerTTL))
	}
	addressRepo := repository.NewPostgresAddressRepository(trxExecutor)
	noteRepo := repository.NewPostgresNoteRepository(trxExecutor)

	// Services
	return infra.Services{
		Customer: service.NewCustomerService(trx, customerRepo, addressRepo, noteRepo),
		Address:  service.NewAddressService(trx, customerRepo, addressRepo),
		Note:     service.NewNoteService(trx, customerRepo, noteRepo),
	}
}
