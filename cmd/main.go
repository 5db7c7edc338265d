package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/bot"
	"github.com/seb0305/aenigma-verborum/internal/client"
	"github.com/seb0305/aenigma-verborum/internal/config"
	"github.com/seb0305/aenigma-verborum/internal/event"
	"github.com/seb0305/aenigma-verborum/internal/handler"
	"github.com/seb0305/aenigma-verborum/internal/repository"
	"github.com/seb0305/aenigma-verborum/internal/service"
	"github.com/seb0305/aenigma-verborum/internal/storage/cache"
	"github.com/seb0305/aenigma-verborum/internal/storage/db"

	"go.uber.org/zap"
)

type publisherI interface {
	service.EventPublisherI
	Close()
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupLookupCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) client.CacheI {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryLookupCache()
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory lookup cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return cache.NewMemoryLookupCache()
	}
	return cache.NewRedisLookupCache(rdb)
}

func setupPublisher(cfg config.EventsConfig, logger *zap.Logger) publisherI {
	if cfg.AMQPURL == "" {
		return event.NewNop(logger)
	}

	p, err := event.NewPublisher(cfg.AMQPURL, cfg.Exchange, logger)
	if err != nil {
		logger.Warn("amqp unavailable, events are only logged", zap.Error(err))
		return event.NewNop(logger)
	}
	return p
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	repos := repository.NewRepository(conn, repository.DialectOf(conn.DriverName()))
	tx := repository.NewTransactor(conn)

	clients := client.InitClients(cfg.Lookup)
	lookup := client.NewCachedLookup(
		client.NewLookupFromClients(logger, clients, cfg.Lookup.MyMemoryURL),
		setupLookupCache(ctx, cfg.Cache, logger),
		cfg.Cache.TTL,
		logger,
	)

	events := setupPublisher(cfg.Events, logger)
	defer events.Close()

	services := service.InitServices(lookup, repos, tx, events, logger, service.Options{LookupTimeout: cfg.Lookup.Timeout})

	if cfg.BotToken != "" {
		telegram, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache.NewCache(), logger)
		if err != nil {
			logger.Fatal("failed init telegram bot", zap.Error(err))
		}
		go telegram.Start(ctx)
	}

	h := handler.NewHandler(services, logger, handler.Options{
		UserID:      cfg.App.UserID,
		StaticDir:   cfg.App.StaticDir,
		CORSOrigins: cfg.App.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           h.InitRoutes(),
		ReadHeaderTimeout: cfg.App.Timeout,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
