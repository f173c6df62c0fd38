package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-checkout/docs"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/app"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/events"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/gateway"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/migrations"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

// @title           Storefront Checkout API
// @version         1.0
// @description     Документация HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)

	store := newStore(ctx, logger, conf, application)
	orderCache := newCache(conf, application)

	var publisher interface {
		service.EventPublisher
		app.Closer
	} = events.Nop{}
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(logger, conf.Kafka)
	}
	application.SetClosers(publisher)

	gatewayClient := gateway.NewClient(conf.Gateway)
	if gatewayClient.KeyID() == "" || conf.Gateway.KeySecret == "" {
		logger.Warn("payment gateway credentials are not configured, checkout calls will fail")
	}

	orderService := service.NewOrderService(logger, store, store, orderCache, publisher)
	checkoutService := service.NewCheckoutService(logger, store, gatewayClient, orderCache, conf.Storefront.PublicURL)
	paymentService := service.NewPaymentService(logger, store, gatewayClient, orderCache, publisher, conf.Gateway.KeySecret)
	addressService := service.NewAddressService(logger, store)

	limiter := middleware.NewRateLimiter(conf.RateLimit.RPS, conf.RateLimit.Burst)

	handler.RegisterMetrics()
	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewCheckoutHandler(logger, checkoutService, limiter.Handler),
		handler.NewPaymentHandler(logger, paymentService, conf.Storefront.SiteURL, limiter.Handler),
		handler.NewAddressHandler(logger, addressService),
		handler.NewAdminHandler(logger, orderService, middleware.AdminSecret(conf.Admin.Secret)),
	)
	if conf.Kafka.Enabled {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	application.SetStarters(orderCache, limiter, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

type orderStore interface {
	service.OrderRepo
	service.AddressRepo
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type closerRegistry interface {
	SetClosers(closers ...app.Closer)
}

func newStore(ctx context.Context, logger *slog.Logger, conf config.Config, closers closerRegistry) orderStore {
	if conf.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory store, orders are lost on restart")
		return repo.NewMemoryRepo()
	}

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	closers.SetClosers(closerFunc(db.Close))
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", postgres.Migrate(ctx, db, migrations.FS))
	}

	return repo.NewPostgresRepo(trm.NewManager(db))
}

type startableCache interface {
	service.Cache
	app.Starter
}

func newCache(conf config.Config, closers closerRegistry) startableCache {
	if conf.Cache.Driver == config.CacheDriverRedis {
		c := cache.NewRedisCache(redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		}), "storefront:order:", conf.Cache.TTL)
		closers.SetClosers(c)
		return c
	}
	return cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
