package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	CacheDriverLRU   = "lru"
	CacheDriverRedis = "redis"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Store Store `validate:"required"`

	// Проверяются отдельно, только если включены
	Postgres Postgres `validate:"-"`
	Kafka    Kafka    `validate:"-"`
	Redis    Redis    `validate:"-"`

	Cache Cache `validate:"required"`

	Gateway Gateway `validate:"required"`

	Storefront Storefront `validate:"required"`

	Admin Admin

	RateLimit RateLimit `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	ReadHeaderTimeout time.Duration `validate:"gte=0"`
}

type Store struct {
	Driver string `validate:"required,oneof=postgres memory"`
}

type Kafka struct {
	Enabled bool

	GroupID     string   `validate:"required"`
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	StatusTopic string   `validate:"required"`
	EventsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	// Migrate applies the embedded schema on start-up.
	Migrate bool
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type Cache struct {
	Driver   string        `validate:"required,oneof=lru redis"`
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Gateway holds payment gateway credentials. Empty credentials are allowed at
// start-up; gateway operations fail until they are set.
type Gateway struct {
	BaseURL   string `validate:"required,url"`
	KeyID     string
	KeySecret string
	Timeout   time.Duration `validate:"gt=0"`
}

type Storefront struct {
	// PublicURL is the externally reachable base URL of this service, used to
	// build payment link callback URLs.
	PublicURL string `validate:"required,url"`
	// SiteURL is the base URL of the storefront that renders /order/confirm.
	SiteURL string `validate:"required,url"`
}

type Admin struct {
	Secret string
}

type RateLimit struct {
	RPS   float64 `validate:"gt=0"`
	Burst int     `validate:"gte=1"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:              env("HOST", "localhost"),
			Port:              env("PORT", "8080"),
			ReadHeaderTimeout: envDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Store: Store{
			Driver: env("STORE_DRIVER", StoreDriverPostgres),
		},

		Kafka: Kafka{
			Enabled:     envBool("KAFKA_ENABLED", true),
			GroupID:     env("KAFKA_GROUP_ID", "storefront-checkout"),
			StatusTopic: env("KAFKA_STATUS_TOPIC", "order-status"),
			EventsTopic: env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			Migrate: envBool("POSTGRES_MIGRATE", true),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Cache: Cache{
			Driver:   env("CACHE_DRIVER", CacheDriverLRU),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Gateway: Gateway{
			BaseURL:   env("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),
			KeyID:     env("RAZORPAY_KEY_ID", ""),
			KeySecret: env("RAZORPAY_KEY_SECRET", ""),
			Timeout:   envDuration("RAZORPAY_TIMEOUT", 10*time.Second),
		},

		Storefront: Storefront{
			PublicURL: env("PUBLIC_BASE_URL", "http://localhost:8080"),
			SiteURL:   env("STOREFRONT_URL", "http://localhost:3000"),
		},

		Admin: Admin{
			Secret: env("ADMIN_API_SECRET", ""),
		},

		RateLimit: RateLimit{
			RPS:   envFloat("PAYMENTS_RATE_LIMIT_RPS", 50),
			Burst: envInt("PAYMENTS_RATE_LIMIT_BURST", 100),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Store.Driver == StoreDriverPostgres {
		if err := validate.Struct(c.Postgres); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	if c.Kafka.Enabled {
		if err := validate.Struct(c.Kafka); err != nil {
			return fmt.Errorf("kafka: %w", err)
		}
	}
	if c.Cache.Driver == CacheDriverRedis {
		if err := validate.Struct(c.Redis); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
