package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	AWS     AWSConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Pricing PricingConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type StorageConfig struct {
	Driver                 string
	SQLitePath             string
	EstimatesTable         string
	CategoryRelationsTable string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type CatalogConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// RedisConfig is optional; an empty Addr disables the catalog cache.
type RedisConfig struct {
	Addr string
}

// KafkaConfig is optional; no brokers disables event publishing.
type KafkaConfig struct {
	Brokers        []string
	EstimatesTopic string
}

type PricingConfig struct {
	DefaultMarkup float64
}

type LoggingConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("SQLITE_PATH", "./estimator.db")
	v.SetDefault("ESTIMATES_TABLE", "estimates")
	v.SetDefault("CATEGORY_RELATIONS_TABLE", "category_relations")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("CATALOG_TIMEOUT", "5s")
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
	v.SetDefault("KAFKA_ESTIMATES_TOPIC", "estimate-events")
	v.SetDefault("DEFAULT_MARKUP", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Storage: StorageConfig{
			Driver:                 strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
			SQLitePath:             v.GetString("SQLITE_PATH"),
			EstimatesTable:         v.GetString("ESTIMATES_TABLE"),
			CategoryRelationsTable: v.GetString("CATEGORY_RELATIONS_TABLE"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Catalog: CatalogConfig{
			BaseURL:  strings.TrimRight(v.GetString("CATALOG_BASE_URL"), "/"),
			Timeout:  v.GetDuration("CATALOG_TIMEOUT"),
			CacheTTL: v.GetDuration("CATALOG_CACHE_TTL"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Brokers:        splitList(v.GetString("KAFKA_BROKERS")),
			EstimatesTopic: v.GetString("KAFKA_ESTIMATES_TOPIC"),
		},
		Pricing: PricingConfig{
			DefaultMarkup: v.GetFloat64("DEFAULT_MARKUP"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	switch cfg.Storage.Driver {
	case StorageDynamoDB, StorageSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
	if cfg.Pricing.DefaultMarkup < 0 {
		return Config{}, fmt.Errorf("DEFAULT_MARKUP must not be negative, got %v", cfg.Pricing.DefaultMarkup)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
