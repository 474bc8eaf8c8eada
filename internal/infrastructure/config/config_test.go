package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StorageDynamoDB, cfg.Storage.Driver)
	assert.Equal(t, "estimates", cfg.Storage.EstimatesTable)
	assert.Equal(t, "category_relations", cfg.Storage.CategoryRelationsTable)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, "estimate-events", cfg.Kafka.EstimatesTopic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Zero(t, cfg.Pricing.DefaultMarkup)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/est.db")
	t.Setenv("CATALOG_BASE_URL", "http://shop.local/api/")
	t.Setenv("CATALOG_TIMEOUT", "250ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("DEFAULT_MARKUP", "12.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StorageSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/est.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "http://shop.local/api", cfg.Catalog.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Catalog.Timeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 12.5, cfg.Pricing.DefaultMarkup)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative markup", func(t *testing.T) {
		t.Setenv("DEFAULT_MARKUP", "-5")
		_, err := Load()
		assert.Error(t, err)
	})
}
