package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/assessflow/pipeline/pkg/database"
	"github.com/assessflow/pipeline/test/util"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")
		t.Setenv("DB_NAME", "")
		t.Setenv("DB_SSLMODE", "")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "pipeline", cfg.User)
		assert.Equal(t, "pipeline", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_PASSWORD", "hunter2")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "hunter2", cfg.Password)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "pipeline",
		Password: "hunter2",
		Database: "pipeline",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=pipeline password=hunter2 dbname=pipeline sslmode=require",
		cfg.DSN())
}

func TestHealth(t *testing.T) {
	_, db := util.SetupTestDatabase(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status, err := database.Health(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.ResponseTime, int64(0))
	assert.Equal(t, 10, status.MaxOpenConns)
}

func TestCreatePartialIndexesIdempotent(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	drv := entsql.OpenDB(dialect.Postgres, db)
	ctx := context.Background()

	// The test harness already created them once; a second pass must not
	// fail.
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialIndexes(ctx, drv))
}
