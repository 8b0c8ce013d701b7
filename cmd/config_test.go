package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sellerops/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SELLEROPS_DB_USER", "seller")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.KafkaWriteTimeout)
	assert.Equal(t, "0 * * * * *", cfg.ScheduledReportsCron)
	assert.Empty(t, cfg.KafkaBrokers())
	assert.Equal(t, "host=localhost port=5432 user=seller password= dbname=sellerops sslmode=disable", cfg.DSN())
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"SELLEROPS_DB_DRIVER=sqlite\nSELLEROPS_SQLITE_PATH=/tmp/ops.db\nSELLEROPS_HTTP_PORT=9000\n",
	), 0o600))
	t.Setenv("SELLEROPS_HTTP_PORT", "9100")
	t.Setenv("SELLEROPS_KAFKA_HOST", "kafka-1:9092, kafka-2:9092")
	t.Cleanup(func() {
		_ = os.Unsetenv("SELLEROPS_DB_DRIVER")
		_ = os.Unsetenv("SELLEROPS_SQLITE_PATH")
	})

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.HTTPPort, "environment wins over the .env file")
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/ops.db", cfg.DSN())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers())
}

func TestConfig_Validate(t *testing.T) {
	cfg := cmd.Config{DBDriver: "mysql", HTTPPort: "8080"}
	require.ErrorContains(t, cfg.Validate(), "DB_DRIVER")

	cfg = cmd.Config{DBDriver: "postgres", HTTPPort: "8080"}
	require.ErrorContains(t, cfg.Validate(), "DB_USER")

	cfg = cmd.Config{DBDriver: "sqlite", SQLitePath: "ops.db", HTTPPort: "8080"}
	require.NoError(t, cfg.Validate())
}
