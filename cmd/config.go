package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable, e.g. SELLEROPS_HTTP_PORT. The unprefixed name
// (HTTP_PORT) is accepted as a fallback.
const EnvPrefix = "SELLEROPS"

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBDriver        string        `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost          string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort          string        `envconfig:"DB_PORT" default:"5432"`
	DBUser          string        `envconfig:"DB_USER"`
	DBPassword      string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME" default:"sellerops"`
	DBSslMode       string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxOpenConns  int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns  int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	DBConnLifetime  time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"sellerops.db"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"json"`
	EchoLogLevel string `envconfig:"ECHO_LOG_LEVEL" default:"warn"`

	// KafkaHost is a comma-separated broker list. Empty disables the Kafka publisher.
	KafkaHost           string        `envconfig:"KAFKA_HOST"`
	KafkaLifecycleTopic string        `envconfig:"KAFKA_LIFECYCLE_TOPIC" default:"sellerops.lifecycle"`
	KafkaWriteTimeout   time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`

	ScheduledReportsCron string `envconfig:"SCHEDULED_REPORTS_CRON" default:"0 * * * * *"`
	MetricsPath          string `envconfig:"METRICS_PATH" default:"/metrics"`
}

// LoadConfig reads the optional .env files and then the environment. Variables already
// set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.DBDriver {
	case "postgres":
		if c.DBUser == "" {
			errs = append(errs, errors.New("DB_USER is required for the postgres driver"))
		}
	case "sqlite":
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	return errors.Join(errs...)
}

// DSN is the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, broker := range strings.Split(c.KafkaHost, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}
