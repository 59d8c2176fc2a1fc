package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierhub/internal/adapters/out/postgres"
	"courierhub/internal/adapters/out/queue"
	"courierhub/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Numbering NumberingConfig `mapstructure:"numbering"`
	Jobs      JobsConfig      `mapstructure:"jobs"`
	Statuses  StatusesConfig  `mapstructure:"statuses"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type DatabaseConfig struct {
	Driver string     `mapstructure:"driver"` // postgres | sqlite
	DSN    string     `mapstructure:"dsn"`
	Pool   PoolConfig `mapstructure:"pool"`
}

type PoolConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (c PoolConfig) ToPoolConfig() postgres.PoolConfig {
	return postgres.PoolConfig{
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
	}
}

type LogConfig struct {
	Mode       string `mapstructure:"mode"` // debug | release
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Mode:       c.Mode,
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

type QueueConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Name     string `mapstructure:"name"`
}

func (c QueueConfig) ToQueueConfig() queue.Config {
	return queue.Config{
		Enabled:  c.Enabled,
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		Queue:    c.Name,
	}
}

type NumberingConfig struct {
	NodeID int64 `mapstructure:"node_id"`
}

type JobsConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	OutboxSchedule     string `mapstructure:"outbox_schedule"`
	OutboxBatchSize    int    `mapstructure:"outbox_batch_size"`
	SettlementSchedule string `mapstructure:"settlement_schedule"`
}

type StatusesConfig struct {
	SeedOnStart bool `mapstructure:"seed_on_start"`
}

// LoadConfig reads defaults, then config.yaml from dir (when present), then
// the environment, where http.port becomes HTTP_PORT. A .env file in dir is
// loaded into the environment first if it exists.
func LoadConfig(dir string) (Config, error) {
	if dir == "" {
		dir = "."
	}
	_ = godotenv.Load(strings.TrimSuffix(dir, "/") + "/.env")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "host=localhost user=courierhub password=courierhub dbname=courierhub port=5432 sslmode=disable")
	v.SetDefault("database.pool.max_open_conns", 20)
	v.SetDefault("database.pool.max_idle_conns", 5)
	v.SetDefault("database.pool.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("log.mode", "release")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.filename", "courierhub.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("queue.enabled", false)
	v.SetDefault("queue.host", "127.0.0.1")
	v.SetDefault("queue.port", 6379)
	v.SetDefault("queue.password", "")
	v.SetDefault("queue.db", 0)
	v.SetDefault("queue.name", queue.DefaultQueue)
	v.SetDefault("numbering.node_id", 1)
	v.SetDefault("jobs.enabled", true)
	v.SetDefault("jobs.outbox_schedule", "*/5 * * * * *")
	v.SetDefault("jobs.outbox_batch_size", 100)
	v.SetDefault("jobs.settlement_schedule", "0 0 2 * * MON")
	v.SetDefault("statuses.seed_on_start", true)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
