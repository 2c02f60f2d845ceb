package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "APP"

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Ledger   *LedgerConfig   `mapstructure:"ledger"`
	Metrics  *MetricsConfig  `mapstructure:"metrics"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DB              string        `mapstructure:"db"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LedgerConfig bounds the work a batch registration may run in parallel.
type LedgerConfig struct {
	MaxConcurrency int `mapstructure:"max_concurrency"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Load reads the YAML file at path. Every key can be overridden from the
// environment, e.g. APP_API_PORT or APP_POSTGRES_HOST.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := parse(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.jwt_ttl", 24*time.Hour)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.max_open_conns", 20)
	v.SetDefault("postgres.conn_max_lifetime", time.Hour)
	v.SetDefault("ledger.max_concurrency", 8)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "activities")
}

func parse(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	// Lists given through the environment arrive as one comma separated value.
	if len(conf.API.AllowedCORSDomains) == 1 && strings.Contains(conf.API.AllowedCORSDomains[0], ",") {
		conf.API.AllowedCORSDomains = strings.Split(conf.API.AllowedCORSDomains[0], ",")
	}

	return conf, nil
}

// Validate checks the settings the server cannot start without. The
// postgres section is only required when no database URL is given.
func (c *AppConfig) Validate(databaseURL string) error {
	if c.API.Port == "" {
		return errors.New("api.port is required")
	}
	if c.API.JWTSigningKey == "" {
		return errors.New("api.jwt_signing_key is required")
	}
	if databaseURL == "" {
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
		if c.Postgres.DB == "" {
			return errors.New("postgres.db is required")
		}
	}
	if c.Ledger.MaxConcurrency < 1 {
		return errors.New("ledger.max_concurrency must be at least 1")
	}

	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.API.Environment == "production"
}
