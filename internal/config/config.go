// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"app"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		Driver string `mapstructure:"driver"`
		URL    string `mapstructure:"url"`
	} `mapstructure:"database"`
	Storage struct {
		// Driver is "sql", "redis" or "memory".
		Driver string `mapstructure:"driver"`
		Redis  struct {
			Addr     string `mapstructure:"addr"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
			Prefix   string `mapstructure:"prefix"`
		} `mapstructure:"redis"`
	} `mapstructure:"storage"`
	Catalog struct {
		// Path of a catalog YAML file; empty uses the built-in catalog.
		Path string `mapstructure:"path"`
	} `mapstructure:"catalog"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

// LoadConfig reads config.yaml from path (or the working directory), then
// applies APP_* environment variables. A .env file is loaded first if present.
func LoadConfig(path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env file: %s", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	// 環境変数は APP_ プレフィックス (例: APP_SERVER_PORT)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AUTH_ENABLED without the prefix is accepted too.
	_ = v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		log.Println("Warning: Config file not found. Using defaults and environment variables.")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	Cfg = cfg

	log.Printf("Config loaded: port=%s storage=%s auth=%t", Cfg.Server.Port, Cfg.Storage.Driver, Cfg.Auth.Enabled)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", AppName)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.url", DefaultDatabaseURL)
	v.SetDefault("storage.driver", DefaultStorageDriver)
	v.SetDefault("storage.redis.prefix", DefaultRedisPrefix)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-Profile-ID"})
	v.SetDefault("cors.max_age", 300)
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageSQL, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == StorageRedis && c.Storage.Redis.Addr == "" {
		return fmt.Errorf("config: storage.redis.addr is required for the redis storage driver")
	}
	if c.Auth.Enabled && len(c.JWT.SecretKey) < 16 {
		return fmt.Errorf("config: jwt.secret_key must be at least 16 characters when auth is enabled")
	}
	if c.JWT.AccessTokenTTL <= 0 {
		return fmt.Errorf("config: jwt.access_token_ttl must be positive")
	}
	return nil
}
