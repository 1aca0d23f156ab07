package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix         = "APP_"
	defaultConfigFile = "config.yaml"
)

type Config struct {
	Server ServerConfig `koanf:"server" validate:"required"`
	DB     DBConfig     `koanf:"db"     validate:"required"`
	Log    LogConfig    `koanf:"log"    validate:"required"`
	CORS   CORSConfig   `koanf:"cors"`
	Seed   SeedConfig   `koanf:"seed"`
}

type ServerConfig struct {
	Addr              string        `koanf:"addr"                validate:"required"`
	GinMode           string        `koanf:"gin_mode"            validate:"omitempty,oneof=debug release test"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"min=1s"`
	ReadTimeout       time.Duration `koanf:"read_timeout"        validate:"min=1s"`
	WriteTimeout      time.Duration `koanf:"write_timeout"       validate:"min=1s"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"        validate:"min=1s"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"    validate:"min=1s"`
}

type DBConfig struct {
	Driver          string        `koanf:"driver"             validate:"required,oneof=sqlite mysql pgx"`
	DSN             string        `koanf:"dsn"                validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"     validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"     validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	PingTimeout     time.Duration `koanf:"ping_timeout"       validate:"min=100ms"`
}

type LogConfig struct {
	Level          string `koanf:"level"             validate:"required,oneof=debug info warn error"`
	Format         string `koanf:"format"            validate:"required,oneof=json text"`
	File           string `koanf:"file"`
	FileMaxSizeMB  int    `koanf:"file_max_size_mb"  validate:"min=1"`
	FileMaxBackups int    `koanf:"file_max_backups"  validate:"min=0"`
	FileMaxAgeDays int    `koanf:"file_max_age_days" validate:"min=0"`
}

type CORSConfig struct {
	// AllowedOrigins is a comma separated list so it can be set from one env var.
	AllowedOrigins string `koanf:"allowed_origins"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

func defaults() map[string]any {
	return map[string]any{
		"server.addr":                ":8080",
		"server.gin_mode":            "",
		"server.read_header_timeout": "10s",
		"server.read_timeout":        "20s",
		"server.write_timeout":       "20s",
		"server.idle_timeout":        "60s",
		"server.shutdown_timeout":    "10s",

		"db.driver":             "sqlite",
		"db.dsn":                "travel.db",
		"db.max_open_conns":     25,
		"db.max_idle_conns":     25,
		"db.conn_max_lifetime":  "10m",
		"db.conn_max_idle_time": "5m",
		"db.ping_timeout":       "3s",

		"log.level":             "info",
		"log.format":            "json",
		"log.file":              "",
		"log.file_max_size_mb":  100,
		"log.file_max_backups":  3,
		"log.file_max_age_days": 28,

		"cors.allowed_origins": "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173",

		"seed.enabled": true,
	}
}

// Load resolves configuration with the following precedence (highest first):
//  1. APP_ environment variables (APP_DB_DSN -> db.dsn)
//  2. YAML file at path, or config.yaml when path is empty and the file exists
//  3. defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigFile
	}
	if err := loadFile(k, path, explicit); err != nil {
		return nil, fmt.Errorf("loading config file %q: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// envKey maps APP_SERVER_READ_TIMEOUT to server.read_timeout. Only the first
// underscore separates the section so multi-word keys survive.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if required {
			return err
		}
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate fails fast so the service never starts with a broken config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(msgs, "\n  "))
	}
	return nil
}

func formatFieldError(e validator.FieldError) string {
	parts := strings.Split(e.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	field := strings.ToLower(strings.Join(parts, "."))

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
