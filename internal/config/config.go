// Package config loads server settings from a YAML file, an optional .env
// file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/keitarosync/internal/validation"
)

// Config holds all configuration for the server
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Keitaro  KeitaroConfig  `yaml:"keitaro"`
	Cache    CacheConfig    `yaml:"cache"`
	Campaign CampaignConfig `yaml:"campaign"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host                string   `yaml:"host"`
	CORSOrigins         []string `yaml:"cors_origins"`
	Port                int      `yaml:"port"`
	ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
}

// Address returns host:port for the listener.
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ReadTimeout returns the request read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the response write timeout. Pushes wait on the
// tracker, so it is kept above the upstream timeout.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// DatabaseConfig selects the entity store.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // "sqlite" или "postgres"
	DSN    string `yaml:"dsn"`
}

// KeitaroConfig holds the tracker API settings.
type KeitaroConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
}

// Timeout returns the per-attempt upstream timeout.
func (c KeitaroConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheConfig selects the reference-data cache backend.
type CacheConfig struct {
	Backend       string `yaml:"backend"` // "memory" или "redis"
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisPrefix   string `yaml:"redis_prefix"`
	TTLSeconds    int    `yaml:"ttl_seconds"`
	RedisDB       int    `yaml:"redis_db"`
}

// TTL returns the reference-data freshness window.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// OperatorConfig is one operator allowed to log in.
type OperatorConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"` // argon2id, см. `server hash-password`
}

// AuthConfig holds operator authentication settings
type AuthConfig struct {
	JWTSecret             string           `yaml:"jwt_secret"`
	Operators             []OperatorConfig `yaml:"operators"`
	AccessTokenTTLMinutes int              `yaml:"access_token_ttl_minutes"`
	LoginRatePerMinute    int              `yaml:"login_rate_per_minute"`
	Enabled               bool             `yaml:"enabled"`
}

// AccessTokenTTL returns the lifetime of issued access tokens.
func (c AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// Operator returns the configured operator with the given name.
func (c AuthConfig) Operator(username string) (OperatorConfig, bool) {
	for _, op := range c.Operators {
		if op.Username == username {
			return op, true
		}
	}
	return OperatorConfig{}, false
}

// CampaignConfig holds defaults for campaigns created through the API.
type CampaignConfig struct {
	CostType       string `yaml:"cost_type"`
	GeoRedirectURL string `yaml:"geo_redirect_url"`
	CookiesTTL     int    `yaml:"cookies_ttl"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Supported drivers and cache backends.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	CacheMemory    = "memory"
	CacheRedis     = "redis"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadFromEnv loads .env (if present), the YAML file at path (if path is
// set) and then applies environment overrides. The result is validated.
func LoadFromEnv(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 90
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverSQLite
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == DriverSQLite {
		cfg.Database.DSN = "keitarosync.db"
	}
	if cfg.Keitaro.TimeoutSeconds == 0 {
		cfg.Keitaro.TimeoutSeconds = 30
	}
	if cfg.Keitaro.MaxRetries == 0 {
		cfg.Keitaro.MaxRetries = 3
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = CacheMemory
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 600
	}
	if cfg.Cache.RedisPrefix == "" {
		cfg.Cache.RedisPrefix = "keitarosync:ref:"
	}
	if cfg.Auth.AccessTokenTTLMinutes == 0 {
		cfg.Auth.AccessTokenTTLMinutes = 60
	}
	if cfg.Auth.LoginRatePerMinute == 0 {
		cfg.Auth.LoginRatePerMinute = 10
	}
	if cfg.Campaign.CookiesTTL == 0 {
		cfg.Campaign.CookiesTTL = 24
	}
	if cfg.Campaign.CostType == "" {
		cfg.Campaign.CostType = "CPC"
	}
	if cfg.Campaign.GeoRedirectURL == "" {
		cfg.Campaign.GeoRedirectURL = "https://www.google.com"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("KEITARO_API_HOST"); v != "" {
		cfg.Keitaro.BaseURL = v
	}
	if v := os.Getenv("KEITARO_API_TOKEN"); v != "" {
		cfg.Keitaro.APIKey = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
		cfg.Cache.Backend = CacheRedis
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}

// Validate reports configuration errors that would make the server unusable.
func (c *Config) Validate() error {
	var errs []error

	if c.Keitaro.BaseURL == "" {
		errs = append(errs, errors.New("keitaro.base_url is required"))
	}
	if c.Keitaro.APIKey == "" {
		errs = append(errs, errors.New("keitaro.api_key is required"))
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, errors.New("cache.redis_addr is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend %q is not supported", c.Cache.Backend))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}

	if c.Auth.Enabled {
		if len(c.Auth.JWTSecret) < 32 {
			errs = append(errs, errors.New("auth.jwt_secret must be at least 32 bytes"))
		}
		if len(c.Auth.Operators) == 0 {
			errs = append(errs, errors.New("auth.operators must not be empty when auth is enabled"))
		}
		for _, op := range c.Auth.Operators {
			if err := validation.ValidateOperatorName(op.Username); err != nil {
				errs = append(errs, fmt.Errorf("auth.operators: %w", err))
			}
			if op.PasswordHash == "" {
				errs = append(errs, fmt.Errorf("auth.operators: %s has no password_hash", op.Username))
			}
		}
	}

	return errors.Join(errs...)
}
