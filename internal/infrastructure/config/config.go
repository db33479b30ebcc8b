package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	UsersAPI UsersAPIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=water_distribution_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// AdminCacheTTL > 0 enables the admin-list cache decorator.
	AdminCacheTTL time.Duration `env:"REDIS_ADMIN_CACHE_TTL, default=0"`
}

// UsersAPIConfig configures the external users-service gateway. Loaded once
// at startup and never mutated; exactly one auth scheme is active, and
// credentials of inactive schemes are ignored.
type UsersAPIConfig struct {
	BaseURL string `env:"USERS_API_BASE_URL, default=https://lab.vallegrande.edu.pe/jass/ms-users"`

	AdminsPath   string `env:"USERS_API_ADMINS_PATH,     default=/internal/organizations/{organizationId}/admins"`
	UsersPath    string `env:"USERS_API_USERS_PATH,      default=/internal/organizations/{organizationId}/users"`
	ClientsPath  string `env:"USERS_API_CLIENTS_PATH,    default=/internal/organizations/{organizationId}/clients"`
	UserByIDPath string `env:"USERS_API_USER_BY_ID_PATH, default=/internal/users/{userId}"`

	// AuthScheme is one of bearer, apikey, basic, none.
	AuthScheme string `env:"USERS_API_AUTH_SCHEME, default=bearer"`
	AuthToken  string `env:"USERS_API_AUTH_TOKEN"`
	APIKey     string `env:"USERS_API_KEY"`
	Username   string `env:"USERS_API_USERNAME"`
	Password   string `env:"USERS_API_PASSWORD"`

	ConnectTimeoutMs int `env:"USERS_API_CONNECT_TIMEOUT_MS, default=5000"`
	ReadTimeoutMs    int `env:"USERS_API_READ_TIMEOUT_MS,    default=10000"`

	RetryMaxAttempts int `env:"USERS_API_RETRY_MAX_ATTEMPTS,  default=3"`
	RetryBaseDelayMs int `env:"USERS_API_RETRY_BASE_DELAY_MS, default=1000"`
}

// ConnectTimeout returns the connect timeout as a duration.
func (c UsersAPIConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutMs) * time.Millisecond
}

// ReadTimeout returns the response timeout as a duration.
func (c UsersAPIConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMs) * time.Millisecond
}

// RetryBaseDelay returns the initial backoff interval as a duration.
func (c UsersAPIConfig) RetryBaseDelay() time.Duration {
	return time.Duration(c.RetryBaseDelayMs) * time.Millisecond
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
