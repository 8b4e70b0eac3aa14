package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TrustedProxies lists the CIDR ranges whose X-Forwarded-For header is
	// believed. Empty means clients are identified by the socket address.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	Auth       AuthConfig
	Store      StoreConfig
	Mongo      MongoConfig
	SQL        SQLConfig
	Redis      RedisConfig
	Pagination PaginationConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	TokenTTL   time.Duration `env:"JWT_TTL,     default=1h"`
	BcryptCost int           `env:"BCRYPT_COST, default=12"`

	// Bootstrap administrator, created at startup when both are set.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type StoreConfig struct {
	// Driver is one of mongo, mysql, postgres, sqlite.
	Driver string `env:"STORE_DRIVER, default=mongo"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bilemo"`
}

type SQLConfig struct {
	DSN          string `env:"SQL_DSN, default=file:bilemo.db"`
	MaxOpenConns int    `env:"SQL_MAX_OPEN_CONNS, default=10"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED, default=false"`
	Addr     string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB       int           `env:"REDIS_DB,      default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL,     default=5m"`

	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT,  default=10"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// PaginationConfig holds the default page size of each collection.
type PaginationConfig struct {
	ClientsLimit int `env:"CLIENTS_PAGE_LIMIT, default=15"`
	MobilesLimit int `env:"MOBILES_PAGE_LIMIT, default=5"`
	UsersLimit   int `env:"USERS_PAGE_LIMIT,   default=5"`
	MaxLimit     int `env:"PAGE_MAX_LIMIT,     default=100"`
}

// IsDevelopment reports whether the service runs with ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file when present, then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	switch cfg.Store.Driver {
	case "mongo", "mysql", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	p := cfg.Pagination
	for name, v := range map[string]int{
		"CLIENTS_PAGE_LIMIT": p.ClientsLimit,
		"MOBILES_PAGE_LIMIT": p.MobilesLimit,
		"USERS_PAGE_LIMIT":   p.UsersLimit,
		"PAGE_MAX_LIMIT":     p.MaxLimit,
	} {
		if v <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	return &cfg, nil
}
