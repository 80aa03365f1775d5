package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BackendBaseURL is the root of the remote admin API every domain client
	// and the gateway proxy talk to.
	BackendBaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:9000/api/admin"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT,     default=30s"`

	Session SessionConfig
	Redis   RedisConfig
}

type SessionConfig struct {
	Cookie string        `env:"SESSION_COOKIE, default=crestfin_admin_session"`
	TTL    time.Duration `env:"SESSION_TTL,    default=24h"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB          int           `env:"REDIS_DB,   default=0"`
	PingTimeout time.Duration `env:"REDIS_PING_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
