package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig

	// Realtime layer
	WebSocket WebSocketConfig
	Presence  PresenceConfig
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level    string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode     string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding string `env:"LOGGER_ENCODING" envDefault:"json"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"chat"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis.
// Note: Only standalone mode is supported.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// JWTConfig is the configuration for access tokens.
type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY"`
	Issuer    string        `env:"JWT_ISSUER" envDefault:"chat-srv"`
	TTL       time.Duration `env:"JWT_TTL" envDefault:"30m"`
}

// WebSocketConfig is the configuration for WebSocket connections.
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait        time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"4096"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	SendBufferSize  int           `env:"WS_SEND_BUFFER_SIZE" envDefault:"256"`
}

// PresenceConfig is the configuration for the activity sweep.
type PresenceConfig struct {
	InactivityThreshold time.Duration `env:"PRESENCE_INACTIVITY_THRESHOLD" envDefault:"300s"`
	SweepInterval       time.Duration `env:"PRESENCE_SWEEP_INTERVAL" envDefault:"60s"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
