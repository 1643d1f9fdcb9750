package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	redisClient "github.com/redis/go-redis/v9"

	"chat-srv/internal/auth"
	"chat-srv/internal/message"
	"chat-srv/internal/user"
	"chat-srv/internal/websocket"
	"chat-srv/pkg/jwt"
	"chat-srv/pkg/log"
)

// HTTPServer wires the HTTP surface: REST routes, the WebSocket endpoint and
// the background sweeper. New only wires and validates; Run (httpserver.go)
// starts everything.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	port   int

	db    *sql.DB
	redis *redisClient.Client

	jwtMgr jwt.Manager

	wsHandler *websocket.Handler
	sweeper   *websocket.Sweeper

	authUC    auth.UseCase
	userUC    user.UseCase
	messageUC message.UseCase
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	DB    *sql.DB
	Redis *redisClient.Client

	JWTManager jwt.Manager

	WSHandler *websocket.Handler
	Sweeper   *websocket.Sweeper

	AuthUC    auth.UseCase
	UserUC    user.UseCase
	MessageUC message.UseCase
}

// New creates a new HTTPServer. It does not start any goroutines.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:       gin.New(),
		logger:    logger,
		port:      cfg.Port,
		db:        cfg.DB,
		redis:     cfg.Redis,
		jwtMgr:    cfg.JWTManager,
		wsHandler: cfg.WSHandler,
		sweeper:   cfg.Sweeper,
		authUC:    cfg.AuthUC,
		userUC:    cfg.UserUC,
		messageUC: cfg.MessageUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.db == nil {
		return errors.New("database is required")
	}
	if s.redis == nil {
		return errors.New("redis client is required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if s.wsHandler == nil {
		return errors.New("WebSocket handler is required")
	}
	if s.sweeper == nil {
		return errors.New("sweeper is required")
	}
	if s.authUC == nil || s.userUC == nil || s.messageUC == nil {
		return errors.New("usecases are required")
	}

	return nil
}
