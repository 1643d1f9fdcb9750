package main

import (
	"context"
	"fmt"

	"chat-srv/config"
	"chat-srv/config/postgre"
	redisConn "chat-srv/config/redis"
	authRedis "chat-srv/internal/auth/repository/redis"
	authUsecase "chat-srv/internal/auth/usecase"
	"chat-srv/internal/httpserver"
	messagePostgres "chat-srv/internal/message/repository/postgre"
	messageUsecase "chat-srv/internal/message/usecase"
	userPostgres "chat-srv/internal/user/repository/postgre"
	userUsecase "chat-srv/internal/user/usecase"
	"chat-srv/internal/websocket"
	"chat-srv/migrations"
	"chat-srv/pkg/jwt"
	"chat-srv/pkg/log"
)

// @Name Chat Service
// @description Real-time chat backend: REST API plus WebSocket presence and delivery.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if err := migrations.Up(ctx, db); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}

	redisClient, err := redisConn.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis connected to %s", cfg.Redis.Host)

	blacklist := authRedis.New(logger, redisClient)
	jwtMgr, err := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	}, blacklist)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Realtime core
	registry := websocket.NewRegistry()
	delivery := websocket.NewDelivery(registry, logger)
	sweeper := websocket.NewSweeper(registry, delivery,
		cfg.Presence.InactivityThreshold, cfg.Presence.SweepInterval, logger)

	// Domains
	userRepo := userPostgres.New(logger, db)
	userUC := userUsecase.New(logger, userRepo)

	messageRepo := messagePostgres.New(logger, db)
	messageUC := messageUsecase.New(logger, messageRepo, userUC, delivery)

	authUC := authUsecase.New(logger, userUC, jwtMgr)

	wsHandler := websocket.NewHandler(registry, delivery, jwtMgr, messageUC, logger, websocket.Config{
		PongWait:        cfg.WebSocket.PongWait,
		PingInterval:    cfg.WebSocket.PingInterval,
		WriteWait:       cfg.WebSocket.WriteWait,
		MaxMessageSize:  cfg.WebSocket.MaxMessageSize,
		ReadBufferSize:  cfg.WebSocket.ReadBufferSize,
		WriteBufferSize: cfg.WebSocket.WriteBufferSize,
		SendBufferSize:  cfg.WebSocket.SendBufferSize,
		ActiveThreshold: cfg.Presence.InactivityThreshold,
	})

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:       cfg.Server.Port,
		Mode:       cfg.Server.Mode,
		DB:         db,
		Redis:      redisClient,
		JWTManager: jwtMgr,
		WSHandler:  wsHandler,
		Sweeper:    sweeper,
		AuthUC:     authUC,
		UserUC:     userUC,
		MessageUC:  messageUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
	}
}
