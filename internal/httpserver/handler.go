package httpserver

import (
	authHTTP "chat-srv/internal/auth/delivery/http"
	messageHTTP "chat-srv/internal/message/delivery/http"
	"chat-srv/internal/middleware"
	userHTTP "chat-srv/internal/user/delivery/http"
)

const api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health endpoints (no auth)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// WebSocket endpoint authenticates inside the handler: the browser
	// WebSocket API cannot set an Authorization header.
	srv.gin.GET("/ws", srv.wsHandler.HandleWebSocket)

	mw := middleware.New(srv.logger, srv.jwtMgr)

	group := srv.gin.Group(api)

	authHTTP.New(srv.logger, srv.authUC).MapRoutes(group, mw)
	userHTTP.New(srv.logger, srv.userUC).MapRoutes(group, mw)
	messageHTTP.New(srv.logger, srv.messageUC).MapRoutes(group, mw)

	// Presence snapshot, REST flavor of the get_active_users frame.
	group.GET("/users/active", mw.Auth(), srv.wsHandler.ActiveUsers)

	return nil
}
