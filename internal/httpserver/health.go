package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-srv/pkg/errors"
	"chat-srv/pkg/response"
)

// healthCheck reports overall health, including registry occupancy.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection failed", http.StatusServiceUnavailable))
		return
	}
	if err := srv.redis.Ping(ctx).Err(); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed", http.StatusServiceUnavailable))
		return
	}

	stats := srv.wsHandler.Stats()
	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            "chat-srv",
		"active_connections": stats.ActiveConnections,
		"unique_users":       stats.UniqueUsers,
	})
}

// readyCheck reports whether the service can take traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Database connection not available", http.StatusServiceUnavailable))
		return
	}
	if err := srv.redis.Ping(ctx).Err(); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{"status": "ready", "service": "chat-srv"})
}

// liveCheck reports process liveness only.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": "chat-srv"})
}
