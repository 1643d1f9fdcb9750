package http

import (
	"github.com/gin-gonic/gin"

	"chat-srv/internal/middleware"
)

// MapRoutes registers the auth routes on r. Register and login are public;
// logout needs a valid token to revoke.
func (h *handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", mw.Auth(), h.Logout)
	}
}
