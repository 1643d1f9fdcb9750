package http

import (
	"github.com/gin-gonic/gin"

	"chat-srv/internal/middleware"
)

// MapRoutes registers the user routes on r.
func (h *handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	users := r.Group("/users", mw.Auth())
	{
		users.GET("", h.List)
		users.GET("/me", h.DetailMe)
		users.GET("/:id", h.Detail)
	}
}
