package http

import (
	"github.com/gin-gonic/gin"

	"chat-srv/internal/middleware"
)

// MapRoutes registers the message routes on r.
func (h *handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	msgs := r.Group("/messages", mw.Auth())
	{
		msgs.POST("", h.Send)
		msgs.GET("", h.List)
		msgs.GET("/conversation/:user_id", h.Conversation)
		msgs.PUT("/:id", h.Update)
		msgs.DELETE("/:id", h.Delete)
	}
}
