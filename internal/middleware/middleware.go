package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chat-srv/pkg/response"
	"chat-srv/pkg/scope"
)

// Auth returns a middleware that validates bearer tokens and sets the payload
// in the request context. Revoked tokens fail like invalid ones.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Warnf(c.Request.Context(), "Missing Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(c.Request.Context(), "Invalid Authorization header format | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtMgr.Verify(c.Request.Context(), tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := scope.SetPayloadToContext(c.Request.Context(), payload)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
