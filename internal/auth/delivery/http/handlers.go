package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"chat-srv/pkg/response"
)

// Register creates a new account.
// @Summary Register
// @Tags Auth
// @Param body body registerReq true "Account"
// @Success 201 {object} response.Resp
// @Router /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadRequest)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.Created(c, newUserResp(out.User))
}

// Login exchanges credentials for an access token.
// @Summary Login
// @Tags Auth
// @Param body body loginReq true "Credentials"
// @Success 200 {object} response.Resp
// @Router /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadRequest)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newLoginResp(out))
}

// Logout revokes the presented token. Live WebSocket connections opened with
// the token stay up; the token just cannot authenticate anything new.
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	token := bearerToken(c)
	if token == "" {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, token); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, gin.H{"revoked": true})
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
