package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-srv/internal/model"
	"chat-srv/pkg/response"
	"chat-srv/pkg/scope"
)

// List returns every registered user.
// @Summary List users
// @Tags User
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	usrs, err := h.uc.List(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListUserResp(usrs))
}

// DetailMe returns the authenticated user's own profile.
// @Summary Current user profile
// @Tags User
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/users/me [GET]
func (h *handler) DetailMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Detail returns one user by id.
// @Summary User detail
// @Tags User
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, errUserNotFound)
		return
	}

	out, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newUserResp(out.User))
}

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		h.l.Warnf(c.Request.Context(), "internal.user.delivery.http.scope: missing payload")
		return model.Scope{}, false
	}
	return model.Scope{UserID: payload.UserID, Email: payload.Email}, true
}
