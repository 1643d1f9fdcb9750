package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-srv/internal/model"
	"chat-srv/pkg/response"
	"chat-srv/pkg/scope"
)

// Send persists a message and notifies the affected users over WebSocket.
// @Summary Send a message
// @Tags Message
// @Security BearerAuth
// @Param body body sendReq true "Message"
// @Success 201 {object} response.Resp
// @Router /api/v1/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadRequest)
		return
	}

	out, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.Created(c, newMessageResp(out.Message))
}

// List returns every message the caller sent or received, plus the feed.
// @Summary List my messages
// @Tags Message
// @Security BearerAuth
// @Success 200 {object} response.Resp
// @Router /api/v1/messages [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	msgs, err := h.uc.List(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListMessageResp(msgs))
}

// Conversation returns the direct exchange between the caller and another user.
// @Summary Conversation with a user
// @Tags Message
// @Security BearerAuth
// @Param user_id path int true "Other user ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/messages/conversation/{user_id} [GET]
func (h *handler) Conversation(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	otherID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || otherID <= 0 {
		response.Error(c, errReceiverNotFound)
		return
	}

	msgs, err := h.uc.Conversation(ctx, sc, otherID)
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newListMessageResp(msgs))
}

// Update rewrites a message's content. Author only.
// @Summary Update a message
// @Tags Message
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Param body body updateReq true "New content"
// @Success 200 {object} response.Resp
// @Router /api/v1/messages/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, errMessageNotFound)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errBadRequest)
		return
	}

	out, err := h.uc.Update(ctx, sc, updateInput(id, req))
	if err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, newMessageResp(out.Message))
}

// Delete removes a message. Author only.
// @Summary Delete a message
// @Tags Message
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/messages/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, errMessageNotFound)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		response.ErrorWithMap(c, err, h.errorMapping())
		return
	}

	response.OK(c, gin.H{"deleted": id})
}

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		h.l.Warnf(c.Request.Context(), "internal.message.delivery.http.scope: missing payload")
		return model.Scope{}, false
	}
	return model.Scope{UserID: payload.UserID, Email: payload.Email}, true
}
