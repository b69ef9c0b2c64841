package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resdto "shutterbook/internal/handler/dto/response"
	"shutterbook/internal/handler/httperr"
	"shutterbook/internal/handler/middleware"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Description List notifications addressed to the caller, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListByReceiver(c.Request.Context(), userID, queries.NotificationFilters{UnreadOnly: unreadOnly}, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}
	unread, err := h.q.CountUnread(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count notifications", nil)
		return
	}
	resp, err := resdto.FromNotificationViews(views, unread, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Mark notifications read
// @Description Mark every notification addressed to the caller as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MarkReadResponse
// @Failure 401 {object} map[string]string
// @Router /notifications/read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	result, err := h.cmds.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to mark notifications read", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MarkReadResponse{Updated: result.Updated})
}
