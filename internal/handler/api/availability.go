package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shutterbook/internal/domain/availability"
	reqdto "shutterbook/internal/handler/dto/request"
	resdto "shutterbook/internal/handler/dto/response"
	"shutterbook/internal/handler/httperr"
	"shutterbook/internal/handler/middleware"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary Replace availability slots
// @Description Replace the photographer's whole weekly availability catalog
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Photographer ID"
// @Param request body reqdto.ReplaceSlotsRequest true "Slots to install"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /photographers/{id}/availability [put]
func (h *AvailabilityHandler) ReplaceSlots(c *gin.Context) {
	photographerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ReplaceSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	_, err = h.cmds.ReplaceSlots(c.Request.Context(), photographerID, req.ToCommand(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotSlotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the photographer may edit their slots", nil)
		case errors.Is(err, availability.ErrInvalidWeekday),
			errors.Is(err, availability.ErrInvalidBucket),
			errors.Is(err, availability.ErrNegativePrice),
			errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid slot data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to replace slots", nil)
		}
		return
	}

	views, err := h.q.ListByPhotographer(c.Request.Context(), photographerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slots", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary List availability slots
// @Description List a photographer's weekly availability catalog
// @Tags availability
// @Produce json
// @Param id path string true "Photographer ID"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Router /photographers/{id}/availability [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	photographerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	views, err := h.q.ListByPhotographer(c.Request.Context(), photographerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list slots", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
