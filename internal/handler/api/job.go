package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shutterbook/internal/domain/job"
	reqdto "shutterbook/internal/handler/dto/request"
	resdto "shutterbook/internal/handler/dto/response"
	"shutterbook/internal/handler/httperr"
	"shutterbook/internal/handler/middleware"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
)

type JobHandler struct {
	booking   commands.BookingCommands
	lifecycle commands.LifecycleCommands
	q         queries.JobQueries
}

func NewJobHandler(booking commands.BookingCommands, lifecycle commands.LifecycleCommands, q queries.JobQueries) *JobHandler {
	return &JobHandler{booking: booking, lifecycle: lifecycle, q: q}
}

// @Summary Create job
// @Description Book a photographer for one or more date/time-bucket reservations
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJobRequest true "Create job request"
// @Success 201 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	result, err := h.booking.CreateJob(c.Request.Context(), cmd, userID)
	if err != nil {
		h.abortBookingError(c, err)
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), result.JobID, userID, role.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load job", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromJobView(view))
}

// @Summary Update job status
// @Description Request a lifecycle transition on a job, optionally attaching a delivery URL
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateJobStatusRequest true "Status update request"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateJobStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	_, err = h.lifecycle.UpdateStatus(c.Request.Context(), id, commands.UpdateStatusRequest{
		NewStatus:   req.NewStatus,
		DeliveryURL: req.DeliveryURL,
	}, userID)
	if err != nil {
		h.abortLifecycleError(c, err)
		return
	}

	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), id, userID, role.String())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load job", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary Get job
// @Description Get one job the caller participates in
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetByID(c.Request.Context(), id, userID, role.String())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrJobNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Job not found", nil)
		case errors.Is(err, queries.ErrJobAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load job", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary List jobs
// @Description List jobs the caller participates in, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.JobListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListMine(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list jobs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobListItems(items, next))
}

func (h *JobHandler) abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPhotographerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Photographer not found", nil)
	case errors.Is(err, commands.ErrNotAPhotographer):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Target user is not a photographer", nil)
	case errors.Is(err, job.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date is in the past or after expected completion", nil)
	case errors.Is(err, job.ErrNoAvailability):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Photographer has no availability for a requested slot", nil)
	case errors.Is(err, job.ErrSlotTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "A requested slot is already booked", nil)
	case errors.Is(err, job.ErrNoReservations):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "At least one reservation is required", nil)
	case errors.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking conflict", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid job data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create job failed", nil)
	}
}

func (h *JobHandler) abortLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Job not found", nil)
	case errors.Is(err, commands.ErrJobNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Job does not involve this user", nil)
	case errors.Is(err, commands.ErrInvalidNewStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
	case errors.Is(err, commands.ErrStatusReserved):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Status is only reachable through payment", nil)
	case errors.Is(err, job.ErrAlreadyReviewed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Job already reviewed", nil)
	case errors.Is(err, job.ErrAlreadyTerminated):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Job already cancelled or declined", nil)
	case errors.Is(err, job.ErrSlotTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "A reserved slot was taken meanwhile", nil)
	case errors.Is(err, job.ErrIllegalTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Illegal status transition", nil)
	case errors.Is(err, job.ErrInvalidDelivery):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid delivery URL", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Status update failed", nil)
	}
}
