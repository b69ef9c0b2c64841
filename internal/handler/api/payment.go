package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shutterbook/internal/domain/payment"
	reqdto "shutterbook/internal/handler/dto/request"
	resdto "shutterbook/internal/handler/dto/response"
	"shutterbook/internal/handler/httperr"
	"shutterbook/internal/handler/middleware"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Initiate charge
// @Description Charge the deposit (MATCHED) or remaining amount (COMPLETED) for a job
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiateChargeRequest true "Charge request"
// @Success 201 {object} resdto.ChargeResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) InitiateCharge(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.InitiateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.InitiateCharge(c.Request.Context(), req.JobID, req.CardToken, userID)
	if err != nil {
		h.abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromChargeResult(result))
}

// @Summary List payments
// @Description List payments for jobs the caller participates in
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentListResponse
// @Failure 401 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list payments", nil)
		return
	}
	resp, err := resdto.FromPaymentViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaymentHandler) abortPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Job not found", nil)
	case errors.Is(err, commands.ErrJobNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Job does not involve this user", nil)
	case errors.Is(err, commands.ErrEmptyCardToken):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Card token is required", nil)
	case errors.Is(err, payment.ErrInvalidStageForState):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Job status does not accept a payment", nil)
	case errors.Is(err, commands.ErrStalePaymentState):
		httperr.AbortWithError(c, http.StatusConflict, err, "Job status changed while charging", nil)
	case errors.Is(err, commands.ErrDuplicatePayment):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment already recorded for this stage", nil)
	case errors.Is(err, commands.ErrGatewayRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Charge gateway rejected or failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment failed", nil)
	}
}
