//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shutterbook/internal/domain/payment"
	"shutterbook/internal/domain/user"
	"shutterbook/internal/handler/api"
	resdto "shutterbook/internal/handler/dto/response"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
	"shutterbook/tests/common/httptest"
	"shutterbook/tests/common/testutil"
	commandsmock "shutterbook/tests/mock/commands"
	queriesmock "shutterbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	mockQueries  *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
	actorID      uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/payments", authMiddleware, s.handler.InitiateCharge)
	s.router.GET("/payments", authMiddleware, s.handler.ListPayments)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

// ================================================================================
// TestInitiateCharge
// ================================================================================

func (s *PaymentHandlerTestSuite) TestInitiateCharge() {
	url := "/payments"
	jobID := uuid.New()
	reqBody := map[string]any{"job_id": jobID.String(), "card_token": "tokn_test_visa"}

	s.Run("success: returns 201 with the settled stage", func() {
		s.mockCommands.EXPECT().InitiateCharge(gomock.Any(), jobID, "tokn_test_visa", s.actorID).
			Return(&commands.InitiateChargeResult{
				PaymentID:    uuid.New(),
				JobID:        jobID,
				Stage:        payment.StageDeposit,
				AmountSatang: 45000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusCreated, rec.Code)

		var got resdto.ChargeResultResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Equal("success", got.Status)
		s.Equal("DEPOSIT", got.Stage)
		s.Equal(int64(45000), got.AmountSatang)
	})

	s.Run("validation", func() {
		for _, tc := range []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing job_id", mutate: testutil.Field("job_id", nil)},
			{name: "missing card_token", mutate: testutil.Field("card_token", nil)},
			{name: "malformed job_id", mutate: testutil.Field("job_id", "not-a-uuid")},
		} {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	errCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "job not found", err: commands.ErrJobNotFound, expectCode: http.StatusNotFound},
		{name: "job not owned", err: commands.ErrJobNotOwned, expectCode: http.StatusForbidden},
		{name: "status accepts no payment", err: payment.ErrInvalidStageForState, expectCode: http.StatusUnprocessableEntity},
		{name: "stale state after charge", err: commands.ErrStalePaymentState, expectCode: http.StatusConflict},
		{name: "stage already settled", err: commands.ErrDuplicatePayment, expectCode: http.StatusConflict},
		{name: "gateway rejected", err: commands.ErrGatewayRejected, expectCode: http.StatusBadGateway},
	}
	for _, tc := range errCases {
		s.Run("usecase error: "+tc.name, func() {
			s.mockCommands.EXPECT().InitiateCharge(gomock.Any(), jobID, "tokn_test_visa", s.actorID).
				Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

// ================================================================================
// TestListPayments
// ================================================================================

func (s *PaymentHandlerTestSuite) TestListPayments() {
	url := "/payments"

	s.Run("success", func() {
		views := []*queries.PaymentView{{
			ID:           uuid.New(),
			JobID:        uuid.New(),
			CustomerID:   s.actorID,
			Stage:        "DEPOSIT",
			AmountSatang: 45000,
			ChargeID:     "chrg_test_1",
			CreatedAt:    time.Now(),
		}}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actorID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got resdto.PaymentListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Len(got.Payments, 1)
		s.Equal("DEPOSIT", got.Payments[0].Stage)
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
