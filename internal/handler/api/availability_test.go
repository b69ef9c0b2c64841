//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shutterbook/internal/domain/user"
	"shutterbook/internal/handler/api"
	resdto "shutterbook/internal/handler/dto/response"
	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
	"shutterbook/tests/common/builder"
	"shutterbook/tests/common/httptest"
	"shutterbook/tests/common/testutil"
	commandsmock "shutterbook/tests/mock/commands"
	queriesmock "shutterbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	handler      *api.AvailabilityHandler
	actorID      uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RolePhotographer)
		c.Next()
	}

	s.router.PUT("/photographers/:id/availability", authMiddleware, s.handler.ReplaceSlots)
	s.router.GET("/photographers/:id/availability", s.handler.ListSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestReplaceSlots() {
	url := "/photographers/" + s.actorID.String() + "/availability"
	reqBody := builder.NewSlotBuilder().BuildReplaceRequestDTO()

	s.Run("success returns the fresh catalog", func() {
		s.mockCommands.EXPECT().ReplaceSlots(gomock.Any(), s.actorID, gomock.Any(), s.actorID).
			Return(&commands.ReplaceSlotsResult{SlotIDs: []uuid.UUID{uuid.New()}}, nil).Times(1)
		s.mockQueries.EXPECT().ListByPhotographer(gomock.Any(), s.actorID).
			Return([]*queries.SlotView{builder.NewSlotBuilder().BuildView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)

		var got resdto.SlotListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Len(got.Slots, 1)
	})

	s.Run("missing slots field is rejected", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("slots", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("editing another photographer is forbidden", func() {
		other := "/photographers/" + uuid.NewString() + "/availability"
		s.mockCommands.EXPECT().ReplaceSlots(gomock.Any(), gomock.Any(), gomock.Any(), s.actorID).
			Return(nil, commands.ErrNotSlotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, other, reqBody, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("invalid slot data", func() {
		s.mockCommands.EXPECT().ReplaceSlots(gomock.Any(), s.actorID, gomock.Any(), s.actorID).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *AvailabilityHandlerTestSuite) TestListSlots() {
	photographerID := uuid.New()
	url := "/photographers/" + photographerID.String() + "/availability"

	s.Run("public listing needs no token", func() {
		views := []*queries.SlotView{builder.NewSlotBuilder().BuildView()}
		s.mockQueries.EXPECT().ListByPhotographer(gomock.Any(), photographerID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var got resdto.SlotListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &got)
		s.Len(got.Slots, 1)
	})

	s.Run("malformed photographer id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/photographers/nope/availability", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
