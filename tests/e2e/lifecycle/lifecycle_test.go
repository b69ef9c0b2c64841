//go:build e2e

package lifecycle_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/domain/user"
	"shutterbook/internal/handler/dto/response"
	"shutterbook/tests/common/authtest"
	"shutterbook/tests/common/builder"
	"shutterbook/tests/common/dbtest"
	"shutterbook/tests/common/httptest"
	"shutterbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	jobsURL          = "/api/jobs"
	jobStatusFmt     = "/api/jobs/%s/status"
	paymentsURL      = "/api/payments"
	notificationsURL = "/api/notifications"
	markReadURL      = "/api/notifications/read"
)

type LifecycleSuite struct {
	e2e.SharedSuite
}

func TestLifecycleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LifecycleSuite))
}

type jobFixture struct {
	JobID             uuid.UUID
	CustomerID        uuid.UUID
	PhotographerID    uuid.UUID
	CustomerToken     string
	PhotographerToken string
}

func nextSaturday() time.Time {
	d := time.Now().AddDate(0, 0, 7)
	for availability.WeekdayOf(d) != availability.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// bookJob seeds both participants plus a covering slot and books a job, so
// each subtest starts from a fresh PENDING job worth 150000 satang.
func (s *LifecycleSuite) bookJob(emailPrefix string) jobFixture {
	t := s.T()

	customerID := dbtest.CreateTestUser(t, s.DB, emailPrefix+"-customer@example.com", string(user.RoleCustomer))
	photographerID := dbtest.CreateTestUser(t, s.DB, emailPrefix+"-photographer@example.com", string(user.RolePhotographer))

	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
	customerToken := jwtHelper.GenerateToken(t, customerID, user.RoleCustomer)
	photographerToken := jwtHelper.GenerateToken(t, photographerID, user.RolePhotographer)

	shootDate := nextSaturday()
	dbtest.CreateTestSlot(t, s.DB, photographerID, availability.Saturday.String(), availability.FullDay.String(), 150000)

	reqBody := builder.NewJobBuilder().With(func(b *builder.JobBuilder) {
		b.PhotographerID = photographerID
		b.ShootDate = shootDate
		b.ExpectedCompletion = shootDate.AddDate(0, 1, 0)
	}).BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, reqBody, customerToken)
	require.Equal(t, http.StatusCreated, w.Code, "Fixture job should be created")

	var created response.JobResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

	return jobFixture{
		JobID:             created.ID,
		CustomerID:        customerID,
		PhotographerID:    photographerID,
		CustomerToken:     customerToken,
		PhotographerToken: photographerToken,
	}
}

func (s *LifecycleSuite) patchStatus(fx jobFixture, token, newStatus string, deliveryURL *string) *response.JobResponse {
	t := s.T()

	body := map[string]any{"new_status": newStatus}
	if deliveryURL != nil {
		body["delivery_url"] = *deliveryURL
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(jobStatusFmt, fx.JobID), body, token)
	require.Equal(t, http.StatusOK, w.Code, "Transition to %s should succeed", newStatus)

	var resp response.JobResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	require.Equal(t, newStatus, resp.Status)
	return &resp
}

func (s *LifecycleSuite) charge(fx jobFixture) *response.ChargeResultResponse {
	t := s.T()

	body := map[string]any{"job_id": fx.JobID, "card_token": "tokn_test_visa"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, body, fx.CustomerToken)
	require.Equal(t, http.StatusCreated, w.Code, "Charge should settle")

	var resp response.ChargeResultResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	require.Equal(t, "success", resp.Status)
	return &resp
}

// =============================================================================
// TestJobLifecycle - Full status workflow through both payment stages
// =============================================================================

func (s *LifecycleSuite) TestJobLifecycle() {
	s.Run("Normal case: Job travels PENDING to REVIEWED with split payments", func() {
		t := s.T()
		fx := s.bookJob("happy")

		s.patchStatus(fx, fx.PhotographerToken, "MATCHED", nil)

		deposit := s.charge(fx)
		require.Equal(t, "DEPOSIT", deposit.Stage)
		require.EqualValues(t, 45000, deposit.AmountSatang, "Deposit should be 30 percent, rounded half up")

		s.patchStatus(fx, fx.PhotographerToken, "PROCESSING", nil)

		deliveryURL := "https://gallery.example.com/happy-album"
		completed := s.patchStatus(fx, fx.PhotographerToken, "COMPLETED", &deliveryURL)
		require.NotNil(t, completed.DeliveryURL)
		require.Equal(t, deliveryURL, *completed.DeliveryURL)

		remaining := s.charge(fx)
		require.Equal(t, "REMAINING", remaining.Stage)
		require.EqualValues(t, 105000, remaining.AmountSatang, "Remaining should be 70 percent, rounded half up")

		reviewed := s.patchStatus(fx, fx.CustomerToken, "REVIEWED", nil)
		require.Equal(t, "REVIEWED", reviewed.Status)

		// Both settled stages are visible to the customer.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, paymentsURL, nil, fx.CustomerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var payments response.PaymentListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &payments))
		require.Len(t, payments.Payments, 2)
		total := payments.Payments[0].AmountSatang + payments.Payments[1].AmountSatang
		require.EqualValues(t, 150000, total)
	})

	s.Run("Error case: PAID and CLOSED are unreachable by direct update", func() {
		t := s.T()
		fx := s.bookJob("reserved")

		s.patchStatus(fx, fx.PhotographerToken, "MATCHED", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(jobStatusFmt, fx.JobID),
			map[string]string{"new_status": "PAID"}, fx.PhotographerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "PAID should only happen through a charge")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(jobStatusFmt, fx.JobID),
			map[string]string{"new_status": "CLOSED"}, fx.PhotographerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "CLOSED should only happen through a charge")
	})

	s.Run("Error case: Illegal transitions and terminal states are rejected", func() {
		t := s.T()
		fx := s.bookJob("guards")

		// PENDING cannot jump straight to PROCESSING.
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(jobStatusFmt, fx.JobID),
			map[string]string{"new_status": "PROCESSING"}, fx.PhotographerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		// Decline the job, then nothing further is allowed.
		s.patchStatus(fx, fx.PhotographerToken, "DECLINED", nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(jobStatusFmt, fx.JobID),
			map[string]string{"new_status": "MATCHED"}, fx.PhotographerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "Terminal jobs should stay terminal")
	})

	s.Run("Error case: Outsiders cannot drive the workflow", func() {
		t := s.T()
		fx := s.bookJob("outsider")

		strangerID := dbtest.CreateTestUser(t, s.DB, "outsider-stranger@example.com", string(user.RolePhotographer))
		strangerToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, strangerID, user.RolePhotographer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(jobStatusFmt, fx.JobID),
			map[string]string{"new_status": "MATCHED"}, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestPayments - Charge orchestration edge cases
// =============================================================================

func (s *LifecycleSuite) TestPayments() {
	s.Run("Error case: Charging a PENDING job is rejected", func() {
		t := s.T()
		fx := s.bookJob("early")

		body := map[string]any{"job_id": fx.JobID, "card_token": "tokn_test_visa"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, body, fx.CustomerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, "PENDING jobs have no payable stage")
	})

	s.Run("Error case: Paying the deposit twice conflicts", func() {
		t := s.T()
		fx := s.bookJob("twice")

		s.patchStatus(fx, fx.PhotographerToken, "MATCHED", nil)
		s.charge(fx)

		// The job is now PAID, whose stage mapping rejects another charge.
		body := map[string]any{"job_id": fx.JobID, "card_token": "tokn_test_visa"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, body, fx.CustomerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Strangers cannot charge a job", func() {
		t := s.T()
		fx := s.bookJob("strangerpay")

		s.patchStatus(fx, fx.PhotographerToken, "MATCHED", nil)

		strangerID := dbtest.CreateTestUser(t, s.DB, "strangerpay-other@example.com", string(user.RoleCustomer))
		strangerToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, strangerID, user.RoleCustomer)

		body := map[string]any{"job_id": fx.JobID, "card_token": "tokn_test_visa"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, paymentsURL, body, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestNotifications - Routing and read-state over the workflow
// =============================================================================

func (s *LifecycleSuite) TestNotifications() {
	s.Run("Normal case: Each transition notifies the opposite party", func() {
		t := s.T()
		fx := s.bookJob("notify")

		s.patchStatus(fx, fx.PhotographerToken, "MATCHED", nil)
		s.charge(fx) // PAID notifies the customer

		// Photographer holds the creation and MATCHED notifications.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, fx.PhotographerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var photographerList response.NotificationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &photographerList))
		require.EqualValues(t, 2, photographerList.UnreadCount)
		require.Len(t, photographerList.Notifications, 2)

		// Newest first: MATCHED update on top of the CREATE.
		require.Equal(t, "UPDATE", photographerList.Notifications[0].Action)
		require.Equal(t, "MATCHED", photographerList.Notifications[0].JobStatus)
		require.Equal(t, "CREATE", photographerList.Notifications[1].Action)
		require.Equal(t, "PENDING", photographerList.Notifications[1].JobStatus)

		// Customer only hears about the settled deposit.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, fx.CustomerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var customerList response.NotificationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &customerList))
		require.EqualValues(t, 1, customerList.UnreadCount)
		require.Len(t, customerList.Notifications, 1)
		require.Equal(t, "PAID", customerList.Notifications[0].JobStatus)
		require.Equal(t, fx.CustomerID, customerList.Notifications[0].ReceiverID)
		require.Equal(t, fx.PhotographerID, customerList.Notifications[0].ActorID)
	})

	s.Run("Normal case: Mark-all-read drains the unread counter once", func() {
		t := s.T()
		fx := s.bookJob("markread")

		s.patchStatus(fx, fx.PhotographerToken, "MATCHED", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, markReadURL, nil, fx.PhotographerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var first response.MarkReadResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))
		require.EqualValues(t, 2, first.Updated)

		// Second sweep finds nothing left.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, markReadURL, nil, fx.PhotographerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var second response.MarkReadResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))
		require.EqualValues(t, 0, second.Updated)

		// The unread filter now returns an empty page.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+"?unread=true", nil, fx.PhotographerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var unreadList response.NotificationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &unreadList))
		require.EqualValues(t, 0, unreadList.UnreadCount)
		require.Empty(t, unreadList.Notifications)
	})
}
