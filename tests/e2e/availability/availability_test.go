//go:build e2e

package availability_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"shutterbook/internal/domain/availability"
	"shutterbook/internal/domain/user"
	"shutterbook/internal/handler/dto/request"
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
	availabilityFmt = "/api/photographers/%s/availability"
	jobsURL         = "/api/jobs"
)

// nextSaturday keeps seeded reservations in the bookable future regardless
// of when the suite runs.
func nextSaturday() time.Time {
	d := time.Now().AddDate(0, 0, 7)
	for availability.WeekdayOf(d) != availability.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

type AvailabilitySuite struct {
	e2e.SharedSuite
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AvailabilitySuite))
}

func (s *AvailabilitySuite) seedPhotographer(email string) (uuid.UUID, string) {
	t := s.T()
	photographerID := dbtest.CreateTestUser(t, s.DB, email, string(user.RolePhotographer))
	token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, photographerID, user.RolePhotographer)
	return photographerID, token
}

// =============================================================================
// TestReplaceSlots - Weekly catalog replacement API tests
// =============================================================================

func (s *AvailabilitySuite) TestReplaceSlots() {
	s.Run("Normal case: Photographer replaces their whole catalog", func() {
		t := s.T()

		photographerID, token := s.seedPhotographer("replace@example.com")
		// A stale slot that the replacement must wipe.
		dbtest.CreateTestSlot(t, s.DB, photographerID, availability.Monday.String(), availability.Night.String(), 99999)

		url := fmt.Sprintf(availabilityFmt, photographerID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 150000},
			{Weekday: availability.Sunday.String(), TimeBucket: availability.HalfDayMorning.String(), PriceSatang: 60000},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, "Should replace slots successfully")

		var catalog response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Len(t, catalog.Slots, 2, "The stale slot should be gone")

		buckets := map[string]int64{}
		for _, slot := range catalog.Slots {
			buckets[slot.TimeBucket] = slot.PriceSatang
		}
		require.EqualValues(t, 150000, buckets[availability.FullDay.String()])
		require.EqualValues(t, 60000, buckets[availability.HalfDayMorning.String()])
	})

	s.Run("Normal case: Duplicate weekday and bucket pairs are kept", func() {
		t := s.T()

		photographerID, token := s.seedPhotographer("duplicate@example.com")
		url := fmt.Sprintf(availabilityFmt, photographerID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 200000},
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 120000},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, "Duplicate pairs with different prices are legal")

		var catalog response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Len(t, catalog.Slots, 2)
	})

	s.Run("Normal case: Replacement succeeds after a slot was booked", func() {
		t := s.T()

		photographerID, token := s.seedPhotographer("rebook@example.com")
		customerID := dbtest.CreateTestUser(t, s.DB, "rebook-customer@example.com", string(user.RoleCustomer))
		customerToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, customerID, user.RoleCustomer)

		shootDate := nextSaturday()
		dbtest.CreateTestSlot(t, s.DB, photographerID, availability.Saturday.String(), availability.FullDay.String(), 150000)

		jobReq := builder.NewJobBuilder().With(func(b *builder.JobBuilder) {
			b.PhotographerID = photographerID
			b.ShootDate = shootDate
			b.ExpectedCompletion = shootDate.AddDate(0, 1, 0)
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, jobsURL, jobReq, customerToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var job response.JobResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &job))
		require.Len(t, job.Reservations, 1)
		bookedSlotID := job.Reservations[0].SlotID

		// The booked Saturday slot drops out of the new catalog entirely.
		url := fmt.Sprintf(availabilityFmt, photographerID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Sunday.String(), TimeBucket: availability.HalfDayMorning.String(), PriceSatang: 60000},
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, "Replacing a booked catalog should not trip the reservation FK")

		var catalog response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Len(t, catalog.Slots, 1, "The booked slot should leave the catalog")
		require.Equal(t, availability.Sunday.String(), catalog.Slots[0].Weekday)

		// The reservation keeps pointing at the detached slot row.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, jobsURL+"/"+job.ID.String(), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var after response.JobResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &after))
		require.Len(t, after.Reservations, 1)
		require.Equal(t, bookedSlotID, after.Reservations[0].SlotID)

		// Publishing the identical tuple again reattaches the detached row.
		reqBody = request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 150000},
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Len(t, catalog.Slots, 1)
		require.Equal(t, bookedSlotID, catalog.Slots[0].ID)
	})

	s.Run("Normal case: Identical duplicate tuples collapse to one row", func() {
		t := s.T()

		photographerID, token := s.seedPhotographer("dedupe@example.com")
		url := fmt.Sprintf(availabilityFmt, photographerID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 150000},
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 150000},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code)

		var catalog response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Len(t, catalog.Slots, 1, "Exact duplicates should dedupe under the tuple constraint")
	})

	s.Run("Error case: Editing another photographer's catalog is forbidden", func() {
		t := s.T()

		victimID, _ := s.seedPhotographer("victim@example.com")
		_, intruderToken := s.seedPhotographer("intruder@example.com")

		url := fmt.Sprintf(availabilityFmt, victimID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 1},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: Unknown weekday is rejected", func() {
		t := s.T()

		photographerID, token := s.seedPhotographer("badday@example.com")
		url := fmt.Sprintf(availabilityFmt, photographerID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: "FUNDAY", TimeBucket: availability.FullDay.String(), PriceSatang: 150000},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Error case: Customers cannot publish availability", func() {
		t := s.T()

		customerID := dbtest.CreateTestUser(t, s.DB, "customer@example.com", string(user.RoleCustomer))
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, customerID, user.RoleCustomer)

		url := fmt.Sprintf(availabilityFmt, customerID)
		reqBody := request.ReplaceSlotsRequest{Slots: []request.SlotItem{
			{Weekday: availability.Saturday.String(), TimeBucket: availability.FullDay.String(), PriceSatang: 150000},
		}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestListSlots - Public catalog retrieval tests
// =============================================================================

func (s *AvailabilitySuite) TestListSlots() {
	s.Run("Normal case: Anyone can read a catalog without logging in", func() {
		t := s.T()

		photographerID, _ := s.seedPhotographer("public@example.com")
		dbtest.CreateTestSlot(t, s.DB, photographerID, availability.Friday.String(), availability.Night.String(), 80000)

		url := fmt.Sprintf(availabilityFmt, photographerID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var catalog response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Len(t, catalog.Slots, 1)
		require.Equal(t, availability.Friday.String(), catalog.Slots[0].Weekday)
	})

	s.Run("Normal case: Unknown photographer yields an empty catalog", func() {
		t := s.T()

		url := fmt.Sprintf(availabilityFmt, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var catalog response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &catalog))
		require.Empty(t, catalog.Slots)
	})

	s.Run("Error case: Malformed photographer id", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/photographers/not-a-uuid/availability", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
