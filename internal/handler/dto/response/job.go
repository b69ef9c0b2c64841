package response

import (
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/usecase/queries"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	TimeBucket  string    `json:"timeBucket"`
	SlotID      uuid.UUID `json:"slotId"`
	PriceSatang int64     `json:"priceSatang"`
}

type JobResponse struct {
	ID                 uuid.UUID             `json:"id"`
	CustomerID         uuid.UUID             `json:"customerId"`
	PhotographerID     uuid.UUID             `json:"photographerId"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	Style              string                `json:"style"`
	Location           string                `json:"location"`
	SpecialRequirement string                `json:"specialRequirement"`
	Status             string                `json:"status"`
	DeliveryURL        *string               `json:"deliveryUrl,omitempty"`
	ExpectedCompletion string                `json:"expectedCompletion"`
	TotalPriceSatang   int64                 `json:"totalPriceSatang"`
	Reservations       []ReservationResponse `json:"reservations"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

type JobListItemResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customerId"`
	PhotographerID   uuid.UUID `json:"photographerId"`
	Title            string    `json:"title"`
	Style            string    `json:"style"`
	Status           string    `json:"status"`
	TotalPriceSatang int64     `json:"totalPriceSatang"`
	CreatedAt        time.Time `json:"createdAt"`
}

type JobListResponse struct {
	Jobs       []*JobListItemResponse `json:"jobs"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

const dateLayout = "2006-01-02"

func FromJobView(jv *queries.JobView) *JobResponse {
	reservations := make([]ReservationResponse, 0, len(jv.Reservations))
	for _, rv := range jv.Reservations {
		reservations = append(reservations, ReservationResponse{
			ID:          rv.ID,
			Date:        rv.Date.Format(dateLayout),
			TimeBucket:  rv.TimeBucket,
			SlotID:      rv.SlotID,
			PriceSatang: rv.PriceSatang,
		})
	}
	return &JobResponse{
		ID:                 jv.ID,
		CustomerID:         jv.CustomerID,
		PhotographerID:     jv.PhotographerID,
		Title:              jv.Title,
		Description:        jv.Description,
		Style:              jv.Style,
		Location:           jv.Location,
		SpecialRequirement: jv.SpecialRequirement,
		Status:             jv.Status,
		DeliveryURL:        jv.DeliveryURL,
		ExpectedCompletion: jv.ExpectedCompletion.Format(dateLayout),
		TotalPriceSatang:   jv.TotalPriceSatang,
		Reservations:       reservations,
		CreatedAt:          jv.CreatedAt,
		UpdatedAt:          jv.UpdatedAt,
	}
}

func FromJobListItems(items []*queries.JobListItem, next *queries.Cursor) *JobListResponse {
	jobs := make([]*JobListItemResponse, 0, len(items))
	for _, item := range items {
		jobs = append(jobs, &JobListItemResponse{
			ID:               item.ID,
			CustomerID:       item.CustomerID,
			PhotographerID:   item.PhotographerID,
			Title:            item.Title,
			Style:            item.Style,
			Status:           item.Status,
			TotalPriceSatang: item.TotalPriceSatang,
			CreatedAt:        item.CreatedAt,
		})
	}
	resp := &JobListResponse{Jobs: jobs}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}
