package request

import (
	"time"

	"github.com/google/uuid"

	"shutterbook/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

type ReservationItem struct {
	Date       string `json:"date" binding:"required"`
	TimeBucket string `json:"time_bucket" binding:"required"`
}

type CreateJobRequest struct {
	PhotographerID     uuid.UUID         `json:"photographer_id" binding:"required"`
	Title              string            `json:"title" binding:"required"`
	Description        string            `json:"description"`
	Style              string            `json:"style" binding:"required"`
	Location           string            `json:"location"`
	SpecialRequirement string            `json:"special_requirement"`
	ExpectedCompletion string            `json:"expected_completion" binding:"required"`
	Reservations       []ReservationItem `json:"reservations" binding:"required,min=1,dive"`
}

func (r CreateJobRequest) ToCommand() (commands.CreateJobRequest, error) {
	expected, err := time.Parse(dateLayout, r.ExpectedCompletion)
	if err != nil {
		return commands.CreateJobRequest{}, err
	}

	reservations := make([]commands.ReservationInput, 0, len(r.Reservations))
	for _, item := range r.Reservations {
		date, err := time.Parse(dateLayout, item.Date)
		if err != nil {
			return commands.CreateJobRequest{}, err
		}
		reservations = append(reservations, commands.ReservationInput{
			Date:   date,
			Bucket: item.TimeBucket,
		})
	}

	return commands.CreateJobRequest{
		PhotographerID:     r.PhotographerID,
		Title:              r.Title,
		Description:        r.Description,
		Style:              r.Style,
		Location:           r.Location,
		SpecialRequirement: r.SpecialRequirement,
		ExpectedCompletion: expected,
		Reservations:       reservations,
	}, nil
}

type UpdateJobStatusRequest struct {
	NewStatus   string  `json:"new_status" binding:"required"`
	DeliveryURL *string `json:"delivery_url,omitempty"`
}
