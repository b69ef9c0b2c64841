//go:build unit || e2e

package builder

import (
	"time"

	"shutterbook/internal/domain/availability"
	domjob "shutterbook/internal/domain/job"
	reqdto "shutterbook/internal/handler/dto/request"
	"shutterbook/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type JobBuilder struct {
	CustomerID         uuid.UUID
	PhotographerID     uuid.UUID
	Title              string
	Description        string
	Style              domjob.Style
	Location           string
	SpecialRequirement string
	ShootDate          time.Time
	Bucket             availability.TimeBucket
	SlotID             uuid.UUID
	PriceSatang        int64
	ExpectedCompletion time.Time
	Status             domjob.Status
}

func NewJobBuilder() *JobBuilder {
	shootDate := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC) // a Saturday
	return &JobBuilder{
		CustomerID:         uuid.New(),
		PhotographerID:     uuid.New(),
		Title:              "Wedding shoot at the riverside",
		Description:        "Full-day ceremony coverage",
		Style:              domjob.StyleWedding,
		Location:           "Bangkok",
		SpecialRequirement: "",
		ShootDate:          shootDate,
		Bucket:             availability.FullDay,
		SlotID:             uuid.New(),
		PriceSatang:        150000,
		ExpectedCompletion: shootDate.AddDate(0, 1, 0),
		Status:             domjob.StatusPending,
	}
}

func (b *JobBuilder) With(mutate func(*JobBuilder)) *JobBuilder {
	mutate(b)
	return b
}

func (b *JobBuilder) buildReservations() []domjob.Reservation {
	return []domjob.Reservation{
		domjob.ReconstructReservation(uuid.New(), b.ShootDate, b.Bucket, b.SlotID, b.PriceSatang),
	}
}

func (b *JobBuilder) BuildDomain() (*domjob.Job, error) {
	return domjob.NewJob(
		b.Title, b.Description,
		b.CustomerID, b.PhotographerID,
		b.Style, b.Location,
		b.ExpectedCompletion, b.SpecialRequirement,
		b.buildReservations(),
	)
}

// BuildDomainAt reconstructs a persisted job in the given status, for
// lifecycle tests that need a non-PENDING starting point.
func (b *JobBuilder) BuildDomainAt(status domjob.Status) *domjob.Job {
	now := time.Now()
	return domjob.ReconstructJob(
		uuid.New(), b.Title, b.Description,
		b.CustomerID, b.PhotographerID,
		status, b.Style, b.Location,
		b.ExpectedCompletion, b.SpecialRequirement,
		nil, b.buildReservations(), now, now,
	)
}

func (b *JobBuilder) BuildCreateRequestDTO() reqdto.CreateJobRequest {
	return reqdto.CreateJobRequest{
		PhotographerID:     b.PhotographerID,
		Title:              b.Title,
		Description:        b.Description,
		Style:              b.Style.String(),
		Location:           b.Location,
		SpecialRequirement: b.SpecialRequirement,
		ExpectedCompletion: b.ExpectedCompletion.Format(dateLayout),
		Reservations: []reqdto.ReservationItem{
			{Date: b.ShootDate.Format(dateLayout), TimeBucket: b.Bucket.String()},
		},
	}
}

func (b *JobBuilder) BuildViewQuery() *queries.JobView {
	now := time.Now()
	return &queries.JobView{
		ID:                 uuid.New(),
		CustomerID:         b.CustomerID,
		PhotographerID:     b.PhotographerID,
		Title:              b.Title,
		Description:        b.Description,
		Style:              b.Style.String(),
		Location:           b.Location,
		SpecialRequirement: b.SpecialRequirement,
		Status:             b.Status.String(),
		ExpectedCompletion: b.ExpectedCompletion,
		TotalPriceSatang:   b.PriceSatang,
		Reservations: []queries.ReservationView{
			{
				ID:          uuid.New(),
				Date:        b.ShootDate,
				TimeBucket:  b.Bucket.String(),
				SlotID:      b.SlotID,
				PriceSatang: b.PriceSatang,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *JobBuilder) BuildListItem() *queries.JobListItem {
	return &queries.JobListItem{
		ID:               uuid.New(),
		CustomerID:       b.CustomerID,
		PhotographerID:   b.PhotographerID,
		Title:            b.Title,
		Style:            b.Style.String(),
		Status:           b.Status.String(),
		TotalPriceSatang: b.PriceSatang,
		CreatedAt:        time.Now(),
	}
}
