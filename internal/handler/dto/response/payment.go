package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"shutterbook/internal/usecase/commands"
	"shutterbook/internal/usecase/queries"
)

type PaymentResponse struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"jobId"`
	CustomerID     uuid.UUID `json:"customerId"`
	PhotographerID uuid.UUID `json:"photographerId"`
	Stage          string    `json:"stage"`
	AmountSatang   int64     `json:"amountSatang"`
	ChargeID       string    `json:"chargeId"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PaymentListResponse struct {
	Payments []*PaymentResponse `json:"payments"`
}

type ChargeResultResponse struct {
	Status       string    `json:"status"`
	PaymentID    uuid.UUID `json:"paymentId"`
	JobID        uuid.UUID `json:"jobId"`
	Stage        string    `json:"stage"`
	AmountSatang int64     `json:"amountSatang"`
}

func FromChargeResult(result *commands.InitiateChargeResult) *ChargeResultResponse {
	return &ChargeResultResponse{
		Status:       "success",
		PaymentID:    result.PaymentID,
		JobID:        result.JobID,
		Stage:        result.Stage.String(),
		AmountSatang: result.AmountSatang,
	}
}

func FromPaymentViews(views []*queries.PaymentView) (*PaymentListResponse, error) {
	payments := make([]*PaymentResponse, 0, len(views))
	if err := copier.Copy(&payments, &views); err != nil {
		return nil, err
	}
	return &PaymentListResponse{Payments: payments}, nil
}
