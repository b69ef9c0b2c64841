package request

import "github.com/google/uuid"

type InitiateChargeRequest struct {
	JobID     uuid.UUID `json:"job_id" binding:"required"`
	CardToken string    `json:"card_token" binding:"required"`
}
