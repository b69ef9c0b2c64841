package response

import (
	"github.com/google/uuid"

	"shutterbook/internal/usecase/queries"
)

type SlotResponse struct {
	ID          uuid.UUID `json:"id"`
	Weekday     string    `json:"weekday"`
	TimeBucket  string    `json:"timeBucket"`
	PriceSatang int64     `json:"priceSatang"`
}

type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
}

func FromSlotViews(views []*queries.SlotView) *SlotListResponse {
	slots := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		slots = append(slots, &SlotResponse{
			ID:          v.ID,
			Weekday:     v.Weekday,
			TimeBucket:  v.TimeBucket,
			PriceSatang: v.PriceSatang,
		})
	}
	return &SlotListResponse{Slots: slots}
}
