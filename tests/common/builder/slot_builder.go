//go:build unit || e2e

package builder

import (
	"shutterbook/internal/domain/availability"
	reqdto "shutterbook/internal/handler/dto/request"
	"shutterbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	PhotographerID uuid.UUID
	Weekday        availability.Weekday
	Bucket         availability.TimeBucket
	PriceSatang    int64
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		PhotographerID: uuid.New(),
		Weekday:        availability.Saturday,
		Bucket:         availability.FullDay,
		PriceSatang:    150000,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*availability.Slot, error) {
	return availability.NewSlot(b.PhotographerID, b.Weekday, b.Bucket, b.PriceSatang)
}

func (b *SlotBuilder) BuildReplaceRequestDTO() reqdto.ReplaceSlotsRequest {
	return reqdto.ReplaceSlotsRequest{
		Slots: []reqdto.SlotItem{
			{Weekday: b.Weekday.String(), TimeBucket: b.Bucket.String(), PriceSatang: b.PriceSatang},
		},
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:          uuid.New(),
		Weekday:     b.Weekday.String(),
		TimeBucket:  b.Bucket.String(),
		PriceSatang: b.PriceSatang,
	}
}
