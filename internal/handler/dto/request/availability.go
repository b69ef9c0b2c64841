package request

import "shutterbook/internal/usecase/commands"

type SlotItem struct {
	Weekday     string `json:"weekday" binding:"required"`
	TimeBucket  string `json:"time_bucket" binding:"required"`
	PriceSatang int64  `json:"price_satang" binding:"min=0"`
}

type ReplaceSlotsRequest struct {
	Slots []SlotItem `json:"slots" binding:"required,dive"`
}

func (r ReplaceSlotsRequest) ToCommand() commands.ReplaceSlotsRequest {
	slots := make([]commands.SlotInput, 0, len(r.Slots))
	for _, item := range r.Slots {
		slots = append(slots, commands.SlotInput{
			Weekday:     item.Weekday,
			Bucket:      item.TimeBucket,
			PriceSatang: item.PriceSatang,
		})
	}
	return commands.ReplaceSlotsRequest{Slots: slots}
}
