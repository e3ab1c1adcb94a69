package response

import (
	"salon-booking/internal/usecase"
)

type SlotResponse struct {
	ID           int64  `json:"id"`
	Time         string `json:"time"`
	Label        string `json:"label"`
	DisplayOrder int    `json:"displayOrder"`
	Enabled      bool   `json:"enabled"`
}

func FromSlotView(v *usecase.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:           v.ID,
		Time:         v.Time.String(),
		Label:        v.Label,
		DisplayOrder: v.DisplayOrder,
		Enabled:      v.Enabled,
	}
}

func FromSlotViews(views []*usecase.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = FromSlotView(v)
	}
	return out
}
