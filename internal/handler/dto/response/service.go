package response

import (
	"time"

	"salon-booking/internal/usecase"
)

type ServiceResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PriceYen      int64     `json:"priceYen"`
	DurationLabel string    `json:"durationLabel,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	Popular       bool      `json:"popular"`
	DisplayOrder  int       `json:"displayOrder"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromServiceView(v *usecase.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		PriceYen:      v.PriceYen,
		DurationLabel: v.DurationLabel,
		Icon:          v.Icon,
		Popular:       v.Popular,
		DisplayOrder:  v.DisplayOrder,
		Active:        v.Active,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromServiceViews(views []*usecase.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, len(views))
	for i, v := range views {
		out[i] = FromServiceView(v)
	}
	return out
}
