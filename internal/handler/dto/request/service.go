package request

import (
	"strings"

	"salon-booking/internal/usecase"
)

type ServiceRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	PriceYen      int64  `json:"price_yen" binding:"min=0"`
	DurationLabel string `json:"duration_label"`
	Icon          string `json:"icon"`
	Popular       bool   `json:"popular"`
	DisplayOrder  int    `json:"display_order"`
	Active        *bool  `json:"active,omitempty"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return usecase.ServiceInput{
		Name:          strings.TrimSpace(r.Name),
		Description:   strings.TrimSpace(r.Description),
		PriceYen:      r.PriceYen,
		DurationLabel: strings.TrimSpace(r.DurationLabel),
		Icon:          strings.TrimSpace(r.Icon),
		Popular:       r.Popular,
		DisplayOrder:  r.DisplayOrder,
		Active:        active,
	}
}
