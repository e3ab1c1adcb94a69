package response

import (
	"time"

	"salon-booking/internal/usecase"
)

type BookingResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	ServiceName  string    `json:"serviceName"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookedSlotResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func FromBookingView(v *usecase.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		CustomerName: v.CustomerName,
		PhoneNumber:  v.PhoneNumber,
		ServiceName:  v.ServiceName,
		Date:         v.Date.String(),
		Time:         v.SlotTime.String(),
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
	}
}

func FromBookedSlot(s usecase.BookedSlot) BookedSlotResponse {
	return BookedSlotResponse{
		Date: s.Date.String(),
		Time: s.SlotTime.String(),
	}
}
