package request

import (
	"strings"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/usecase"
)

type CreateBookingRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	PhoneNumber  string  `json:"phone_number" binding:"required"`
	ServiceName  string  `json:"service_name" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	Time         string  `json:"time" binding:"required"`
	Notes        *string `json:"notes,omitempty"`
	// ReminderEmail opts the customer into the day-before reminder mail.
	ReminderEmail *string `json:"reminder_email,omitempty"`
}

func (r CreateBookingRequest) ToInput(loc *time.Location) (usecase.NewBookingInput, error) {
	date, err := schedule.ParseDate(r.Date, loc)
	if err != nil {
		return usecase.NewBookingInput{}, err
	}

	slotTime, err := schedule.NewSlotTime(r.Time)
	if err != nil {
		return usecase.NewBookingInput{}, err
	}

	notes := ""
	if r.Notes != nil {
		notes = strings.TrimSpace(*r.Notes)
	}

	return usecase.NewBookingInput{
		CustomerName: strings.TrimSpace(r.CustomerName),
		PhoneNumber:  strings.TrimSpace(r.PhoneNumber),
		ServiceName:  strings.TrimSpace(r.ServiceName),
		Date:         date,
		SlotTime:     slotTime,
		Notes:        notes,
	}, nil
}

func (r CreateBookingRequest) GetReminderEmail() string {
	if r.ReminderEmail == nil {
		return ""
	}
	return strings.TrimSpace(*r.ReminderEmail)
}

type BookedSlotsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q BookedSlotsQuery) ToRange(loc *time.Location) (schedule.Date, schedule.Date, error) {
	from, err := schedule.ParseDate(q.From, loc)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	to, err := schedule.ParseDate(q.To, loc)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	return from, to, nil
}
