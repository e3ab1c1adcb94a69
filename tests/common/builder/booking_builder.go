//go:build unit || e2e

package builder

import (
	"time"

	dombooking "salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase"
)

type BookingBuilder struct {
	CustomerName string
	PhoneNumber  string
	ServiceName  string
	Date         schedule.Date
	SlotTime     string
	Notes        string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		CustomerName: "山田 花子",
		PhoneNumber:  "090-1234-5678",
		ServiceName:  "カット",
		Date:         schedule.DateOf(time.Now().AddDate(0, 0, 7)),
		SlotTime:     "10:00",
		Notes:        "初めての来店です",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slotTime, err := schedule.NewSlotTime(b.SlotTime)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.CustomerName, b.PhoneNumber, b.ServiceName, b.Date, slotTime, b.Notes)
}

func (b *BookingBuilder) BuildInput() usecase.NewBookingInput {
	slotTime, _ := schedule.NewSlotTime(b.SlotTime)
	return usecase.NewBookingInput{
		CustomerName: b.CustomerName,
		PhoneNumber:  b.PhoneNumber,
		ServiceName:  b.ServiceName,
		Date:         b.Date,
		SlotTime:     slotTime,
		Notes:        b.Notes,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	notes := b.Notes
	return reqdto.CreateBookingRequest{
		CustomerName: b.CustomerName,
		PhoneNumber:  b.PhoneNumber,
		ServiceName:  b.ServiceName,
		Date:         b.Date.String(),
		Time:         b.SlotTime,
		Notes:        &notes,
	}
}
