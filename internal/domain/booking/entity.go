package booking

import (
	"errors"
	"strings"
	"time"

	"salon-booking/internal/domain/schedule"
)

var (
	ErrEmptyCustomerName = errors.New("customer name must not be empty")
	ErrEmptyPhoneNumber  = errors.New("phone number must not be empty")
	ErrEmptyServiceName  = errors.New("service name must not be empty")
	ErrEmptyDate         = errors.New("booking date must not be empty")
)

// Booking is one confirmed reservation of a (date, slot) pair. ServiceName
// is a denormalized copy taken at booking time; later catalog edits never
// rewrite history. Uniqueness on (date, slot) is enforced by the storage
// layer, not here.
type Booking struct {
	id           int64
	customerName string
	phoneNumber  string
	serviceName  string
	date         schedule.Date
	slotTime     schedule.SlotTime
	notes        string
	createdAt    time.Time
}

func NewBooking(
	customerName, phoneNumber, serviceName string,
	date schedule.Date,
	slotTime schedule.SlotTime,
	notes string,
) (*Booking, error) {
	customerName = strings.TrimSpace(customerName)
	phoneNumber = strings.TrimSpace(phoneNumber)
	serviceName = strings.TrimSpace(serviceName)

	if customerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if phoneNumber == "" {
		return nil, ErrEmptyPhoneNumber
	}
	if serviceName == "" {
		return nil, ErrEmptyServiceName
	}
	if date.IsZero() {
		return nil, ErrEmptyDate
	}

	return &Booking{
		customerName: customerName,
		phoneNumber:  phoneNumber,
		serviceName:  serviceName,
		date:         date,
		slotTime:     slotTime,
		notes:        strings.TrimSpace(notes),
	}, nil
}

func Reconstruct(
	id int64,
	customerName, phoneNumber, serviceName string,
	date schedule.Date,
	slotTime schedule.SlotTime,
	notes string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		customerName: customerName,
		phoneNumber:  phoneNumber,
		serviceName:  serviceName,
		date:         date,
		slotTime:     slotTime,
		notes:        notes,
		createdAt:    createdAt,
	}
}

func (b *Booking) ID() int64                   { return b.id }
func (b *Booking) CustomerName() string        { return b.customerName }
func (b *Booking) PhoneNumber() string         { return b.phoneNumber }
func (b *Booking) ServiceName() string         { return b.serviceName }
func (b *Booking) Date() schedule.Date         { return b.date }
func (b *Booking) SlotTime() schedule.SlotTime { return b.slotTime }
func (b *Booking) Notes() string               { return b.notes }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
