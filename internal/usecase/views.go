package usecase

import (
	"time"

	"salon-booking/internal/domain/schedule"
)

// Read models returned across the usecase boundary. Handlers map these to
// response DTOs; repositories build them from rows.

type BookingView struct {
	ID           int64
	CustomerName string
	PhoneNumber  string
	ServiceName  string
	Date         schedule.Date
	SlotTime     schedule.SlotTime
	Notes        string
	CreatedAt    time.Time
}

type BookedSlot struct {
	Date     schedule.Date
	SlotTime schedule.SlotTime
}

type SlotView struct {
	ID           int64
	Time         schedule.SlotTime
	Label        string
	DisplayOrder int
	Enabled      bool
}

type ServiceView struct {
	ID            int64
	Name          string
	Description   string
	PriceYen      int64
	DurationLabel string
	Icon          string
	Popular       bool
	DisplayOrder  int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReminderView struct {
	ID           int64
	Email        string
	CustomerName string
	ServiceName  string
	Date         schedule.Date
	SlotTime     schedule.SlotTime
}
