package schedule

import (
	"errors"
	"time"
)

var (
	ErrInvalidSlotTime   = errors.New("slot time must be HH:MM")
	ErrInvalidDateFormat = errors.New("date must be YYYY-MM-DD")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// SlotTime is a labeled time-of-day ("10:00"). The value itself is the slot
// identity across the schedule tables.
type SlotTime struct {
	value string
}

func NewSlotTime(value string) (SlotTime, error) {
	parsed, err := time.Parse(timeLayout, value)
	if err != nil {
		return SlotTime{}, ErrInvalidSlotTime
	}
	// Normalize "9:30" to "09:30" so the DB key is canonical.
	return SlotTime{value: parsed.Format(timeLayout)}, nil
}

func (t SlotTime) String() string {
	return t.value
}

// Date is a calendar day in the operating time zone, with no time-of-day
// component.
type Date struct {
	t time.Time
}

func ParseDate(value string, loc *time.Location) (Date, error) {
	parsed, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return Date{}, ErrInvalidDateFormat
	}
	return Date{t: parsed}, nil
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}
