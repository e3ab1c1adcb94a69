package request

import (
	"time"

	"salon-booking/internal/domain/schedule"
)

type CreateSlotRequest struct {
	Time         string `json:"time" binding:"required"`
	Label        string `json:"label"`
	DisplayOrder int    `json:"display_order"`
}

func (r CreateSlotRequest) SlotTime() (schedule.SlotTime, error) {
	return schedule.NewSlotTime(r.Time)
}

type SetDateOpenRequest struct {
	Date   string `json:"date" binding:"required"`
	IsOpen *bool  `json:"is_open" binding:"required"`
}

func (r SetDateOpenRequest) ParsedDate(loc *time.Location) (schedule.Date, error) {
	return schedule.ParseDate(r.Date, loc)
}

type SetSlotOverrideRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	IsAvailable *bool  `json:"is_available" binding:"required"`
}

func (r SetSlotOverrideRequest) Parse(loc *time.Location) (schedule.Date, schedule.SlotTime, error) {
	date, err := schedule.ParseDate(r.Date, loc)
	if err != nil {
		return schedule.Date{}, schedule.SlotTime{}, err
	}
	slotTime, err := schedule.NewSlotTime(r.Time)
	if err != nil {
		return schedule.Date{}, schedule.SlotTime{}, err
	}
	return date, slotTime, nil
}
