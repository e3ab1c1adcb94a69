package usecase

import (
	"context"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
)

type ScheduleRepository interface {
	FindSlotByTime(ctx context.Context, t schedule.SlotTime) (*SlotView, error)
	// GetDateOpen / GetSlotOverride return (nil, nil) when no record exists;
	// absence defaults to open / available.
	GetDateOpen(ctx context.Context, d schedule.Date) (*bool, error)
	GetSlotOverride(ctx context.Context, d schedule.Date, t schedule.SlotTime) (*bool, error)
	UpsertDateOpen(ctx context.Context, d schedule.Date, isOpen bool) error
	UpsertSlotOverride(ctx context.Context, d schedule.Date, t schedule.SlotTime, isAvailable bool) error
	InsertSlot(ctx context.Context, s *schedule.Slot) (int64, error)
	DeleteSlot(ctx context.Context, id int64) error
	ListSlots(ctx context.Context, enabledOnly bool) ([]*SlotView, error)
}

type ScheduleCommands interface {
	AddSlot(ctx context.Context, t schedule.SlotTime, label string, displayOrder int) (*SlotView, error)
	RemoveSlot(ctx context.Context, id int64) error
	SetDateOpen(ctx context.Context, d schedule.Date, isOpen bool) error
	SetSlotOverride(ctx context.Context, d schedule.Date, t schedule.SlotTime, isAvailable bool) error
}

type ScheduleQueries interface {
	IsSlotBookable(ctx context.Context, date schedule.Date, slotTime schedule.SlotTime) (bool, error)
	ListActiveSlots(ctx context.Context) ([]*SlotView, error)
	ListAllSlots(ctx context.Context) ([]*SlotView, error)
}

type scheduleUseCaseImpl struct {
	repo ScheduleRepository
}

func NewScheduleUseCase(repo ScheduleRepository) (ScheduleCommands, ScheduleQueries) {
	u := &scheduleUseCaseImpl{repo: repo}
	return u, u
}

func (u *scheduleUseCaseImpl) IsSlotBookable(ctx context.Context, date schedule.Date, slotTime schedule.SlotTime) (bool, error) {
	slot, err := u.repo.FindSlotByTime(ctx, slotTime)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Slot not in the catalog at all: nothing to book.
			return false, nil
		}
		return false, errs.Mark(err, errs.ErrStorageFailure)
	}

	dateOpen, err := u.repo.GetDateOpen(ctx, date)
	if err != nil {
		return false, errs.Mark(err, errs.ErrStorageFailure)
	}

	override, err := u.repo.GetSlotOverride(ctx, date, slotTime)
	if err != nil {
		return false, errs.Mark(err, errs.ErrStorageFailure)
	}

	return schedule.IsBookable(slot.Enabled, dateOpen, override), nil
}

func (u *scheduleUseCaseImpl) AddSlot(ctx context.Context, t schedule.SlotTime, label string, displayOrder int) (*SlotView, error) {
	slot := schedule.NewSlot(t, label, displayOrder)

	id, err := u.repo.InsertSlot(ctx, slot)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateSlot
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return &SlotView{
		ID:           id,
		Time:         slot.Time(),
		Label:        slot.Label(),
		DisplayOrder: slot.DisplayOrder(),
		Enabled:      slot.Enabled(),
	}, nil
}

func (u *scheduleUseCaseImpl) RemoveSlot(ctx context.Context, id int64) error {
	if err := u.repo.DeleteSlot(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrSlotNotFound
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (u *scheduleUseCaseImpl) SetDateOpen(ctx context.Context, d schedule.Date, isOpen bool) error {
	if err := u.repo.UpsertDateOpen(ctx, d, isOpen); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (u *scheduleUseCaseImpl) SetSlotOverride(ctx context.Context, d schedule.Date, t schedule.SlotTime, isAvailable bool) error {
	if err := u.repo.UpsertSlotOverride(ctx, d, t, isAvailable); err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (u *scheduleUseCaseImpl) ListActiveSlots(ctx context.Context) ([]*SlotView, error) {
	slots, err := u.repo.ListSlots(ctx, true)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return slots, nil
}

func (u *scheduleUseCaseImpl) ListAllSlots(ctx context.Context) ([]*SlotView, error) {
	slots, err := u.repo.ListSlots(ctx, false)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return slots, nil
}
