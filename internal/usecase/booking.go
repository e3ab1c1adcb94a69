package usecase

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (int64, error)
	Update(ctx context.Context, id int64, b *booking.Booking) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	ListBookedSlots(ctx context.Context, from, to schedule.Date) ([]BookedSlot, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
}

// AvailabilityChecker answers whether a (date, slot) pair can be booked.
// Satisfied by ScheduleQueries.
type AvailabilityChecker interface {
	IsSlotBookable(ctx context.Context, date schedule.Date, slotTime schedule.SlotTime) (bool, error)
}

// BookingNotifier receives the confirmed booking for best-effort fan-out.
// Implementations must not block the caller beyond handing the work off and
// must swallow their own failures.
type BookingNotifier interface {
	BookingCreated(v BookingView)
}

type NewBookingInput struct {
	CustomerName string
	PhoneNumber  string
	ServiceName  string
	Date         schedule.Date
	SlotTime     schedule.SlotTime
	Notes        string
}

type BookingCommands interface {
	// Reserve is the customer-facing path: availability-gated, race-safe.
	Reserve(ctx context.Context, in NewBookingInput) (*BookingView, error)
	// CreateBooking is the admin path: skips the availability gate but the
	// (date, slot) uniqueness constraint still applies.
	CreateBooking(ctx context.Context, in NewBookingInput) (*BookingView, error)
	UpdateBooking(ctx context.Context, id int64, in NewBookingInput) error
	DeleteBooking(ctx context.Context, id int64) error
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id int64) (*BookingView, error)
	ListBookings(ctx context.Context) ([]*BookingView, error)
	ListBookedSlots(ctx context.Context, from, to schedule.Date) ([]BookedSlot, error)
}

type bookingUseCaseImpl struct {
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	notifier     BookingNotifier
	clock        clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityChecker,
	notifier BookingNotifier,
	clk clock.Clock,
) (BookingCommands, BookingQueries) {
	u := &bookingUseCaseImpl{
		bookingRepo:  bookingRepo,
		availability: availability,
		notifier:     notifier,
		clock:        clk,
	}
	return u, u
}

func (u *bookingUseCaseImpl) Reserve(ctx context.Context, in NewBookingInput) (*BookingView, error) {
	entity, err := booking.NewBooking(in.CustomerName, in.PhoneNumber, in.ServiceName, in.Date, in.SlotTime, in.Notes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingValidation)
	}

	bookable, err := u.availability.IsSlotBookable(ctx, in.Date, in.SlotTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	if !bookable {
		return nil, errs.ErrSlotUnavailable
	}

	view, err := u.insert(ctx, entity)
	if err != nil {
		return nil, err
	}

	// ここで結果は確定。通知の成否は予約には影響しない。
	u.notifier.BookingCreated(*view)

	return view, nil
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, in NewBookingInput) (*BookingView, error) {
	entity, err := booking.NewBooking(in.CustomerName, in.PhoneNumber, in.ServiceName, in.Date, in.SlotTime, in.Notes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBookingValidation)
	}

	return u.insert(ctx, entity)
}

func (u *bookingUseCaseImpl) insert(ctx context.Context, entity *booking.Booking) (*BookingView, error) {
	// The UNIQUE(booking_date, booking_time) constraint is the source of
	// truth: two requests may both pass the availability read, only one
	// insert wins.
	id, err := u.bookingRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrAlreadyBooked
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	return &BookingView{
		ID:           id,
		CustomerName: entity.CustomerName(),
		PhoneNumber:  entity.PhoneNumber(),
		ServiceName:  entity.ServiceName(),
		Date:         entity.Date(),
		SlotTime:     entity.SlotTime(),
		Notes:        entity.Notes(),
		CreatedAt:    u.clock.Now(),
	}, nil
}

func (u *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id int64, in NewBookingInput) error {
	entity, err := booking.NewBooking(in.CustomerName, in.PhoneNumber, in.ServiceName, in.Date, in.SlotTime, in.Notes)
	if err != nil {
		return errs.Mark(err, errs.ErrBookingValidation)
	}

	if err := u.bookingRepo.Update(ctx, id, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.ErrBookingNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.ErrAlreadyBooked
		default:
			return errs.Mark(err, errs.ErrStorageFailure)
		}
	}
	return nil
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id int64) error {
	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	slog.Info("予約を削除しました", "booking_id", id)
	return nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id int64) (*BookingView, error) {
	view, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context) ([]*BookingView, error) {
	views, err := u.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}

func (u *bookingUseCaseImpl) ListBookedSlots(ctx context.Context, from, to schedule.Date) ([]BookedSlot, error) {
	slots, err := u.bookingRepo.ListBookedSlots(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return slots, nil
}
