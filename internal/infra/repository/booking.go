package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	const q = `
		INSERT INTO bookings (customer_name, phone_number, service_name, booking_date, booking_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		b.CustomerName(), b.PhoneNumber(), b.ServiceName(),
		b.Date().Time(), b.SlotTime().String(), b.Notes(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, id int64, b *booking.Booking) error {
	const q = `
		UPDATE bookings
		SET customer_name = $2, phone_number = $3, service_name = $4,
		    booking_date = $5, booking_time = $6, notes = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id,
		b.CustomerName(), b.PhoneNumber(), b.ServiceName(),
		b.Date().Time(), b.SlotTime().String(), b.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*usecase.BookingView, error) {
	const q = `
		SELECT id, customer_name, phone_number, service_name, booking_date, booking_time, notes, created_at
		FROM bookings
		WHERE id = $1`

	view, err := scanBookingRow(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingRepository) ListBookedSlots(ctx context.Context, from, to schedule.Date) ([]usecase.BookedSlot, error) {
	const q = `
		SELECT booking_date, booking_time
		FROM bookings
		WHERE booking_date BETWEEN $1 AND $2
		ORDER BY booking_date, booking_time`

	rows, err := r.db.Query(ctx, q, from.Time(), to.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	defer rows.Close()

	var result []usecase.BookedSlot
	for rows.Next() {
		var (
			date     time.Time
			slotTime string
		)
		if err := rows.Scan(&date, &slotTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		t, err := schedule.NewSlotTime(slotTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot time in storage", err)
		}
		result = append(result, usecase.BookedSlot{
			Date:     schedule.DateOf(date),
			SlotTime: t,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slots", err)
	}

	return result, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*usecase.BookingView, error) {
	const q = `
		SELECT id, customer_name, phone_number, service_name, booking_date, booking_time, notes, created_at
		FROM bookings
		ORDER BY booking_date DESC, booking_time DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*usecase.BookingView
	for rows.Next() {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return result, nil
}

func scanBookingRow(row pgx.Row) (*usecase.BookingView, error) {
	var (
		view      usecase.BookingView
		date      time.Time
		slotTime  string
		notes     *string
		createdAt time.Time
	)
	err := row.Scan(&view.ID, &view.CustomerName, &view.PhoneNumber, &view.ServiceName,
		&date, &slotTime, &notes, &createdAt)
	if err != nil {
		return nil, err
	}

	t, err := schedule.NewSlotTime(slotTime)
	if err != nil {
		return nil, err
	}

	view.Date = schedule.DateOf(date)
	view.SlotTime = t
	if notes != nil {
		view.Notes = *notes
	}
	view.CreatedAt = createdAt
	return &view, nil
}
