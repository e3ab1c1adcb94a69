package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderRepository struct {
	db *pgxpool.Pool
}

func NewReminderRepository(db *pgxpool.Pool) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Insert(ctx context.Context, sub usecase.ReminderView) (int64, error) {
	const q = `
		INSERT INTO reminders (email, customer_name, service_name, booking_date, booking_time, sent)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		sub.Email, sub.CustomerName, sub.ServiceName,
		sub.Date.Time(), sub.SlotTime.String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert reminder subscription", err)
	}
	return id, nil
}

func (r *ReminderRepository) ListUnsentByDate(ctx context.Context, d schedule.Date) ([]usecase.ReminderView, error) {
	const q = `
		SELECT id, email, customer_name, service_name, booking_date, booking_time
		FROM reminders
		WHERE booking_date = $1 AND sent = false
		ORDER BY booking_time, id`

	rows, err := r.db.Query(ctx, q, d.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due reminders", err)
	}
	defer rows.Close()

	var result []usecase.ReminderView
	for rows.Next() {
		var (
			view     usecase.ReminderView
			date     time.Time
			slotTime string
		)
		if err := rows.Scan(&view.ID, &view.Email, &view.CustomerName, &view.ServiceName, &date, &slotTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder", err)
		}
		t, err := schedule.NewSlotTime(slotTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot time in storage", err)
		}
		view.Date = schedule.DateOf(date)
		view.SlotTime = t
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminders", err)
	}

	return result, nil
}

func (r *ReminderRepository) MarkSent(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE reminders SET sent = true WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder not found", nil, infra.KindNotFound)
	}
	return nil
}
