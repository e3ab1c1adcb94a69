package repository

import (
	"context"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) FindSlotByTime(ctx context.Context, t schedule.SlotTime) (*usecase.SlotView, error) {
	const q = `
		SELECT id, slot_time, label, display_order, is_enabled
		FROM slots
		WHERE slot_time = $1`

	var (
		view     usecase.SlotView
		slotTime string
	)
	err := r.db.QueryRow(ctx, q, t.String()).Scan(
		&view.ID, &slotTime, &view.Label, &view.DisplayOrder, &view.Enabled)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slot by time", err)
	}

	parsed, err := schedule.NewSlotTime(slotTime)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid slot time in storage", err)
	}
	view.Time = parsed
	return &view, nil
}

func (r *ScheduleRepository) GetDateOpen(ctx context.Context, d schedule.Date) (*bool, error) {
	const q = `SELECT is_open FROM date_availability WHERE booking_date = $1`

	var isOpen bool
	err := r.db.QueryRow(ctx, q, d.Time()).Scan(&isOpen)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to get date availability", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, nil
		}
		return nil, wrapped
	}
	return &isOpen, nil
}

func (r *ScheduleRepository) GetSlotOverride(ctx context.Context, d schedule.Date, t schedule.SlotTime) (*bool, error) {
	const q = `SELECT is_available FROM slot_overrides WHERE booking_date = $1 AND slot_time = $2`

	var isAvailable bool
	err := r.db.QueryRow(ctx, q, d.Time(), t.String()).Scan(&isAvailable)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to get slot override", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, nil
		}
		return nil, wrapped
	}
	return &isAvailable, nil
}

func (r *ScheduleRepository) UpsertDateOpen(ctx context.Context, d schedule.Date, isOpen bool) error {
	const q = `
		INSERT INTO date_availability (booking_date, is_open)
		VALUES ($1, $2)
		ON CONFLICT (booking_date) DO UPDATE SET is_open = EXCLUDED.is_open`

	if _, err := r.db.Exec(ctx, q, d.Time(), isOpen); err != nil {
		return infra.WrapRepoErr("failed to upsert date availability", err)
	}
	return nil
}

func (r *ScheduleRepository) UpsertSlotOverride(ctx context.Context, d schedule.Date, t schedule.SlotTime, isAvailable bool) error {
	const q = `
		INSERT INTO slot_overrides (booking_date, slot_time, is_available)
		VALUES ($1, $2, $3)
		ON CONFLICT (booking_date, slot_time) DO UPDATE SET is_available = EXCLUDED.is_available`

	if _, err := r.db.Exec(ctx, q, d.Time(), t.String(), isAvailable); err != nil {
		return infra.WrapRepoErr("failed to upsert slot override", err)
	}
	return nil
}

func (r *ScheduleRepository) InsertSlot(ctx context.Context, s *schedule.Slot) (int64, error) {
	const q = `
		INSERT INTO slots (slot_time, label, display_order, is_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, s.Time().String(), s.Label(), s.DisplayOrder(), s.Enabled()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert slot", err)
	}
	return id, nil
}

func (r *ScheduleRepository) DeleteSlot(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) ListSlots(ctx context.Context, enabledOnly bool) ([]*usecase.SlotView, error) {
	q := `
		SELECT id, slot_time, label, display_order, is_enabled
		FROM slots`
	if enabledOnly {
		q += ` WHERE is_enabled`
	}
	q += ` ORDER BY display_order, slot_time`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	var result []*usecase.SlotView
	for rows.Next() {
		var (
			view     usecase.SlotView
			slotTime string
		)
		if err := rows.Scan(&view.ID, &slotTime, &view.Label, &view.DisplayOrder, &view.Enabled); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		parsed, err := schedule.NewSlotTime(slotTime)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid slot time in storage", err)
		}
		view.Time = parsed
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slots", err)
	}

	return result, nil
}
