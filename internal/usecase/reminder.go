package usecase

import (
	"context"
	"log/slog"
	"strings"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
)

type ReminderRepository interface {
	Insert(ctx context.Context, sub ReminderView) (int64, error)
	// ListUnsentByDate matches by exact date equality; the sweep relies on
	// this to get its single-day retry window.
	ListUnsentByDate(ctx context.Context, d schedule.Date) ([]ReminderView, error)
	MarkSent(ctx context.Context, id int64) error
}

// ReminderMailer performs one reminder delivery attempt and reports the
// outcome; the sweep flips the sent flag only on success.
type ReminderMailer interface {
	SendReminder(ctx context.Context, r ReminderView) error
}

type SubscribeReminderInput struct {
	Email        string
	CustomerName string
	ServiceName  string
	Date         schedule.Date
	SlotTime     schedule.SlotTime
}

type ReminderCommands interface {
	Subscribe(ctx context.Context, in SubscribeReminderInput) (int64, error)
	// RunReminderSweep delivers reminders for bookings happening tomorrow.
	// Idempotent per subscription: rows already marked sent are excluded by
	// the query, a crash mid-sweep leaves unattempted rows pending.
	RunReminderSweep(ctx context.Context) error
}

type reminderUseCaseImpl struct {
	repo   ReminderRepository
	mailer ReminderMailer
	clock  clock.Clock
}

func NewReminderUseCase(repo ReminderRepository, mailer ReminderMailer, clk clock.Clock) ReminderCommands {
	return &reminderUseCaseImpl{
		repo:   repo,
		mailer: mailer,
		clock:  clk,
	}
}

func (u *reminderUseCaseImpl) Subscribe(ctx context.Context, in SubscribeReminderInput) (int64, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return 0, errs.ErrReminderValidation
	}
	if in.Date.IsZero() {
		return 0, errs.ErrReminderValidation
	}

	id, err := u.repo.Insert(ctx, ReminderView{
		Email:        email,
		CustomerName: in.CustomerName,
		ServiceName:  in.ServiceName,
		Date:         in.Date,
		SlotTime:     in.SlotTime,
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrStorageFailure)
	}
	return id, nil
}

func (u *reminderUseCaseImpl) RunReminderSweep(ctx context.Context) error {
	tomorrow := schedule.DateOf(u.clock.Now()).AddDays(1)

	due, err := u.repo.ListUnsentByDate(ctx, tomorrow)
	if err != nil {
		return errs.Mark(err, errs.ErrStorageFailure)
	}

	sent := 0
	for _, r := range due {
		if err := u.mailer.SendReminder(ctx, r); err != nil {
			// 未送信のまま残す。明日の掃引でも日付が一致すれば再試行される。
			slog.Warn("リマインダーの送信に失敗しました", "reminder_id", r.ID, "error", err.Error())
			continue
		}
		if err := u.repo.MarkSent(ctx, r.ID); err != nil {
			slog.Error("sent フラグの更新に失敗しました", "reminder_id", r.ID, "error", err.Error())
			continue
		}
		sent++
	}

	slog.Info("リマインダー掃引が完了しました", "date", tomorrow.String(), "due", len(due), "sent", sent)
	return nil
}
