package bootstrap

import (
	"context"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/scheduler"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewReminderScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewReminderScheduler(reminders usecase.ReminderCommands, clk clock.Clock, cfg config.Config) *scheduler.ReminderScheduler {
	return scheduler.NewReminderScheduler(reminders, clk, cfg.Reminder.Hour)
}

// registerScheduler hooks the daily sweep into the app lifecycle. When the
// scheduler is disabled it is still constructed so the manual-run endpoint
// keeps working; only the timer loop is skipped.
func registerScheduler(lc fx.Lifecycle, cfg config.Config, sched *scheduler.ReminderScheduler) {
	if !cfg.Reminder.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
