package bootstrap

import (
	"context"

	"salon-booking/internal/notify"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewDispatcher,
		fx.Annotate(
			NewReminderMailer,
			fx.As(new(usecase.ReminderMailer)),
		),
	),
)

func NewDispatcher(lc fx.Lifecycle, cfg config.Config) usecase.BookingNotifier {
	d := notify.NewDispatcher(cfg.Notify)

	// 停止時は送信中の通知を待ってから落とす
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			d.Wait()
			return nil
		},
	})

	return d
}

func NewReminderMailer(cfg config.Config) *notify.ReminderMailer {
	return notify.NewReminderMailer(cfg.Notify)
}
