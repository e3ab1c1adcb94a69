package components

import (
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewScheduleUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewReminderUseCase,
		usecase.NewBookingUseCase,
		// 予約の空き判定はスケジュール照会をそのまま使う
		func(q usecase.ScheduleQueries) usecase.AvailabilityChecker {
			return q
		},
	),
)
