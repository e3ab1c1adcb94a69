package components

import (
	repo_impl "salon-booking/internal/infra/repository"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
		),
		fx.Annotate(
			repo_impl.NewReminderRepository,
			fx.As(new(usecase.ReminderRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(usecase.CatalogRepository)),
		),
	),
)
