package bootstrap

import (
	"time"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewLocation,
		clock.NewRealClock,
	),
)

// NewLocation resolves the operating time zone. All date arithmetic (booking
// dates, the reminder sweep's "tomorrow") runs in this zone.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Server.TimeZone)
}
