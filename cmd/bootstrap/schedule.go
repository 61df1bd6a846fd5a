package bootstrap

import (
	"time"

	"roombook/internal/domain/schedule"
	"roombook/internal/pkg/config"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewLocation,
		NewGrid,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.TimeZone)
}

func NewGrid(cfg config.Config, loc *time.Location) (schedule.Grid, error) {
	return schedule.NewGrid(cfg.Booking.StartHour, cfg.Booking.EndHour, loc)
}
