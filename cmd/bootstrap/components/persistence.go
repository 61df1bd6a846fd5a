package components

import (
	"time"

	"roombook/internal/infra/cache"
	"roombook/internal/infra/db"
	"roombook/internal/infra/readstore"
	"roombook/internal/infra/repository"
	"roombook/internal/pkg/config"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(commands.BookingReadStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(cache.BookingLister)),
		),
		fx.Annotate(
			NewBookingCache,
			fx.As(new(queries.BookingWindowLister)),
			fx.As(new(commands.CacheInvalidator)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewBookingCache(lister cache.BookingLister, client *redis.Client, cfg config.Config, loc *time.Location) *cache.BookingCache {
	return cache.NewBookingCache(lister, client, cfg.Redis.CacheTTL, loc)
}
