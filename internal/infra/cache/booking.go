package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BookingLister is the read-store surface the cache decorates.
type BookingLister interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]booking.Booking, error)
}

// BookingCache is a cache-aside decorator over the booking read store for
// the calendar views. Cached snapshots may lag writes, which the core
// tolerates; every write bumps a version key so subsequent reads miss.
// Nil-safe: with no Redis client configured, every call delegates.
type BookingCache struct {
	inner  BookingLister
	client *redis.Client
	ttl    time.Duration
	loc    *time.Location
}

const versionKey = "bookings:ver"

func NewBookingCache(inner BookingLister, client *redis.Client, ttl time.Duration, loc *time.Location) *BookingCache {
	return &BookingCache{inner: inner, client: client, ttl: ttl, loc: loc}
}

func (c *BookingCache) ListByDateRange(ctx context.Context, from, to time.Time) ([]booking.Booking, error) {
	if c.client == nil || c.ttl <= 0 {
		return c.inner.ListByDateRange(ctx, from, to)
	}

	key := c.rangeKey(ctx, from, to)
	if cached, ok := c.get(ctx, key); ok {
		return cached, nil
	}

	bs, err := c.inner.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, bs)
	return bs, nil
}

// Invalidate bumps the version so all cached windows become unreachable.
// Cache failures never fail a write.
func (c *BookingCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		slog.Warn("failed to bump booking cache version", "error", err)
	}
}

func (c *BookingCache) rangeKey(ctx context.Context, from, to time.Time) string {
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		ver = -1 // unreadable version: key will never hit, reads fall through
	}
	return fmt.Sprintf("bookings:v%d:%s:%s",
		ver, from.Format(schedule.DateLayout), to.Format(schedule.DateLayout))
}

type cachedBooking struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	RoomID       int       `json:"roomId"`
	StartIndex   int       `json:"startIndex"`
	EndIndex     int       `json:"endIndex"`
	CustomerName string    `json:"customerName"`
	Purpose      string    `json:"purpose"`
	BookedBy     string    `json:"bookedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *BookingCache) get(ctx context.Context, key string) ([]booking.Booking, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var rows []cachedBooking
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		return nil, false
	}
	out := make([]booking.Booking, 0, len(rows))
	for _, r := range rows {
		date, err := time.ParseInLocation(schedule.DateLayout, r.Date, c.loc)
		if err != nil {
			return nil, false
		}
		out = append(out, booking.ReconstructBooking(
			r.ID, date, booking.RoomID(r.RoomID), r.StartIndex, r.EndIndex,
			r.CustomerName, r.Purpose, r.BookedBy, r.CreatedAt, r.UpdatedAt,
		))
	}
	return out, true
}

func (c *BookingCache) set(ctx context.Context, key string, bs []booking.Booking) {
	rows := make([]cachedBooking, len(bs))
	for i, b := range bs {
		rows[i] = cachedBooking{
			ID:           b.ID(),
			Date:         b.DateKey(),
			RoomID:       int(b.RoomID()),
			StartIndex:   b.StartIndex(),
			EndIndex:     b.EndIndex(),
			CustomerName: b.CustomerName(),
			Purpose:      b.Purpose(),
			BookedBy:     b.BookedBy(),
			CreatedAt:    b.CreatedAt(),
			UpdatedAt:    b.UpdatedAt(),
		}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache booking window", "error", err)
	}
}
