package readstore

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, date, room_id, start_index, end_index, customer_name, purpose, booked_by, created_at, updated_at`

const findBookingByIDSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1`

const listByRoomDaySQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE date = $1 AND room_id = $2
ORDER BY start_index`

const listByDateRangeSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE date >= $1 AND date <= $2
ORDER BY date, start_index, room_id`

// BookingReadStore is the read side of the booking store. Reads may lag
// writes; the validator pre-check and the calendar views tolerate a stale
// snapshot because the database is the authoritative conflict guard.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (booking.Booking, error) {
	row := r.db.QueryRow(ctx, findBookingByIDSQL, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.Booking{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return booking.Booking{}, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

// ListByRoomDay returns the bookings for one (room, date), sorted by start
// index. This is the conflict scope the validator checks against.
func (r *BookingReadStore) ListByRoomDay(ctx context.Context, date time.Time, roomID booking.RoomID) ([]booking.Booking, error) {
	rows, err := r.db.Query(ctx, listByRoomDaySQL, date, int(roomID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for room and day", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListByDateRange returns all rooms' bookings for an inclusive date window.
func (r *BookingReadStore) ListByDateRange(ctx context.Context, from, to time.Time) ([]booking.Booking, error) {
	rows, err := r.db.Query(ctx, listByDateRangeSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date range", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

func scanBooking(row pgx.Row) (booking.Booking, error) {
	var (
		id                      uuid.UUID
		date                    time.Time
		roomID                  int
		startIndex, endIndex    int
		name, purpose, bookedBy string
		createdAt, updatedAt    time.Time
	)
	err := row.Scan(&id, &date, &roomID, &startIndex, &endIndex, &name, &purpose, &bookedBy, &createdAt, &updatedAt)
	if err != nil {
		return booking.Booking{}, err
	}
	return booking.ReconstructBooking(
		id, date, booking.RoomID(roomID), startIndex, endIndex,
		name, purpose, bookedBy, createdAt, updatedAt,
	), nil
}

func collectBookings(rows pgx.Rows) ([]booking.Booking, error) {
	var out []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return out, nil
}
