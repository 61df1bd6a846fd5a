package repository

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

const insertBookingSQL = `
INSERT INTO bookings (date, room_id, start_index, end_index, customer_name, purpose, booked_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

const updateBookingSQL = `
UPDATE bookings
SET date = $1, room_id = $2, start_index = $3, end_index = $4,
    customer_name = $5, purpose = $6, updated_at = now()
WHERE id = $7
RETURNING booked_by, created_at, updated_at`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

// BookingRepository is the write side of the booking store. The bookings
// table carries an exclusion constraint over (room_id, date, slot range), so
// the database stays the final arbiter of non-overlap under concurrent
// writers; an insert losing that race comes back as KindConflict.
type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	row := r.db.QueryRow(ctx, insertBookingSQL,
		b.Date(), int(b.RoomID()), b.StartIndex(), b.EndIndex(),
		b.CustomerName(), b.Purpose(), b.BookedBy(),
	)

	var (
		id                   uuid.UUID
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
		if isOverlapViolation(err) {
			return booking.Booking{}, infra.WrapRepoErr("booking overlaps an existing one", err, infra.KindConflict)
		}
		return booking.Booking{}, infra.WrapRepoErr("failed to create booking", err)
	}

	return booking.ReconstructBooking(
		id, b.Date(), b.RoomID(), b.StartIndex(), b.EndIndex(),
		b.CustomerName(), b.Purpose(), b.BookedBy(),
		createdAt, updatedAt,
	), nil
}

// Update replaces all caller-editable fields of an existing booking. The
// owning principal is immutable; it is read back, never written.
func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, b booking.Booking) (booking.Booking, error) {
	row := r.db.QueryRow(ctx, updateBookingSQL,
		b.Date(), int(b.RoomID()), b.StartIndex(), b.EndIndex(),
		b.CustomerName(), b.Purpose(), id,
	)

	var (
		bookedBy             string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&bookedBy, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return booking.Booking{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		if isOverlapViolation(err) {
			return booking.Booking{}, infra.WrapRepoErr("booking overlaps an existing one", err, infra.KindConflict)
		}
		return booking.Booking{}, infra.WrapRepoErr("failed to update booking", err)
	}

	return booking.ReconstructBooking(
		id, b.Date(), b.RoomID(), b.StartIndex(), b.EndIndex(),
		b.CustomerName(), b.Purpose(), bookedBy,
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func isOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}
