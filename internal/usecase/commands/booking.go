package commands

import (
	"context"
	"errors"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/principal"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"
	"roombook/internal/pkg/metrics"

	"github.com/google/uuid"
)

// BookingRepository is the write side of the external booking store. The
// store, not the validator, is the final arbiter of non-overlap: a racing
// insert that slips past the optimistic pre-check must come back as
// KindConflict rather than silently persisting overlapping data.
type BookingRepository interface {
	Create(ctx context.Context, b booking.Booking) (booking.Booking, error)
	Update(ctx context.Context, id uuid.UUID, b booking.Booking) (booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingReadStore supplies the snapshots the pre-check validates against.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (booking.Booking, error)
	ListByRoomDay(ctx context.Context, date time.Time, roomID booking.RoomID) ([]booking.Booking, error)
}

// CacheInvalidator drops cached calendar windows after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type BookingCommands interface {
	Create(ctx context.Context, in booking.Input, actor principal.Principal) (booking.Booking, error)
	Update(ctx context.Context, id uuid.UUID, in booking.Input, actor principal.Principal) (booking.Booking, error)
	Delete(ctx context.Context, id uuid.UUID, actor principal.Principal) error
}

type bookingCommandsImpl struct {
	repo      BookingRepository
	readStore BookingReadStore
	validator *booking.Validator
	cache     CacheInvalidator
}

func NewBookingCommands(
	repo BookingRepository,
	readStore BookingReadStore,
	validator *booking.Validator,
	cache CacheInvalidator,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		readStore: readStore,
		validator: validator,
		cache:     cache,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in booking.Input, actor principal.Principal) (booking.Booking, error) {
	in.BookedBy = actor.ID

	validated, err := c.validateAgainstSnapshot(ctx, in, uuid.Nil)
	if err != nil {
		return booking.Booking{}, err
	}

	created, err := c.repo.Create(ctx, validated)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			metrics.IncSlotConflict("store")
			return booking.Booking{}, errs.Mark(err, errs.ErrSlotTaken)
		}
		return booking.Booking{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.IncBookingCreated(created.RoomID().Name())
	c.cache.Invalidate(ctx)
	return created, nil
}

// Update re-runs the full validation with the booking excluded from the
// overlap check so it cannot conflict with itself. Ownership never changes:
// the stored principal survives a full-field update.
func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, in booking.Input, actor principal.Principal) (booking.Booking, error) {
	current, err := c.findExisting(ctx, id)
	if err != nil {
		return booking.Booking{}, err
	}
	if !actor.IsAdmin() && !current.IsOwnedBy(actor.ID) {
		return booking.Booking{}, errs.ErrForbidden
	}

	in.BookedBy = current.BookedBy()
	validated, err := c.validateAgainstSnapshot(ctx, in, id)
	if err != nil {
		return booking.Booking{}, err
	}

	updated, err := c.repo.Update(ctx, id, validated)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return booking.Booking{}, errs.Mark(err, errs.ErrBookingNotFound)
		case infra.IsKind(err, infra.KindConflict):
			metrics.IncSlotConflict("store")
			return booking.Booking{}, errs.Mark(err, errs.ErrSlotTaken)
		default:
			return booking.Booking{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	metrics.IncBookingUpdated()
	c.cache.Invalidate(ctx)
	return updated, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor principal.Principal) error {
	current, err := c.findExisting(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && !current.IsOwnedBy(actor.ID) {
		return errs.ErrForbidden
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	metrics.IncBookingDeleted()
	c.cache.Invalidate(ctx)
	return nil
}

// validateAgainstSnapshot runs the optimistic pre-check against the most
// recently fetched booking set for the proposal's (room, date). Validation
// errors pass through unwrapped so handlers can map each rejection reason.
func (c *bookingCommandsImpl) validateAgainstSnapshot(ctx context.Context, in booking.Input, excludeID uuid.UUID) (booking.Booking, error) {
	var existing []booking.Booking
	if !in.Date.IsZero() && in.RoomID.IsValid() {
		var err error
		existing, err = c.readStore.ListByRoomDay(ctx, in.Date, in.RoomID)
		if err != nil {
			return booking.Booking{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	validated, err := c.validator.Validate(in, existing, excludeID)
	if err != nil {
		var conflict *booking.SlotConflictError
		if errors.As(err, &conflict) {
			metrics.IncSlotConflict("validator")
		}
		return booking.Booking{}, err
	}
	return validated, nil
}

func (c *bookingCommandsImpl) findExisting(ctx context.Context, id uuid.UUID) (booking.Booking, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Booking{}, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return booking.Booking{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return current, nil
}
