package queries

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/principal"
	"roombook/internal/domain/schedule"
	"roombook/internal/infra"
	"roombook/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingReadStore is the read surface the calendar views are built from.
// Point and room-scoped reads bypass the cache; window reads may be served
// from it.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (booking.Booking, error)
	ListByRoomDay(ctx context.Context, date time.Time, roomID booking.RoomID) ([]booking.Booking, error)
}

// BookingWindowLister lists a date window, possibly from a cached snapshot.
type BookingWindowLister interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]booking.Booking, error)
}

// SlotInfo is one grid row of the day view.
type SlotInfo struct {
	Index  int
	Label  string
	Booked bool
}

type DayView struct {
	Date     string
	Bookings []booking.Public
	Slots    []SlotInfo
}

type WeekView struct {
	WeekStart string
	Days      []string
	Buckets   map[string][]booking.Public
	Occupancy *booking.Occupancy
}

type MonthView struct {
	Year    int
	Month   time.Month
	Buckets map[string][]booking.Public
}

// BookingQueries produces the day/week/month projections. Redaction for the
// requesting viewer happens here, before any record leaves the process.
type BookingQueries interface {
	Get(ctx context.Context, id uuid.UUID, viewer principal.Viewer) (booking.Public, error)
	List(ctx context.Context, date time.Time, roomID *booking.RoomID, viewer principal.Viewer) ([]booking.Public, error)
	Day(ctx context.Context, date time.Time, viewer principal.Viewer) (*DayView, error)
	Week(ctx context.Context, anyDay time.Time, viewer principal.Viewer) (*WeekView, error)
	Month(ctx context.Context, year int, month time.Month, viewer principal.Viewer) (*MonthView, error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	lister BookingWindowLister
	grid   schedule.Grid
}

func NewBookingQueries(store BookingReadStore, lister BookingWindowLister, grid schedule.Grid) BookingQueries {
	return &bookingQueriesImpl{store: store, lister: lister, grid: grid}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID, viewer principal.Viewer) (booking.Public, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Public{}, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return booking.Public{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.Redact(b, viewer), nil
}

// List returns one day's bookings, optionally narrowed to a room, projected
// for the viewer.
func (q *bookingQueriesImpl) List(ctx context.Context, date time.Time, roomID *booking.RoomID, viewer principal.Viewer) ([]booking.Public, error) {
	var (
		bs  []booking.Booking
		err error
	)
	if roomID != nil {
		bs, err = q.store.ListByRoomDay(ctx, date, *roomID)
	} else {
		bs, err = q.lister.ListByDateRange(ctx, date, date)
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return booking.RedactAll(bs, viewer), nil
}

func (q *bookingQueriesImpl) Day(ctx context.Context, date time.Time, viewer principal.Viewer) (*DayView, error) {
	bs, err := q.lister.ListByDateRange(ctx, date, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	public := booking.RedactAll(bs, viewer)
	occupancy := booking.NewOccupancy([]time.Time{date}, q.grid, public)

	slots := make([]SlotInfo, q.grid.SlotCount())
	for i := range slots {
		label, _ := q.grid.SlotLabel(i) // i is always in range here
		_, booked := occupancy.At(0, i)
		slots[i] = SlotInfo{Index: i, Label: label, Booked: booked}
	}

	buckets := booking.BucketByDay(public)
	key := date.Format(schedule.DateLayout)
	return &DayView{
		Date:     key,
		Bookings: buckets[key],
		Slots:    slots,
	}, nil
}

func (q *bookingQueriesImpl) Week(ctx context.Context, anyDay time.Time, viewer principal.Viewer) (*WeekView, error) {
	start := booking.WeekStart(anyDay)
	days := booking.DaysFrom(start, 7)

	bs, err := q.lister.ListByDateRange(ctx, start, days[6])
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	public := booking.RedactAll(bs, viewer)
	occupancy := booking.NewOccupancy(days, q.grid, public)

	return &WeekView{
		WeekStart: start.Format(schedule.DateLayout),
		Days:      occupancy.Days(),
		Buckets:   booking.BucketByDay(public),
		Occupancy: occupancy,
	}, nil
}

func (q *bookingQueriesImpl) Month(ctx context.Context, year int, month time.Month, viewer principal.Viewer) (*MonthView, error) {
	first, daysInMonth := booking.MonthRange(year, month, q.grid.Location())
	last := first.AddDate(0, 0, daysInMonth-1)

	bs, err := q.lister.ListByDateRange(ctx, first, last)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &MonthView{
		Year:    year,
		Month:   month,
		Buckets: booking.BucketByDay(booking.RedactAll(bs, viewer)),
	}, nil
}
