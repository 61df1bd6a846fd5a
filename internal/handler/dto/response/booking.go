package response

import (
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingResponse is the full record, returned from writes to the actor who
// is always entitled to it (owner or admin).
type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	RoomID       int       `json:"roomId"`
	RoomName     string    `json:"roomName"`
	StartIndex   int       `json:"startIndex"`
	EndIndex     int       `json:"endIndex"`
	CustomerName string    `json:"customerName"`
	Purpose      string    `json:"purpose"`
	BookedBy     string    `json:"bookedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromBooking(b booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID(),
		Date:         b.DateKey(),
		RoomID:       int(b.RoomID()),
		RoomName:     b.RoomID().Name(),
		StartIndex:   b.StartIndex(),
		EndIndex:     b.EndIndex(),
		CustomerName: b.CustomerName(),
		Purpose:      b.Purpose(),
		BookedBy:     b.BookedBy(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
}

// PublicBookingResponse is the viewer-projected record: redacted fields are
// simply absent for viewers who are neither owner nor admin.
type PublicBookingResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	RoomID       int       `json:"roomId"`
	RoomName     string    `json:"roomName"`
	StartIndex   int       `json:"startIndex"`
	EndIndex     int       `json:"endIndex"`
	CustomerName string    `json:"customerName"`
	Purpose      *string   `json:"purpose,omitempty"`
	BookedBy     string    `json:"bookedBy,omitempty"`
}

func FromPublicBooking(p booking.Public) PublicBookingResponse {
	return PublicBookingResponse{
		ID:           p.ID,
		Date:         p.Date.Format(schedule.DateLayout),
		RoomID:       int(p.RoomID),
		RoomName:     p.RoomName,
		StartIndex:   p.StartIndex,
		EndIndex:     p.EndIndex,
		CustomerName: p.CustomerName,
		Purpose:      p.Purpose,
		BookedBy:     p.BookedBy,
	}
}

func FromPublicBookings(ps []booking.Public) []PublicBookingResponse {
	out := make([]PublicBookingResponse, len(ps))
	for i, p := range ps {
		out[i] = FromPublicBooking(p)
	}
	return out
}

func fromBuckets(buckets map[string][]booking.Public) map[string][]PublicBookingResponse {
	out := make(map[string][]PublicBookingResponse, len(buckets))
	for key, day := range buckets {
		out[key] = FromPublicBookings(day)
	}
	return out
}

type SlotResponse struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

type DayViewResponse struct {
	Date     string                  `json:"date"`
	Slots    []SlotResponse          `json:"slots"`
	Bookings []PublicBookingResponse `json:"bookings"`
}

func FromDayView(v *queries.DayView) *DayViewResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Index: s.Index, Label: s.Label, Booked: s.Booked}
	}
	return &DayViewResponse{
		Date:     v.Date,
		Slots:    slots,
		Bookings: FromPublicBookings(v.Bookings),
	}
}

type WeekViewResponse struct {
	WeekStart string                             `json:"weekStart"`
	Days      []string                           `json:"days"`
	SlotCount int                                `json:"slotCount"`
	Buckets   map[string][]PublicBookingResponse `json:"buckets"`
	// Grid is the (day, slot) occupancy lookup; empty cells are null.
	Grid [][]*PublicBookingResponse `json:"grid"`
}

func FromWeekView(v *queries.WeekView) *WeekViewResponse {
	grid := make([][]*PublicBookingResponse, len(v.Days))
	for di := range v.Days {
		row := make([]*PublicBookingResponse, v.Occupancy.SlotCount())
		for si := 0; si < v.Occupancy.SlotCount(); si++ {
			if b, ok := v.Occupancy.At(di, si); ok {
				cell := FromPublicBooking(b)
				row[si] = &cell
			}
		}
		grid[di] = row
	}
	return &WeekViewResponse{
		WeekStart: v.WeekStart,
		Days:      v.Days,
		SlotCount: v.Occupancy.SlotCount(),
		Buckets:   fromBuckets(v.Buckets),
		Grid:      grid,
	}
}

type MonthViewResponse struct {
	Year    int                                `json:"year"`
	Month   int                                `json:"month"`
	Buckets map[string][]PublicBookingResponse `json:"buckets"`
}

func FromMonthView(v *queries.MonthView) *MonthViewResponse {
	return &MonthViewResponse{
		Year:    v.Year,
		Month:   int(v.Month),
		Buckets: fromBuckets(v.Buckets),
	}
}
