package request

import (
	"roombook/internal/domain/booking"
	"roombook/internal/domain/schedule"
)

// BookingRequest is the wire shape of a proposed booking, for both create
// and full-field update. Field presence is checked by the domain validator,
// not by binding tags, so rejections carry the validator's deterministic
// reason order; slot indices are pointers to tell "absent" from slot zero.
type BookingRequest struct {
	Date         string `json:"date"`
	RoomID       int    `json:"roomId"`
	StartIndex   *int   `json:"startIndex"`
	EndIndex     *int   `json:"endIndex"`
	CustomerName string `json:"customerName"`
	Purpose      string `json:"purpose"`
}

// ToInput converts the request to the validator's input. An unparsable date
// becomes the zero time, which the validator reports as missing fields.
func (r BookingRequest) ToInput(grid schedule.Grid) booking.Input {
	in := booking.Input{
		RoomID:       booking.RoomID(r.RoomID),
		StartIndex:   r.StartIndex,
		EndIndex:     r.EndIndex,
		CustomerName: r.CustomerName,
		Purpose:      r.Purpose,
	}
	if r.Date != "" {
		if date, err := grid.ParseDate(r.Date); err == nil {
			in.Date = date
		}
	}
	return in
}
