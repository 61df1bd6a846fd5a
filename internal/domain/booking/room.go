package booking

import "errors"

var ErrUnknownRoom = errors.New("unknown room")

// RoomID identifies one of the fixed set of bookable rooms.
type RoomID int

const (
	RoomConferenceA RoomID = 1
	RoomConferenceB RoomID = 2
	RoomMeetingA    RoomID = 3
	RoomMeetingB    RoomID = 4
)

var roomNames = map[RoomID]string{
	RoomConferenceA: "Conference A",
	RoomConferenceB: "Conference B",
	RoomMeetingA:    "Meeting A",
	RoomMeetingB:    "Meeting B",
}

func (r RoomID) IsValid() bool {
	_, ok := roomNames[r]
	return ok
}

func (r RoomID) Name() string {
	if name, ok := roomNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Rooms returns the enumerated room set in id order.
func Rooms() []RoomID {
	return []RoomID{RoomConferenceA, RoomConferenceB, RoomMeetingA, RoomMeetingB}
}
