package entity

// Booking reserves one spot in a Room for a User. At most one booking
// exists per user at any time.
type Booking struct {
	Base
	UserID int64 `db:"user_id"`
	RoomID int64 `db:"room_id"`
}

type BookingWithRoom struct {
	Booking
	Room Room
}
