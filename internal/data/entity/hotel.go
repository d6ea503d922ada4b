package entity

type Hotel struct {
	Base
	Name  string `db:"name"`
	Image string `db:"image"`
}

type Room struct {
	Base
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int64  `db:"hotel_id"`
}

// RoomWithBookings carries the room together with its current occupants.
// Capacity decisions are always made against a fresh copy of this.
type RoomWithBookings struct {
	Room
	Bookings []Booking
}

// HasSpace reports whether the room can still admit one more booking.
// len == capacity is the "full" boundary.
func (r *RoomWithBookings) HasSpace() bool {
	return len(r.Bookings) < r.Capacity
}
