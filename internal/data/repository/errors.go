package repository

import "errors"

// Sentinel errors for constraint-level outcomes of booking mutations. The
// services translate these into domain failures.
var (
	// ErrRoomFull: the capacity-guarded mutation admitted no row because the
	// room is at capacity.
	ErrRoomFull = errors.New("room is at capacity")

	// ErrAlreadyBooked: the unique index on bookings.user_id rejected a
	// second booking for the same user.
	ErrAlreadyBooked = errors.New("user already has a booking")
)
