package response

import (
	"time"

	"conference-booking/internal/data/entity"
)

// BookingIDResponse is the result of both create and change.
type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

type BookingResponse struct {
	ID        int64        `json:"id"`
	Room      RoomResponse `json:"room"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func BookingToResponse(booking *entity.BookingWithRoom) BookingResponse {
	return BookingResponse{
		ID:        booking.ID,
		Room:      RoomToResponse(&booking.Room),
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
}
