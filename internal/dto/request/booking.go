package request

// BookingRequest is shared by create and change: both take only the target
// room. The booking id, when relevant, travels in the path.
type BookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}
