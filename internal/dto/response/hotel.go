package response

import (
	"conference-booking/internal/data/entity"
)

type HotelResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
}

type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"rooms"`
}

func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:    hotel.ID,
		Name:  hotel.Name,
		Image: hotel.Image,
	}
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
		HotelID:  room.HotelID,
	}
}

func HotelWithRoomsToResponse(hotel *entity.Hotel, rooms []*entity.Room) HotelWithRoomsResponse {
	resp := HotelWithRoomsResponse{
		HotelResponse: HotelToResponse(hotel),
		Rooms:         make([]RoomResponse, len(rooms)),
	}
	for i, room := range rooms {
		resp.Rooms[i] = RoomToResponse(room)
	}
	return resp
}
