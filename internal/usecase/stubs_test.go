package usecase

import (
	"context"

	"conference-booking/internal/data/entity"
)

// Repository stubs backed by function fields. A test sets only the calls it
// expects; anything else returns the zero value.

type ticketRepoStub struct {
	createFn          func(ctx context.Context, ticket *entity.Ticket) error
	findAllTypesFn    func(ctx context.Context) ([]*entity.TicketType, error)
	findTypeByIDFn    func(ctx context.Context, id int64) (*entity.TicketType, error)
	findByIDFn        func(ctx context.Context, id int64) (*entity.TicketWithType, error)
	findByUserIDFn    func(ctx context.Context, userID int64) (*entity.TicketWithType, error)
	findOwnerUserIDFn func(ctx context.Context, ticketID int64) (int64, error)
	updateStatusFn    func(ctx context.Context, ticketID int64, status entity.TicketStatus) error
}

func (s *ticketRepoStub) Create(ctx context.Context, ticket *entity.Ticket) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, ticket)
}

func (s *ticketRepoStub) FindAllTypes(ctx context.Context) ([]*entity.TicketType, error) {
	if s.findAllTypesFn == nil {
		return nil, nil
	}
	return s.findAllTypesFn(ctx)
}

func (s *ticketRepoStub) FindTypeByID(ctx context.Context, id int64) (*entity.TicketType, error) {
	if s.findTypeByIDFn == nil {
		return nil, nil
	}
	return s.findTypeByIDFn(ctx, id)
}

func (s *ticketRepoStub) FindByID(ctx context.Context, id int64) (*entity.TicketWithType, error) {
	if s.findByIDFn == nil {
		return nil, nil
	}
	return s.findByIDFn(ctx, id)
}

func (s *ticketRepoStub) FindByUserID(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
	if s.findByUserIDFn == nil {
		return nil, nil
	}
	return s.findByUserIDFn(ctx, userID)
}

func (s *ticketRepoStub) FindOwnerUserID(ctx context.Context, ticketID int64) (int64, error) {
	if s.findOwnerUserIDFn == nil {
		return 0, nil
	}
	return s.findOwnerUserIDFn(ctx, ticketID)
}

func (s *ticketRepoStub) UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) error {
	if s.updateStatusFn == nil {
		return nil
	}
	return s.updateStatusFn(ctx, ticketID, status)
}

type roomRepoStub struct {
	findByIDWithBookingsFn func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error)
}

func (s *roomRepoStub) FindByIDWithBookings(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
	if s.findByIDWithBookingsFn == nil {
		return nil, nil
	}
	return s.findByIDWithBookingsFn(ctx, roomID)
}

type bookingRepoStub struct {
	findByUserIDFn func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error)
	createFn       func(ctx context.Context, userID, roomID int64) (int64, error)
	changeRoomFn   func(ctx context.Context, bookingID, roomID int64) error
}

func (s *bookingRepoStub) FindByUserID(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
	if s.findByUserIDFn == nil {
		return nil, nil
	}
	return s.findByUserIDFn(ctx, userID)
}

func (s *bookingRepoStub) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, userID, roomID)
}

func (s *bookingRepoStub) ChangeRoom(ctx context.Context, bookingID, roomID int64) error {
	if s.changeRoomFn == nil {
		return nil
	}
	return s.changeRoomFn(ctx, bookingID, roomID)
}

type hotelRepoStub struct {
	findAllFn            func(ctx context.Context) ([]*entity.Hotel, error)
	findByIDFn           func(ctx context.Context, id int64) (*entity.Hotel, error)
	findRoomsByHotelIDFn func(ctx context.Context, hotelID int64) ([]*entity.Room, error)
}

func (s *hotelRepoStub) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	if s.findAllFn == nil {
		return nil, nil
	}
	return s.findAllFn(ctx)
}

func (s *hotelRepoStub) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	if s.findByIDFn == nil {
		return nil, nil
	}
	return s.findByIDFn(ctx, id)
}

func (s *hotelRepoStub) FindRoomsByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error) {
	if s.findRoomsByHotelIDFn == nil {
		return nil, nil
	}
	return s.findRoomsByHotelIDFn(ctx, hotelID)
}

type paymentRepoStub struct {
	createFn         func(ctx context.Context, payment *entity.Payment) error
	findByTicketIDFn func(ctx context.Context, ticketID int64) (*entity.Payment, error)
}

func (s *paymentRepoStub) Create(ctx context.Context, payment *entity.Payment) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, payment)
}

func (s *paymentRepoStub) FindByTicketID(ctx context.Context, ticketID int64) (*entity.Payment, error) {
	if s.findByTicketIDFn == nil {
		return nil, nil
	}
	return s.findByTicketIDFn(ctx, ticketID)
}

// Fixtures.

func eligibleTicket() *entity.TicketWithType {
	return &entity.TicketWithType{
		Ticket: entity.Ticket{
			Base:   entity.Base{ID: 1},
			Status: entity.TicketStatusPaid,
		},
		TicketType: entity.TicketType{
			Base:          entity.Base{ID: 1},
			Name:          "In-person with hotel",
			Price:         60000,
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

func roomWithOccupants(id int64, capacity, occupants int) *entity.RoomWithBookings {
	room := &entity.RoomWithBookings{
		Room: entity.Room{
			Base:     entity.Base{ID: id},
			Name:     "101",
			Capacity: capacity,
			HotelID:  1,
		},
	}
	for i := 0; i < occupants; i++ {
		room.Bookings = append(room.Bookings, entity.Booking{
			Base:   entity.Base{ID: int64(100 + i)},
			UserID: int64(200 + i),
			RoomID: id,
		})
	}
	return room
}
