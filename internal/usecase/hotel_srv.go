package usecase

import (
	"context"

	"conference-booking/internal/data/repository"
	"conference-booking/internal/dto/response"

	"go.uber.org/zap"
)

type HotelService interface {
	ListHotels(ctx context.Context, userID int64) ([]response.HotelResponse, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*response.HotelWithRoomsResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) ListHotels(ctx context.Context, userID int64) ([]response.HotelResponse, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		resp[i] = response.HotelToResponse(hotel)
	}

	return resp, nil
}

func (s *hotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*response.HotelWithRoomsResponse, error) {
	if err := s.checkHotelAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, NotFoundError()
	}

	rooms, err := s.repo.Hotel.FindRoomsByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	resp := response.HotelWithRoomsToResponse(hotel, rooms)
	return &resp, nil
}

// checkHotelAccess gates the hotel listing surface. Unlike the booking
// guard, an ineligible ticket here is a payment problem, not a forbidden
// one: the client is told to finish paying.
func (s *hotelService) checkHotelAccess(ctx context.Context, userID int64) error {
	ticket, err := s.repo.Ticket.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return NotFoundError()
	}
	if !ticket.HotelEligible() {
		s.log.Info("Hotel access denied for ticket",
			zap.Int64("user_id", userID),
			zap.String("status", string(ticket.Status)),
		)
		return PaymentRequiredError()
	}
	return nil
}
