package usecase

import (
	"context"
	"errors"

	"conference-booking/internal/data/repository"
	"conference-booking/internal/dto/response"

	"go.uber.org/zap"
)

// RoomFullMessage is the one rule violation that carries a descriptive
// message to the client.
const RoomFullMessage = "The room is fully booked and currently unavailable."

type BookingService interface {
	// GetBooking returns the caller's booking with its room. A booking's
	// existence implies it was validly created, so no eligibility re-check.
	GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error)

	// CreateBooking places the caller into a room, checking in order: ticket
	// eligibility, room existence, room capacity, no prior booking.
	CreateBooking(ctx context.Context, userID, roomID int64) (*response.BookingIDResponse, error)

	// ChangeBooking moves the caller's booking into another room, checking in
	// order: ticket eligibility, booking ownership, room existence, room
	// capacity. Ownership comes strictly before the room checks.
	ChangeBooking(ctx context.Context, userID, roomID, bookingID int64) (*response.BookingIDResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NotFoundError()
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, roomID int64) (*response.BookingIDResponse, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return nil, err
	}

	// Room existence and capacity are evaluated fresh, immediately before
	// the mutation; the guarded insert below remains the authority.
	room, err := s.repo.Room.FindByIDWithBookings(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, NotFoundError()
	}
	if !room.HasSpace() {
		s.log.Info("Room full on create",
			zap.Int64("user_id", userID),
			zap.Int64("room_id", roomID),
		)
		return nil, ForbiddenError(RoomFullMessage)
	}

	existing, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Info("User already has a booking",
			zap.Int64("user_id", userID),
			zap.Int64("booking_id", existing.ID),
		)
		return nil, ForbiddenError()
	}

	bookingID, err := s.repo.Booking.Create(ctx, userID, roomID)
	if err != nil {
		// The atomic guard can still lose the race the fast path won.
		if errors.Is(err, repository.ErrRoomFull) {
			return nil, ForbiddenError(RoomFullMessage)
		}
		if errors.Is(err, repository.ErrAlreadyBooked) {
			return nil, ForbiddenError()
		}
		return nil, err
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", roomID),
	)

	return &response.BookingIDResponse{BookingID: bookingID}, nil
}

func (s *bookingService) ChangeBooking(ctx context.Context, userID, roomID, bookingID int64) (*response.BookingIDResponse, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return nil, err
	}

	// Ownership first: a mismatch is Forbidden even when the target room
	// does not exist, and it is never reported as NotFound so non-owners
	// cannot probe for booking existence.
	existing, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.ID != bookingID {
		s.log.Info("Booking ownership check failed",
			zap.Int64("user_id", userID),
			zap.Int64("claimed_booking_id", bookingID),
		)
		return nil, ForbiddenError()
	}

	room, err := s.repo.Room.FindByIDWithBookings(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, NotFoundError()
	}
	if !room.HasSpace() {
		s.log.Info("Room full on change",
			zap.Int64("user_id", userID),
			zap.Int64("room_id", roomID),
		)
		return nil, ForbiddenError(RoomFullMessage)
	}

	// Update by primary key, not by re-deriving from userID: ownership is
	// already confirmed and the key cannot be tampered past this point.
	if err := s.repo.Booking.ChangeRoom(ctx, bookingID, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomFull) {
			return nil, ForbiddenError(RoomFullMessage)
		}
		return nil, err
	}

	s.log.Info("Booking moved",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", roomID),
	)

	return &response.BookingIDResponse{BookingID: bookingID}, nil
}

// checkTicketEligibility gates every booking mutation: the caller needs a
// paid, in-person ticket that includes hotel access. Which condition failed
// is deliberately not surfaced.
func (s *bookingService) checkTicketEligibility(ctx context.Context, userID int64) error {
	ticket, err := s.repo.Ticket.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return NotFoundError()
	}
	if !ticket.HotelEligible() {
		s.log.Info("Ticket not eligible for hotel booking",
			zap.Int64("user_id", userID),
			zap.String("status", string(ticket.Status)),
		)
		return ForbiddenError()
	}
	return nil
}
