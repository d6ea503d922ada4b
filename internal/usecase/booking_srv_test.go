package usecase

import (
	"context"
	"errors"
	"testing"

	"conference-booking/internal/data/entity"
	"conference-booking/internal/data/repository"

	"go.uber.org/zap"
)

func newBookingService(repo *repository.Repository) BookingService {
	return NewBookingService(repo, zap.NewNop())
}

func assertKind(t *testing.T, err error, want ErrorKind) *Error {
	t.Helper()
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected a domain error, got %v", err)
	}
	if domainErr.Kind != want {
		t.Fatalf("expected kind %v, got %v (%v)", want, domainErr.Kind, domainErr)
	}
	return domainErr
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the booking with its room", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return &entity.BookingWithRoom{
						Booking: entity.Booking{Base: entity.Base{ID: 7}, UserID: userID, RoomID: 3},
						Room:    entity.Room{Base: entity.Base{ID: 3}, Name: "101", Capacity: 2, HotelID: 1},
					}, nil
				},
			},
		})

		booking, err := svc.GetBooking(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if booking.ID != 7 {
			t.Errorf("expected booking id 7, got %d", booking.ID)
		}
		if booking.Room.ID != 3 {
			t.Errorf("expected room id 3, got %d", booking.Room.ID)
		}
	})

	t.Run("not found when user has no booking", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Booking: &bookingRepoStub{},
		})

		_, err := svc.GetBooking(ctx, 42)
		assertKind(t, err, KindNotFound)
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the booking when all checks pass", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 3, 1), nil
				},
			},
			Booking: &bookingRepoStub{
				createFn: func(ctx context.Context, userID, roomID int64) (int64, error) {
					return 15, nil
				},
			},
		})

		result, err := svc.CreateBooking(ctx, 42, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.BookingID != 15 {
			t.Errorf("expected booking id 15, got %d", result.BookingID)
		}
	})

	t.Run("not found when user has no ticket", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		assertKind(t, err, KindNotFound)
	})

	t.Run("forbidden for an unpaid ticket", func(t *testing.T) {
		ticket := eligibleTicket()
		ticket.Status = entity.TicketStatusReserved

		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return ticket, nil
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		assertKind(t, err, KindForbidden)
	})

	t.Run("forbidden for a remote ticket", func(t *testing.T) {
		ticket := eligibleTicket()
		ticket.TicketType.IsRemote = true

		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return ticket, nil
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		assertKind(t, err, KindForbidden)
	})

	t.Run("forbidden for a ticket without hotel", func(t *testing.T) {
		ticket := eligibleTicket()
		ticket.TicketType.IncludesHotel = false

		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return ticket, nil
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		assertKind(t, err, KindForbidden)
	})

	t.Run("eligibility is checked before the room", func(t *testing.T) {
		roomLookups := 0

		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					roomLookups++
					return nil, nil
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 999)
		assertKind(t, err, KindNotFound)
		if roomLookups != 0 {
			t.Errorf("room was looked up before eligibility settled")
		}
	})

	t.Run("not found when room does not exist", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{},
		})

		_, err := svc.CreateBooking(ctx, 42, 999)
		assertKind(t, err, KindNotFound)
	})

	t.Run("forbidden with message when room is full", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 2, 2), nil
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		domainErr := assertKind(t, err, KindForbidden)
		if domainErr.Message != RoomFullMessage {
			t.Errorf("expected %q, got %q", RoomFullMessage, domainErr.Message)
		}
	})

	t.Run("forbidden when user already has a booking", func(t *testing.T) {
		creates := 0

		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 3, 1), nil
				},
			},
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return &entity.BookingWithRoom{
						Booking: entity.Booking{Base: entity.Base{ID: 9}, UserID: userID, RoomID: 1},
					}, nil
				},
				createFn: func(ctx context.Context, userID, roomID int64) (int64, error) {
					creates++
					return 0, nil
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		assertKind(t, err, KindForbidden)
		if creates != 0 {
			t.Errorf("insert ran despite an existing booking")
		}
	})

	t.Run("forbidden with message when the insert loses the capacity race", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 3, 2), nil
				},
			},
			Booking: &bookingRepoStub{
				createFn: func(ctx context.Context, userID, roomID int64) (int64, error) {
					return 0, repository.ErrRoomFull
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		domainErr := assertKind(t, err, KindForbidden)
		if domainErr.Message != RoomFullMessage {
			t.Errorf("expected %q, got %q", RoomFullMessage, domainErr.Message)
		}
	})

	t.Run("forbidden when the insert hits the unique user constraint", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 3, 0), nil
				},
			},
			Booking: &bookingRepoStub{
				createFn: func(ctx context.Context, userID, roomID int64) (int64, error) {
					return 0, repository.ErrAlreadyBooked
				},
			},
		})

		_, err := svc.CreateBooking(ctx, 42, 3)
		assertKind(t, err, KindForbidden)
	})
}

func TestChangeBooking(t *testing.T) {
	ctx := context.Background()

	ownBooking := func(userID int64) *entity.BookingWithRoom {
		return &entity.BookingWithRoom{
			Booking: entity.Booking{Base: entity.Base{ID: 9}, UserID: userID, RoomID: 1},
			Room:    entity.Room{Base: entity.Base{ID: 1}, Capacity: 3, HotelID: 1},
		}
	}

	t.Run("moves the booking when all checks pass", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 3, 1), nil
				},
			},
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return ownBooking(userID), nil
				},
			},
		})

		result, err := svc.ChangeBooking(ctx, 42, 5, 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.BookingID != 9 {
			t.Errorf("expected booking id 9, got %d", result.BookingID)
		}
	})

	t.Run("not found when user has no ticket", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{},
		})

		_, err := svc.ChangeBooking(ctx, 42, 5, 9)
		assertKind(t, err, KindNotFound)
	})

	t.Run("forbidden when user has no booking", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Booking: &bookingRepoStub{},
		})

		_, err := svc.ChangeBooking(ctx, 42, 5, 9)
		assertKind(t, err, KindForbidden)
	})

	t.Run("ownership is checked before the room", func(t *testing.T) {
		roomLookups := 0

		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					roomLookups++
					return nil, nil
				},
			},
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return ownBooking(userID), nil
				},
			},
		})

		// Claiming someone else's booking id is forbidden even though the
		// target room does not exist.
		_, err := svc.ChangeBooking(ctx, 42, 999, 12345)
		assertKind(t, err, KindForbidden)
		if roomLookups != 0 {
			t.Errorf("room was looked up before ownership settled")
		}
	})

	t.Run("not found when target room does not exist", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{},
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return ownBooking(userID), nil
				},
			},
		})

		_, err := svc.ChangeBooking(ctx, 42, 999, 9)
		assertKind(t, err, KindNotFound)
	})

	t.Run("forbidden with message when target room is full", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 2, 2), nil
				},
			},
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return ownBooking(userID), nil
				},
			},
		})

		_, err := svc.ChangeBooking(ctx, 42, 5, 9)
		domainErr := assertKind(t, err, KindForbidden)
		if domainErr.Message != RoomFullMessage {
			t.Errorf("expected %q, got %q", RoomFullMessage, domainErr.Message)
		}
	})

	t.Run("forbidden with message when the update loses the capacity race", func(t *testing.T) {
		svc := newBookingService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Room: &roomRepoStub{
				findByIDWithBookingsFn: func(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
					return roomWithOccupants(roomID, 3, 2), nil
				},
			},
			Booking: &bookingRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
					return ownBooking(userID), nil
				},
				changeRoomFn: func(ctx context.Context, bookingID, roomID int64) error {
					return repository.ErrRoomFull
				},
			},
		})

		_, err := svc.ChangeBooking(ctx, 42, 5, 9)
		domainErr := assertKind(t, err, KindForbidden)
		if domainErr.Message != RoomFullMessage {
			t.Errorf("expected %q, got %q", RoomFullMessage, domainErr.Message)
		}
	})
}
