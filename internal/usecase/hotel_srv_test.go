package usecase

import (
	"context"
	"testing"

	"conference-booking/internal/data/entity"
	"conference-booking/internal/data/repository"

	"go.uber.org/zap"
)

func newHotelService(repo *repository.Repository) HotelService {
	return NewHotelService(repo, zap.NewNop())
}

func TestListHotels(t *testing.T) {
	ctx := context.Background()

	t.Run("lists hotels for an eligible ticket", func(t *testing.T) {
		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Hotel: &hotelRepoStub{
				findAllFn: func(ctx context.Context) ([]*entity.Hotel, error) {
					return []*entity.Hotel{
						{Base: entity.Base{ID: 1}, Name: "Driven Resort", Image: "https://example.com/a.jpg"},
						{Base: entity.Base{ID: 2}, Name: "Palms Hotel", Image: "https://example.com/b.jpg"},
					}, nil
				},
			},
		})

		hotels, err := svc.ListHotels(ctx, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hotels) != 2 {
			t.Fatalf("expected 2 hotels, got %d", len(hotels))
		}
		if hotels[0].Name != "Driven Resort" {
			t.Errorf("unexpected hotel name %q", hotels[0].Name)
		}
	})

	t.Run("not found when user has no ticket", func(t *testing.T) {
		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{},
		})

		_, err := svc.ListHotels(ctx, 42)
		assertKind(t, err, KindNotFound)
	})

	t.Run("payment required for an unpaid ticket", func(t *testing.T) {
		ticket := eligibleTicket()
		ticket.Status = entity.TicketStatusReserved

		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return ticket, nil
				},
			},
		})

		_, err := svc.ListHotels(ctx, 42)
		assertKind(t, err, KindPaymentRequired)
	})

	t.Run("payment required for a remote ticket", func(t *testing.T) {
		ticket := eligibleTicket()
		ticket.TicketType.IsRemote = true

		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return ticket, nil
				},
			},
		})

		_, err := svc.ListHotels(ctx, 42)
		assertKind(t, err, KindPaymentRequired)
	})
}

func TestGetHotelWithRooms(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the hotel with its rooms", func(t *testing.T) {
		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Hotel: &hotelRepoStub{
				findByIDFn: func(ctx context.Context, id int64) (*entity.Hotel, error) {
					return &entity.Hotel{Base: entity.Base{ID: id}, Name: "Driven Resort"}, nil
				},
				findRoomsByHotelIDFn: func(ctx context.Context, hotelID int64) ([]*entity.Room, error) {
					return []*entity.Room{
						{Base: entity.Base{ID: 10}, Name: "101", Capacity: 3, HotelID: hotelID},
						{Base: entity.Base{ID: 11}, Name: "102", Capacity: 2, HotelID: hotelID},
					}, nil
				},
			},
		})

		hotel, err := svc.GetHotelWithRooms(ctx, 42, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(hotel.Rooms) != 2 {
			t.Fatalf("expected 2 rooms, got %d", len(hotel.Rooms))
		}
	})

	t.Run("not found when hotel does not exist", func(t *testing.T) {
		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return eligibleTicket(), nil
				},
			},
			Hotel: &hotelRepoStub{},
		})

		_, err := svc.GetHotelWithRooms(ctx, 42, 999)
		assertKind(t, err, KindNotFound)
	})

	t.Run("payment required before the hotel is looked up", func(t *testing.T) {
		hotelLookups := 0
		ticket := eligibleTicket()
		ticket.Status = entity.TicketStatusReserved

		svc := newHotelService(&repository.Repository{
			Ticket: &ticketRepoStub{
				findByUserIDFn: func(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
					return ticket, nil
				},
			},
			Hotel: &hotelRepoStub{
				findByIDFn: func(ctx context.Context, id int64) (*entity.Hotel, error) {
					hotelLookups++
					return nil, nil
				},
			},
		})

		_, err := svc.GetHotelWithRooms(ctx, 42, 1)
		assertKind(t, err, KindPaymentRequired)
		if hotelLookups != 0 {
			t.Errorf("hotel was looked up before access settled")
		}
	})
}
