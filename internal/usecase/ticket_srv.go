package usecase

import (
	"context"
	"time"

	"conference-booking/internal/data/entity"
	"conference-booking/internal/data/repository"
	"conference-booking/internal/dto/response"

	"go.uber.org/zap"
)

type TicketService interface {
	GetTicketTypes(ctx context.Context) ([]response.TicketTypeResponse, error)
	GetUserTicket(ctx context.Context, userID int64) (*response.TicketResponse, error)
	CreateTicket(ctx context.Context, userID, ticketTypeID int64) (*response.TicketResponse, error)
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTicketTypes(ctx context.Context) ([]response.TicketTypeResponse, error) {
	types, err := s.repo.Ticket.FindAllTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.TicketTypeResponse, len(types))
	for i, ticketType := range types {
		resp[i] = response.TicketTypeToResponse(ticketType)
	}

	return resp, nil
}

func (s *ticketService) GetUserTicket(ctx context.Context, userID int64) (*response.TicketResponse, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, NotFoundError()
	}

	ticket, err := s.repo.Ticket.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, NotFoundError()
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// CreateTicket reserves a ticket of the given type for the caller's
// enrollment. Payment happens later and flips the status to PAID.
func (s *ticketService) CreateTicket(ctx context.Context, userID, ticketTypeID int64) (*response.TicketResponse, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, NotFoundError()
	}

	ticketType, err := s.repo.Ticket.FindTypeByID(ctx, ticketTypeID)
	if err != nil {
		return nil, err
	}
	if ticketType == nil {
		return nil, NotFoundError()
	}

	now := time.Now()
	ticket := &entity.Ticket{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		TicketTypeID: ticketTypeID,
		EnrollmentID: enrollment.ID,
		Status:       entity.TicketStatusReserved,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.log.Info("Ticket reserved",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("user_id", userID),
		zap.Int64("ticket_type_id", ticketTypeID),
	)

	resp := response.TicketToResponse(&entity.TicketWithType{
		Ticket:     *ticket,
		TicketType: *ticketType,
	})
	return &resp, nil
}
