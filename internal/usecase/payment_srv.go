package usecase

import (
	"context"
	"time"

	"conference-booking/internal/data/entity"
	"conference-booking/internal/data/repository"
	"conference-booking/internal/dto/request"
	"conference-booking/internal/dto/response"

	"go.uber.org/zap"
)

type PaymentService interface {
	GetPaymentInfo(ctx context.Context, userID, ticketID int64) (*response.PaymentResponse, error)
	ProcessPayment(ctx context.Context, userID int64, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) GetPaymentInfo(ctx context.Context, userID, ticketID int64) (*response.PaymentResponse, error) {
	ownerID, err := s.repo.Ticket.FindOwnerUserID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, NotFoundError()
	}
	if ownerID != userID {
		return nil, UnauthorizedError()
	}

	payment, err := s.repo.Payment.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, NotFoundError()
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// ProcessPayment records the card payment for a ticket and marks it PAID.
// The card is stored masked, never charged: no gateway sits behind this.
func (s *paymentService) ProcessPayment(ctx context.Context, userID int64, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, NotFoundError()
	}

	ownerID, err := s.repo.Ticket.FindOwnerUserID(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}
	if ownerID != userID {
		return nil, UnauthorizedError()
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		TicketID:       req.TicketID,
		Value:          ticket.TicketType.Price,
		CardIssuer:     req.CardData.Issuer,
		CardLastDigits: lastDigits(req.CardData.Number),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.repo.Ticket.UpdateStatus(ctx, req.TicketID, entity.TicketStatusPaid); err != nil {
		s.log.Error("Failed to mark ticket paid",
			zap.Error(err),
			zap.Int64("ticket_id", req.TicketID),
		)
		return nil, err
	}

	s.log.Info("Payment processed",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("ticket_id", req.TicketID),
		zap.Int64("value", payment.Value),
		zap.String("card_issuer", payment.CardIssuer),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// lastDigits masks a card number down to its last four digits.
func lastDigits(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
