package repository

import (
	"context"
	"fmt"

	"conference-booking/internal/data/entity"
	"conference-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByTicketID(ctx context.Context, ticketID int64) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		payment.TicketID,
		payment.Value,
		payment.CardIssuer,
		payment.CardLastDigits,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Scan(&payment.ID)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("ticket_id", payment.TicketID),
		)
		return fmt.Errorf("create payment for ticket %d: %w", payment.TicketID, err)
	}

	return nil
}

func (r *paymentRepository) FindByTicketID(ctx context.Context, ticketID int64) (*entity.Payment, error) {
	query := `
		SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at
		FROM payments
		WHERE ticket_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, ticketID).Scan(
		&payment.ID,
		&payment.TicketID,
		&payment.Value,
		&payment.CardIssuer,
		&payment.CardLastDigits,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ticket ID",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
		)
		return nil, fmt.Errorf("find payment by ticket ID %d: %w", ticketID, err)
	}

	return &payment, nil
}
