package repository

import (
	"context"
	"fmt"

	"conference-booking/internal/data/entity"
	"conference-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindAllTypes(ctx context.Context) ([]*entity.TicketType, error)
	FindTypeByID(ctx context.Context, id int64) (*entity.TicketType, error)
	FindByID(ctx context.Context, id int64) (*entity.TicketWithType, error)
	FindByUserID(ctx context.Context, userID int64) (*entity.TicketWithType, error)
	FindOwnerUserID(ctx context.Context, ticketID int64) (int64, error)
	UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketWithTypeColumns = `
	t.id, t.ticket_type_id, t.enrollment_id, t.status, t.created_at, t.updated_at,
	tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
`

func scanTicketWithType(row pgx.Row) (*entity.TicketWithType, error) {
	var ticket entity.TicketWithType
	err := row.Scan(
		&ticket.ID,
		&ticket.TicketTypeID,
		&ticket.EnrollmentID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.Price,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
		&ticket.TicketType.CreatedAt,
		&ticket.TicketType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (ticket_type_id, enrollment_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		ticket.TicketTypeID,
		ticket.EnrollmentID,
		ticket.Status,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	).Scan(&ticket.ID)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.Int64("enrollment_id", ticket.EnrollmentID),
			zap.Int64("ticket_type_id", ticket.TicketTypeID),
		)
		return fmt.Errorf("create ticket for enrollment %d: %w", ticket.EnrollmentID, err)
	}

	return nil
}

func (r *ticketRepository) FindAllTypes(ctx context.Context) ([]*entity.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find ticket types", zap.Error(err))
		return nil, fmt.Errorf("find ticket types: %w", err)
	}
	defer rows.Close()

	var types []*entity.TicketType
	for rows.Next() {
		var ticketType entity.TicketType
		err := rows.Scan(
			&ticketType.ID,
			&ticketType.Name,
			&ticketType.Price,
			&ticketType.IsRemote,
			&ticketType.IncludesHotel,
			&ticketType.CreatedAt,
			&ticketType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket type row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket type row: %w", err)
		}
		types = append(types, &ticketType)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate ticket type rows", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket type rows: %w", err)
	}

	return types, nil
}

func (r *ticketRepository) FindTypeByID(ctx context.Context, id int64) (*entity.TicketType, error) {
	query := `
		SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at
		FROM ticket_types
		WHERE id = $1
	`

	var ticketType entity.TicketType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticketType.ID,
		&ticketType.Name,
		&ticketType.Price,
		&ticketType.IsRemote,
		&ticketType.IncludesHotel,
		&ticketType.CreatedAt,
		&ticketType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket type by ID",
			zap.Error(err),
			zap.Int64("ticket_type_id", id),
		)
		return nil, fmt.Errorf("find ticket type by ID %d: %w", id, err)
	}

	return &ticketType, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.TicketWithType, error) {
	query := `
		SELECT ` + ticketWithTypeColumns + `
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.id = $1
	`

	ticket, err := scanTicketWithType(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket by ID %d: %w", id, err)
	}

	return ticket, nil
}

// FindByUserID resolves the user's ticket through their enrollment.
func (r *ticketRepository) FindByUserID(ctx context.Context, userID int64) (*entity.TicketWithType, error) {
	query := `
		SELECT ` + ticketWithTypeColumns + `
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE e.user_id = $1
	`

	ticket, err := scanTicketWithType(r.db.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find ticket by user ID %d: %w", userID, err)
	}

	return ticket, nil
}

// FindOwnerUserID returns the user id behind a ticket's enrollment, or 0
// when the ticket does not exist.
func (r *ticketRepository) FindOwnerUserID(ctx context.Context, ticketID int64) (int64, error) {
	query := `
		SELECT e.user_id
		FROM tickets t
		JOIN enrollments e ON e.id = t.enrollment_id
		WHERE t.id = $1
	`

	var userID int64
	err := r.db.QueryRow(ctx, query, ticketID).Scan(&userID)

	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket owner",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
		)
		return 0, fmt.Errorf("find owner of ticket %d: %w", ticketID, err)
	}

	return userID, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) error {
	query := `UPDATE tickets SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, ticketID, status)
	if err != nil {
		r.log.Error("Failed to update ticket status",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update ticket %d status to %s: %w", ticketID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %d not found", ticketID)
	}

	return nil
}
