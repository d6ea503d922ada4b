package repository

import (
	"context"
	"errors"
	"fmt"

	"conference-booking/internal/data/entity"
	"conference-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type BookingRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*entity.BookingWithRoom, error)
	Create(ctx context.Context, userID, roomID int64) (int64, error)
	ChangeRoom(ctx context.Context, bookingID, roomID int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) (*entity.BookingWithRoom, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`

	var booking entity.BookingWithRoom
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.Room.ID,
		&booking.Room.Name,
		&booking.Room.Capacity,
		&booking.Room.HotelID,
		&booking.Room.CreatedAt,
		&booking.Room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	return &booking, nil
}

// Create inserts a booking only while the room still has space. The capacity
// comparison and the insert run as one statement, so two concurrent creates
// cannot both take the last spot. The unique index on user_id backstops the
// one-booking-per-user rule.
func (r *bookingRepository) Create(ctx context.Context, userID, roomID int64) (int64, error) {
	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		SELECT $1, $2, NOW(), NOW()
		WHERE (SELECT COUNT(*) FROM bookings WHERE room_id = $2)
		    < (SELECT capacity FROM rooms WHERE id = $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, userID, roomID).Scan(&id)

	if err == pgx.ErrNoRows {
		return 0, ErrRoomFull
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return 0, ErrAlreadyBooked
	}

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("create booking for user %d in room %d: %w", userID, roomID, err)
	}

	r.log.Info("Booking created",
		zap.Int64("booking_id", id),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", roomID),
	)

	return id, nil
}

// ChangeRoom moves the booking identified by its primary key into another
// room, guarded by the same atomic capacity check. The occupant count
// excludes the booking being moved, so a move within the same room is legal.
func (r *bookingRepository) ChangeRoom(ctx context.Context, bookingID, roomID int64) error {
	query := `
		UPDATE bookings
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1
		  AND (SELECT COUNT(*) FROM bookings WHERE room_id = $2 AND id <> $1)
		    < (SELECT capacity FROM rooms WHERE id = $2)
	`

	result, err := r.db.Exec(ctx, query, bookingID, roomID)
	if err != nil {
		r.log.Error("Failed to change booking room",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int64("room_id", roomID),
		)
		return fmt.Errorf("change booking %d to room %d: %w", bookingID, roomID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrRoomFull
	}

	r.log.Info("Booking moved",
		zap.Int64("booking_id", bookingID),
		zap.Int64("room_id", roomID),
	)

	return nil
}
