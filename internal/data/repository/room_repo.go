package repository

import (
	"context"
	"fmt"
	"time"

	"conference-booking/internal/data/entity"
	"conference-booking/pkg/database"

	"go.uber.org/zap"
)

type RoomRepository interface {
	FindByIDWithBookings(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

// FindByIDWithBookings loads the room and its current occupants in one
// query. Occupancy is never cached; callers re-read at decision time.
// Returns nil when the room does not exist.
func (r *roomRepository) FindByIDWithBookings(ctx context.Context, roomID int64) (*entity.RoomWithBookings, error) {
	query := `
		SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at,
		       b.id, b.user_id, b.room_id, b.created_at, b.updated_at
		FROM rooms r
		LEFT JOIN bookings b ON b.room_id = r.id
		WHERE r.id = $1
		ORDER BY b.id
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find room with bookings",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("find room %d with bookings: %w", roomID, err)
	}
	defer rows.Close()

	var room *entity.RoomWithBookings
	for rows.Next() {
		var (
			current          entity.Room
			bookingID        *int64
			bookingUserID    *int64
			bookingRoomID    *int64
			bookingCreatedAt *time.Time
			bookingUpdatedAt *time.Time
		)

		err := rows.Scan(
			&current.ID,
			&current.Name,
			&current.Capacity,
			&current.HotelID,
			&current.CreatedAt,
			&current.UpdatedAt,
			&bookingID,
			&bookingUserID,
			&bookingRoomID,
			&bookingCreatedAt,
			&bookingUpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}

		if room == nil {
			room = &entity.RoomWithBookings{Room: current}
		}

		// LEFT JOIN: booking columns are NULL for an empty room
		if bookingID != nil {
			booking := entity.Booking{
				UserID: *bookingUserID,
				RoomID: *bookingRoomID,
			}
			booking.ID = *bookingID
			if bookingCreatedAt != nil {
				booking.CreatedAt = *bookingCreatedAt
			}
			if bookingUpdatedAt != nil {
				booking.UpdatedAt = *bookingUpdatedAt
			}
			room.Bookings = append(room.Bookings, booking)
		}
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate room rows",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("iterate room %d rows: %w", roomID, err)
	}

	return room, nil
}
