package repository

import (
	"context"
	"fmt"

	"conference-booking/internal/data/entity"
	"conference-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HotelRepository interface {
	FindAll(ctx context.Context) ([]*entity.Hotel, error)
	FindByID(ctx context.Context, id int64) (*entity.Hotel, error)
	FindRoomsByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error)
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find hotels", zap.Error(err))
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		var hotel entity.Hotel
		err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Image,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate hotel rows", zap.Error(err))
		return nil, fmt.Errorf("iterate hotel rows: %w", err)
	}

	return hotels, nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	query := `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	var hotel entity.Hotel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Image,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.Int64("hotel_id", id),
		)
		return nil, fmt.Errorf("find hotel by ID %d: %w", id, err)
	}

	return &hotel, nil
}

func (r *hotelRepository) FindRoomsByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error) {
	query := `
		SELECT id, name, capacity, hotel_id, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel ID",
			zap.Error(err),
			zap.Int64("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("find rooms by hotel ID %d: %w", hotelID, err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.HotelID,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate room rows",
			zap.Error(err),
			zap.Int64("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("iterate rooms of hotel %d: %w", hotelID, err)
	}

	return rooms, nil
}
