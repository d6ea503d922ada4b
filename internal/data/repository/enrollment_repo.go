package repository

import (
	"context"
	"fmt"

	"conference-booking/internal/data/entity"
	"conference-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EnrollmentRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*entity.Enrollment, error)
	Upsert(ctx context.Context, enrollment *entity.Enrollment) error
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

func (r *enrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Enrollment, error) {
	query := `
		SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at
		FROM enrollments
		WHERE user_id = $1
	`

	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CPF,
		&enrollment.Birthday,
		&enrollment.Phone,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find enrollment by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find enrollment by user ID %d: %w", userID, err)
	}

	return &enrollment, nil
}

func (r *enrollmentRepository) Upsert(ctx context.Context, enrollment *entity.Enrollment) error {
	// One enrollment per user; a repeated POST updates it in place.
	query := `
		INSERT INTO enrollments (user_id, name, cpf, birthday, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
		    cpf = EXCLUDED.cpf,
		    birthday = EXCLUDED.birthday,
		    phone = EXCLUDED.phone,
		    updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.UserID,
		enrollment.Name,
		enrollment.CPF,
		enrollment.Birthday,
		enrollment.Phone,
		enrollment.CreatedAt,
		enrollment.UpdatedAt,
	).Scan(&enrollment.ID)

	if err != nil {
		r.log.Error("Failed to upsert enrollment",
			zap.Error(err),
			zap.Int64("user_id", enrollment.UserID),
		)
		return fmt.Errorf("upsert enrollment for user %d: %w", enrollment.UserID, err)
	}

	return nil
}
