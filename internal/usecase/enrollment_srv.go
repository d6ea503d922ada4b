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

type EnrollmentService interface {
	GetEnrollment(ctx context.Context, userID int64) (*response.EnrollmentResponse, error)
	UpsertEnrollment(ctx context.Context, userID int64, req *request.EnrollmentRequest) (*response.EnrollmentResponse, error)
}

type enrollmentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEnrollmentService(repo *repository.Repository, log *zap.Logger) EnrollmentService {
	return &enrollmentService{
		repo: repo,
		log:  log.With(zap.String("service", "enrollment")),
	}
}

func (s *enrollmentService) GetEnrollment(ctx context.Context, userID int64) (*response.EnrollmentResponse, error) {
	enrollment, err := s.repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, NotFoundError()
	}

	resp := response.EnrollmentToResponse(enrollment)
	return &resp, nil
}

func (s *enrollmentService) UpsertEnrollment(ctx context.Context, userID int64, req *request.EnrollmentRequest) (*response.EnrollmentResponse, error) {
	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return nil, BadRequestError("Invalid birthday, expected YYYY-MM-DD")
	}

	now := time.Now()
	enrollment := &entity.Enrollment{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   userID,
		Name:     req.Name,
		CPF:      req.CPF,
		Birthday: birthday,
		Phone:    req.Phone,
	}

	if err := s.repo.Enrollment.Upsert(ctx, enrollment); err != nil {
		return nil, err
	}

	s.log.Info("Enrollment saved",
		zap.Int64("enrollment_id", enrollment.ID),
		zap.Int64("user_id", userID),
	)

	resp := response.EnrollmentToResponse(enrollment)
	return &resp, nil
}
