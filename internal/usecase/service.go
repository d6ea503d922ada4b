package usecase

import (
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Enrollment EnrollmentService
	Ticket     TicketService
	Payment    PaymentService
	Hotel      HotelService
	Booking    BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, config, log),
		Enrollment: NewEnrollmentService(repo, log),
		Ticket:     NewTicketService(repo, log),
		Payment:    NewPaymentService(repo, log),
		Hotel:      NewHotelService(repo, log),
		Booking:    NewBookingService(repo, log),
	}
}
