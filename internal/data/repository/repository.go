package repository

import (
	"conference-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Payment    PaymentRepository
	Hotel      HotelRepository
	Room       RoomRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Enrollment: NewEnrollmentRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Payment:    NewPaymentRepository(db, log),
		Hotel:      NewHotelRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Booking:    NewBookingRepository(db, log),
	}
}
