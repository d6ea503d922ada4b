package entity

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	Base
	Name          string `db:"name"`
	Price         int64  `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
}

type Ticket struct {
	Base
	TicketTypeID int64        `db:"ticket_type_id"`
	EnrollmentID int64        `db:"enrollment_id"`
	Status       TicketStatus `db:"status"`
}

// TicketWithType is a Ticket joined with its TicketType, the shape the
// eligibility rules evaluate.
type TicketWithType struct {
	Ticket
	TicketType TicketType
}

// HotelEligible reports whether this ticket grants hotel access: it must be
// paid, include hotel and not be remote-only.
func (t *TicketWithType) HotelEligible() bool {
	return t.Status == TicketStatusPaid && t.TicketType.IncludesHotel && !t.TicketType.IsRemote
}
