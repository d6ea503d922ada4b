package request

type CreateTicketRequest struct {
	TicketTypeID int64 `json:"ticketTypeId" validate:"required,gt=0"`
}
