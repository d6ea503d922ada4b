package response

import (
	"time"

	"conference-booking/internal/data/entity"
)

type TicketTypeResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type TicketResponse struct {
	ID         int64               `json:"id"`
	Status     entity.TicketStatus `json:"status"`
	TicketType TicketTypeResponse  `json:"ticketType"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

func TicketTypeToResponse(ticketType *entity.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:            ticketType.ID,
		Name:          ticketType.Name,
		Price:         ticketType.Price,
		IsRemote:      ticketType.IsRemote,
		IncludesHotel: ticketType.IncludesHotel,
	}
}

func TicketToResponse(ticket *entity.TicketWithType) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID,
		Status:     ticket.Status,
		TicketType: TicketTypeToResponse(&ticket.TicketType),
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}
