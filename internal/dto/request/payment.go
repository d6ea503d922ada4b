package request

type CardData struct {
	Issuer         string `json:"issuer" validate:"required"`
	Number         string `json:"number" validate:"required,min=13,max=19,numeric"`
	Name           string `json:"name" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required"`
	CVV            string `json:"cvv" validate:"required,min=3,max=4,numeric"`
}

type ProcessPaymentRequest struct {
	TicketID int64    `json:"ticketId" validate:"required,gt=0"`
	CardData CardData `json:"cardData" validate:"required"`
}
