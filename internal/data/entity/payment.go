package entity

// Payment records a completed card payment for a ticket. Only the issuer and
// the last four digits of the card are ever persisted.
type Payment struct {
	Base
	TicketID       int64  `db:"ticket_id"`
	Value          int64  `db:"value"`
	CardIssuer     string `db:"card_issuer"`
	CardLastDigits string `db:"card_last_digits"`
}
