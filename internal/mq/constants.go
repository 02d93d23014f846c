package mq

// Queue names and message definitions

// immediate queue from checkout confirmation to the ticket workflow
// deliver message to decrement the screening's ticket inventory
const (
	TicketSoldQueue = "checkout.ticket.sold"
)

type TicketSoldMessage struct {
	ScreeningID uint   `json:"screening_id"`
	SessionID   string `json:"session_id"`
}
