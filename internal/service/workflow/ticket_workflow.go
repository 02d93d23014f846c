package workflow

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/mq"
	"github.com/irankiai/cinema-admin/internal/repository"

	amqp "github.com/rabbitmq/amqp091-go"
)

// TicketWorkflow consumes ticket-sold events and decrements the screening's
// inventory. Checkout itself never touches ticket counts; this consumer is
// the only writer.
type TicketWorkflow struct {
	screenings repository.ScreeningRepo
	logger     *zap.Logger
}

func NewTicketWorkflow(screeningRepo repository.ScreeningRepo, logger *zap.Logger) *TicketWorkflow {
	return &TicketWorkflow{
		screenings: screeningRepo,
		logger:     logger,
	}
}

func (w *TicketWorkflow) Start(mqConn *amqp.Connection) error {
	ch, err := mq.NewChannel(mqConn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.TicketSoldQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.handleTicketSold(msg)
		}
	}()

	return nil
}

// handleTicketSold nacks malformed payloads without requeue and store
// failures with requeue, so a transient outage retries the decrement.
func (w *TicketWorkflow) handleTicketSold(msg amqp.Delivery) {
	var message mq.TicketSoldMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		w.logger.Error("discarding malformed ticket-sold message", zap.Error(err))
		msg.Nack(false, false)
		return
	}
	if err := w.screenings.DecrementTickets(message.ScreeningID); err != nil {
		w.logger.Error("failed to decrement tickets",
			zap.Uint("screening_id", message.ScreeningID), zap.Error(err))
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
