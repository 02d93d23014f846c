package mq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

// TicketProducer publishes ticket-sold events on a dedicated channel.
type TicketProducer struct {
	ch *amqp.Channel
}

func NewTicketProducer(conn *amqp.Connection) (*TicketProducer, error) {
	ch, err := NewChannel(conn)
	if err != nil {
		return nil, err
	}
	return &TicketProducer{ch: ch}, nil
}

func (p *TicketProducer) PublishTicketSold(msg TicketSoldMessage) error {
	return SendImmediateMessage(p.ch, TicketSoldQueue, msg)
}
