// Package events publishes subject lifecycle events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/utils"
	"github.com/MKhiriev/go-subjects/models"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher sends each event as a persistent JSON message to a topic
// exchange, routed by the event type ("subject.created", ...).
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
}

// NewRabbitPublisher dials cfg.AMQPURL and declares a durable topic exchange.
func NewRabbitPublisher(cfg config.Events, log *logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Err(err).Str("func", "NewRabbitPublisher").Msg("error connecting rabbitmq")
		return nil, fmt.Errorf("error connecting rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("error declaring exchange %q: %w", cfg.Exchange, err)
	}
	log.Info().Str("func", "NewRabbitPublisher").Str("exchange", cfg.Exchange).Msg("connected to rabbitmq successfully")

	p := newRabbitPublisher(ch, cfg.Exchange)
	p.conn = conn
	return p, nil
}

func newRabbitPublisher(ch channel, exchange string) *RabbitPublisher {
	return &RabbitPublisher{
		channel:  ch,
		exchange: exchange,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event models.SubjectEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error encoding event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    event.OccurredAt,
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		msg.CorrelationId = traceID
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg)
	if err != nil {
		return fmt.Errorf("error publishing %s: %w", event.Type, err)
	}

	return nil
}

// Close closes the channel and then the connection.
func (p *RabbitPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
