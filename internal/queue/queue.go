package queue

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"github.com/leadbridge/whatsapp-leads-api/internal/model"
)

const queueName = "lead_events"

// Publisher announces stored leads to downstream consumers. Publishing is
// best effort: the insert has already committed by the time an event goes
// out, and a broker outage must never fail the request.
type Publisher interface {
	LeadCreated(lead *model.Lead) error
}

// NewPublisher picks the AMQP publisher when a broker URL is configured and
// the no-op one otherwise.
func NewPublisher(amqpURL string, logger zerolog.Logger) Publisher {
	if amqpURL == "" {
		logger.Debug().Msg("AMQP_URL not set, lead events disabled")
		return NoopPublisher{}
	}
	return &AMQPPublisher{URL: amqpURL, Logger: logger}
}

// AMQPPublisher publishes lead.created events to a durable queue. The
// connection is dialed on first publish and memoized; a publish error drops
// the cached channel so the next event dials fresh.
type AMQPPublisher struct {
	URL    string
	Logger zerolog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func (p *AMQPPublisher) LeadCreated(lead *model.Lead) error {
	body, err := json.Marshal(map[string]any{
		"event": "lead.created",
		"lead":  lead,
	})
	if err != nil {
		return err
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.Publish(
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		p.reset()
		return err
	}
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		return p.ch, nil
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	p.Logger.Info().Str("queue", queueName).Msg("📩 connected to message broker")
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() {
	p.reset()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) LeadCreated(*model.Lead) error { return nil }

var _ Publisher = (*AMQPPublisher)(nil)
var _ Publisher = NoopPublisher{}
