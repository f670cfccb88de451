// cmd/worker/main.go
//
// Tails the lead_events queue and logs every stored lead. Useful as a
// downstream consumer skeleton and for watching inserts in development.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"

	"github.com/leadbridge/whatsapp-leads-api/internal/config"
	"github.com/leadbridge/whatsapp-leads-api/internal/model"
)

const queueName = "lead_events"

type leadEvent struct {
	Event string     `json:"event"`
	Lead  model.Lead `json:"lead"`
}

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "lead-events-worker").Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️ no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ some environment variables could not be decoded")
	}
	if cfg.AMQPURL == "" {
		logger.Fatal().Msg("AMQP_URL must be set for the worker")
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to broker")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open channel")
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to declare queue")
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck off: ack after handling
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		for d := range msgs {
			if err := handleDelivery(logger, d.Body); err != nil {
				// Malformed events are dropped, not requeued: they will
				// never get better.
				logger.Warn().Err(err).Msg("dropping malformed event")
			}
			d.Ack(false)
		}
	}()

	logger.Info().Str("queue", queueName).Msg("📥 worker running, waiting for events")
	<-ctx.Done()
	logger.Info().Msg("shutting down")
}

func handleDelivery(logger zerolog.Logger, body []byte) error {
	var ev leadEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return err
	}

	logger.Info().
		Str("event", ev.Event).
		Int64("lead_id", ev.Lead.ID).
		Str("numero_telefono", ev.Lead.NumeroTelefono).
		Str("push_name", ev.Lead.PushName).
		Time("fecha_hora", ev.Lead.FechaHora).
		Msg("lead stored")
	return nil
}
