package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"eventboard/internal/domain"
)

// Client wraps a RabbitMQ connection with a single durable exchange and queue
// used for registration notifications.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	logger   *slog.Logger
}

// NewClient dials RabbitMQ and declares the exchange, queue, and binding.
// Declarations are idempotent, so publisher and consumer can both call this.
func NewClient(url, exchange, queue string, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}
	if err := ch.QueueBind(queue, "", exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to bind queue %q: %w", queue, err)
	}

	logger.Info("RabbitMQ initialized", "exchange", exchange, "queue", queue)

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    queue,
		logger:   logger,
	}, nil
}

// Close shuts down the channel and connection.
func (c *Client) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.logger.Info("RabbitMQ connection closed")
}

// PublishRegistration implements domain.RegistrationPublisher.
func (c *Client) PublishRegistration(msg domain.RegistrationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode registration message: %w", err)
	}

	err = c.channel.Publish(
		c.exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish registration message: %w", err)
	}

	c.logger.Debug("registration message published", "registration_id", msg.RegistrationID, "event_id", msg.EventID)
	return nil
}

// Consume starts delivering queue messages to handler on a background
// goroutine. A handler error nacks the message back onto the queue.
func (c *Client) Consume(handler func(body []byte) error) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming from queue %q: %w", c.queue, err)
	}

	go func() {
		for d := range deliveries {
			if err := handler(d.Body); err != nil {
				c.logger.Warn("failed to process message, requeueing", "error", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}()

	c.logger.Info("started consuming", "queue", c.queue)
	return nil
}
