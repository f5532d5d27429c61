package notifications

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"schedboard-service/internal/app/contracts"
	"schedboard-service/internal/pkg/constvars"
	"schedboard-service/internal/pkg/exceptions"
)

// Publisher pushes operation notifications onto a durable RabbitMQ queue
// for downstream consumers (mailers, chat bridges). Publishing is
// best-effort from the workflows' point of view: a failed publish is
// logged by the caller, never surfaced to the user.
type Publisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

func NewPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{ch: ch, log: log, queueName: queueName}, nil
}

func (p *Publisher) Publish(ctx context.Context, notification contracts.OperationNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Debug("Operation notification published",
		zap.String("queue", p.queueName),
		zap.String("operation", notification.Operation),
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}
