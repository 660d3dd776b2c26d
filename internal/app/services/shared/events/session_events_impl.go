package events

import (
	"context"
	"time"

	"clinidash-core/internal/app/contracts"
	"clinidash-core/internal/app/models"
	"clinidash-core/internal/pkg/constvars"
	"clinidash-core/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type sessionEventPayload struct {
	Event    string       `json:"event"`
	User     *models.User `json:"user,omitempty"`
	Instance string       `json:"instance"`
	At       time.Time    `json:"at"`
}

type sessionEventPublisher struct {
	Channel  *amqp091.Channel
	Queue    string
	Instance string
}

// NewSessionEventPublisher publishes session lifecycle events to the audit
// queue. The queue is declared durable so events survive broker restarts.
func NewSessionEventPublisher(rabbitMQConnection *amqp091.Connection, queue, instanceID string) (contracts.SessionEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &sessionEventPublisher{
		Channel:  channel,
		Queue:    queue,
		Instance: instanceID,
	}, nil
}

func (p *sessionEventPublisher) PublishSessionEvent(ctx context.Context, event string, user *models.User) error {
	body, err := json.Marshal(sessionEventPayload{
		Event:    event,
		User:     user,
		Instance: p.Instance,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
