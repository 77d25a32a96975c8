package relay

import (
	"context"

	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes contact-form messages onto the relay queue. Delivery to
// the upstream message endpoint happens asynchronously in the Worker.
type Service struct {
	channel   *amqp091.Channel
	queueName string
	log       *zap.Logger
}

func NewService(conn *amqp091.Connection, queueName string, log *zap.Logger) (*Service, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &Service{
		channel:   channel,
		queueName: queueName,
		log:       log,
	}, nil
}

func (s *Service) Publish(ctx context.Context, message *requests.RelayedContactMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx, "", s.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Info("relay.Service.Publish message enqueued",
		zap.String("message_id", message.ID),
	)
	return nil
}
