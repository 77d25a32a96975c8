package relay

import (
	"context"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the contact queue and forwards each message to the upstream
// send-message endpoint with at-least-once semantics. A message that keeps
// failing is republished with an incremented failed count and dropped once it
// passes maxRetries.
type Worker struct {
	log        *zap.Logger
	service    *Service
	gateway    contracts.MessageGateway
	maxRetries int
	stop       chan struct{}
}

func NewWorker(log *zap.Logger, service *Service, gateway contracts.MessageGateway, maxRetries int) *Worker {
	if maxRetries <= 0 {
		maxRetries = 5
	}
	return &Worker{
		log:        log,
		service:    service,
		gateway:    gateway,
		maxRetries: maxRetries,
		stop:       make(chan struct{}),
	}
}

// Start begins consuming. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (func(), error) {
	deliveries, err := w.service.channel.Consume(w.service.queueName, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(ctx, delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
		<-stopped
	}, nil
}

func (w *Worker) processDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var message requests.RelayedContactMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		w.log.Error("relay.Worker unreadable message dropped",
			zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	forwardCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	err := w.gateway.SendMessage(forwardCtx, &message.Message)
	if err == nil {
		w.log.Info("relay.Worker message forwarded",
			zap.String("message_id", message.ID))
		delivery.Ack(false)
		return
	}

	w.log.Error("relay.Worker forward failed",
		zap.String("message_id", message.ID),
		zap.Int("failed_count", message.FailedCount),
		zap.Error(err))

	message.FailedCount++
	if message.FailedCount >= w.maxRetries {
		w.log.Error("relay.Worker message dropped after max retries",
			zap.String("message_id", message.ID))
		delivery.Ack(false)
		return
	}

	// Republish with the bumped count instead of nack-requeue so the retry
	// history survives the round trip.
	if pubErr := w.service.Publish(ctx, &message); pubErr != nil {
		w.log.Error("relay.Worker republish failed, message requeued as-is",
			zap.String("message_id", message.ID),
			zap.Error(pubErr))
		delivery.Nack(false, true)
		return
	}
	delivery.Ack(false)
}
