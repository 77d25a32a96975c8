package contracts

import (
	"context"

	"mediflow-onboarding/internal/pkg/dto/requests"
)

// ContactRelay queues contact-form messages for asynchronous forwarding.
type ContactRelay interface {
	Publish(ctx context.Context, message *requests.RelayedContactMessage) error
}
